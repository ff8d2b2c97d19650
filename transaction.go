package solana

import (
	"context"
	"encoding/base64"
	"errors"
)

type (
	Transaction struct {
		client *Client
		build  *transactionBuild
	}

	transactionBuild struct {
		wire                   string
		skipPreflight          bool
		preflightCommitment    Commitment
		maxRetries             *uint
		minContextSlot         *uint64
		commitment             Commitment
		sigVerify              bool
		replaceRecentBlockhash bool
		accounts               []PublicKey
		innerInstructions      bool
	}
)

const (
	ErrorRequiredClient         = "Client is required"
	ErrorRequiredTransaction    = "Transaction is required"
	ErrorInvalidTransaction     = "Transaction must be base64 encoded"
	ErrorSigVerifyWithBlockhash = "SigVerify and ReplaceRecentBlockhash cannot be used together"
)

// NewTransactionSender returns a builder that simulates or submits an
// already signed, serialized transaction.
//
// Example:
//
//	sig, err := solana.NewTransactionSender().
//		Client(&client).
//		Transaction(signedBase64).
//		PreflightCommitment(solana.CommitmentConfirmed).
//		Send(ctx)
func NewTransactionSender() *Transaction {
	return &Transaction{build: &transactionBuild{}}
}

func (t *Transaction) Client(c *Client) *Transaction {
	t.client = c
	return t
}

// Transaction sets the base64 encoded wire transaction.
func (t *Transaction) Transaction(b64 string) *Transaction {
	t.build.wire = b64
	return t
}

// Raw sets the serialized wire transaction.
func (t *Transaction) Raw(tx []byte) *Transaction {
	t.build.wire = base64.StdEncoding.EncodeToString(tx)
	return t
}

// SkipPreflight disables the node's simulation before submitting. Send only.
func (t *Transaction) SkipPreflight(skip bool) *Transaction {
	t.build.skipPreflight = skip
	return t
}

// PreflightCommitment is the commitment level the preflight runs at. Send only.
func (t *Transaction) PreflightCommitment(c Commitment) *Transaction {
	t.build.preflightCommitment = c
	return t
}

// MaxRetries is how many times the node retries forwarding the transaction
// to the leader. Send only.
func (t *Transaction) MaxRetries(n uint) *Transaction {
	t.build.maxRetries = &n
	return t
}

func (t *Transaction) MinContextSlot(slot uint64) *Transaction {
	t.build.minContextSlot = &slot
	return t
}

// Commitment is the bank state a simulation runs against. Simulate only.
func (t *Transaction) Commitment(c Commitment) *Transaction {
	t.build.commitment = c
	return t
}

// SigVerify makes the simulation verify signatures. Simulate only.
func (t *Transaction) SigVerify(verify bool) *Transaction {
	t.build.sigVerify = verify
	return t
}

// ReplaceRecentBlockhash makes the simulation use the most recent
// blockhash. Simulate only.
func (t *Transaction) ReplaceRecentBlockhash(replace bool) *Transaction {
	t.build.replaceRecentBlockhash = replace
	return t
}

// Accounts asks the simulation to return the post state of keys.
// Simulate only.
func (t *Transaction) Accounts(keys ...PublicKey) *Transaction {
	t.build.accounts = append(t.build.accounts, keys...)
	return t
}

func (t *Transaction) InnerInstructions(inner bool) *Transaction {
	t.build.innerInstructions = inner
	return t
}

func (t *Transaction) validate() error {
	switch {
	case t.client == nil:
		return errors.New(ErrorRequiredClient)
	case t.build.wire == "":
		return errors.New(ErrorRequiredTransaction)
	}
	if _, err := base64.StdEncoding.DecodeString(t.build.wire); err != nil {
		return errors.New(ErrorInvalidTransaction)
	}
	return nil
}

// Simulate simulates the transaction and returns its result.
// Returns an error if the call fails, NOT if the transaction failed: check
// Value.Err of the result.
func (t *Transaction) Simulate(ctx context.Context) (*SimulateTransactionResponse, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if t.build.sigVerify && t.build.replaceRecentBlockhash {
		return nil, errors.New(ErrorSigVerifyWithBlockhash)
	}
	config := &SimulateTransactionConfig{
		Commitment:             t.build.commitment,
		Encoding:               EncodingBase64,
		SigVerify:              t.build.sigVerify,
		ReplaceRecentBlockhash: t.build.replaceRecentBlockhash,
		MinContextSlot:         t.build.minContextSlot,
		InnerInstructions:      t.build.innerInstructions,
	}
	if len(t.build.accounts) > 0 {
		config.Accounts = &SimulateAccountsConfig{
			Addresses: t.build.accounts,
			Encoding:  EncodingBase64,
		}
	}
	res, err := t.client.SimulateTransaction(ctx, t.build.wire, config)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Send submits the transaction and returns its first signature. The node
// only acknowledges the submission; use SendAndConfirm or
// Client.WaitForConfirmation to learn whether it landed.
func (t *Transaction) Send(ctx context.Context) (Signature, error) {
	if err := t.validate(); err != nil {
		return Signature{}, err
	}
	return t.client.SendTransaction(ctx, t.build.wire, &SendTransactionConfig{
		Encoding:            EncodingBase64,
		SkipPreflight:       t.build.skipPreflight,
		PreflightCommitment: t.build.preflightCommitment,
		MaxRetries:          t.build.maxRetries,
		MinContextSlot:      t.build.minContextSlot,
	})
}

// SendAndConfirm sends the transaction and waits until it reaches
// commitment. A transaction rejected on chain returns a *TransactionError.
func (t *Transaction) SendAndConfirm(ctx context.Context, commitment Commitment) (Signature, error) {
	sig, err := t.Send(ctx)
	if err != nil {
		return Signature{}, err
	}
	_, err = t.client.WaitForConfirmation(ctx, sig, commitment, DefaultPollInterval)
	return sig, err
}
