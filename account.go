package solana

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcutil/base58"
	"github.com/cenkalti/backoff/v4"
	"github.com/klauspost/compress/zstd"
)

// DefaultPollInterval is used by WaitForConfirmation when no interval is given.
const DefaultPollInterval = 500 * time.Millisecond

// AccountData is the data field of an account. Binary encodings are decoded
// into Raw; jsonParsed data is kept in Parsed.
type AccountData struct {
	Encoding Encoding
	Raw      []byte
	Parsed   json.RawMessage
}

// zstd.Decoder.DecodeAll is safe for concurrent use.
var zstdDecoder, _ = zstd.NewReader(nil)

// UnmarshalJSON accepts the three shapes a node returns: a [data, encoding]
// pair, a bare base58 string, or a parsed object.
func (d *AccountData) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*d = AccountData{}
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw, err := decodeAccountData(s, EncodingBase58)
		if err != nil {
			return err
		}
		*d = AccountData{Encoding: EncodingBase58, Raw: raw}
		return nil
	case len(b) > 0 && b[0] == '[':
		var pair []string
		if err := json.Unmarshal(b, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("account data: want [data, encoding], got %d elements", len(pair))
		}
		enc := Encoding(pair[1])
		raw, err := decodeAccountData(pair[0], enc)
		if err != nil {
			return err
		}
		*d = AccountData{Encoding: enc, Raw: raw}
		return nil
	case len(b) > 0 && b[0] == '{':
		*d = AccountData{Encoding: EncodingJSONParsed, Parsed: append(json.RawMessage(nil), b...)}
		return nil
	}
	return fmt.Errorf("account data: unexpected %s", b)
}

// MarshalJSON writes binary data back as a [data, "base64"] pair.
func (d AccountData) MarshalJSON() ([]byte, error) {
	if d.Encoding == EncodingJSONParsed {
		if len(d.Parsed) == 0 {
			return []byte("null"), nil
		}
		return d.Parsed, nil
	}
	return json.Marshal([2]string{base64.StdEncoding.EncodeToString(d.Raw), string(EncodingBase64)})
}

func decodeAccountData(s string, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingBase58:
		raw := base58.Decode(s)
		if s != "" && len(raw) == 0 {
			return nil, fmt.Errorf("account data: %w", ErrInvalidBase58)
		}
		return raw, nil
	case EncodingBase64:
		return base64.StdEncoding.DecodeString(s)
	case EncodingBase64Zstd:
		compressed, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, err
		}
		if len(compressed) == 0 {
			return []byte{}, nil
		}
		return zstdDecoder.DecodeAll(compressed, nil)
	}
	return nil, fmt.Errorf("account data: unsupported encoding %q", enc)
}

// Bytes returns the decoded account data, nil for jsonParsed accounts.
func (a *Account) Bytes() []byte {
	if a == nil {
		return nil
	}
	return a.Data.Raw
}

// GetAccount returns the account stored at key, or ErrAccountNotFound.
func (c Client) GetAccount(ctx context.Context, key PublicKey, commitment Commitment) (*Account, error) {
	res, err := c.GetAccountInfo(ctx, key, &GetAccountInfoConfig{
		Commitment: commitment,
		Encoding:   EncodingBase64,
	})
	if err != nil {
		return nil, err
	}
	if res.Value == nil {
		return nil, fmt.Errorf("%s: %w", key, ErrAccountNotFound)
	}
	return res.Value, nil
}

// WaitForConfirmation polls the status of sig every interval until it
// reaches commitment. It returns a *TransactionError when the transaction
// failed, and ErrNotConfirmed when ctx ends first. Any call error stops the
// wait.
func (c Client) WaitForConfirmation(ctx context.Context, sig Signature, commitment Commitment, interval time.Duration) (*SignatureStatus, error) {
	if commitment == "" {
		commitment = CommitmentConfirmed
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	var status *SignatureStatus
	poll := func() error {
		res, err := c.GetSignatureStatuses(ctx, []Signature{sig}, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		if len(res.Value) == 0 || res.Value[0] == nil {
			return ErrNotConfirmed
		}
		st := res.Value[0]
		if len(st.Err) > 0 && string(st.Err) != "null" {
			return backoff.Permanent(&TransactionError{Signature: sig, Err: st.Err})
		}
		level := st.ConfirmationStatus
		if level == "" && st.Confirmations == nil {
			// Nodes without confirmationStatus report rooted slots this way.
			level = CommitmentFinalized
		}
		if !level.Reached(commitment) {
			return fmt.Errorf("%w: at %q", ErrNotConfirmed, level)
		}
		status = st
		return nil
	}
	err := backoff.Retry(poll, backoff.WithContext(backoff.NewConstantBackOff(interval), ctx))
	if err == nil {
		return status, nil
	}
	var txErr *TransactionError
	if ctx.Err() != nil && !errors.As(err, &txErr) {
		return nil, fmt.Errorf("%s: %w: %w", sig, ErrNotConfirmed, ctx.Err())
	}
	return nil, err
}

// RequestAirdropAndConfirm requests lamports for key and waits until the
// airdrop transaction reaches commitment. Only test clusters fund airdrops.
func (c Client) RequestAirdropAndConfirm(ctx context.Context, key PublicKey, lamports uint64, commitment Commitment) (Signature, error) {
	if commitment == "" {
		commitment = CommitmentConfirmed
	}
	sig, err := c.RequestAirdrop(ctx, key, lamports, &CommitmentConfig{Commitment: commitment})
	if err != nil {
		return Signature{}, err
	}
	_, err = c.WaitForConfirmation(ctx, sig, commitment, DefaultPollInterval)
	return sig, err
}
