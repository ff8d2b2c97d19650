package solana_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/sebamiro/solana"
)

func TestAccountDataEncodings(t *testing.T) {
	data := []byte("hello account data")

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll(data, nil)
	require.NoError(t, enc.Close())

	tests := []struct {
		name string
		json string
		enc  solana.Encoding
	}{
		{"base64 pair", fmt.Sprintf(`[%q,"base64"]`, base64.StdEncoding.EncodeToString(data)), solana.EncodingBase64},
		{"base58 pair", `["2NEpo7TZRRrLZSi2U","base58"]`, solana.EncodingBase58},
		{"legacy base58 string", `"2NEpo7TZRRrLZSi2U"`, solana.EncodingBase58},
		{"zstd pair", fmt.Sprintf(`[%q,"base64+zstd"]`, base64.StdEncoding.EncodeToString(compressed)), solana.EncodingBase64Zstd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d solana.AccountData
			require.NoError(t, json.Unmarshal([]byte(tt.json), &d))
			require.Equal(t, tt.enc, d.Encoding)
			if tt.enc == solana.EncodingBase58 {
				require.Equal(t, []byte("Hello World!"), d.Raw)
				return
			}
			require.Equal(t, data, d.Raw)
		})
	}
}

func TestAccountDataParsed(t *testing.T) {
	var d solana.AccountData
	raw := `{"program":"spl-token","parsed":{"type":"mint"},"space":82}`
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	require.Equal(t, solana.EncodingJSONParsed, d.Encoding)
	require.Nil(t, d.Raw)
	require.JSONEq(t, raw, string(d.Parsed))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, raw, string(out))
}

func TestAccountDataRejects(t *testing.T) {
	for _, raw := range []string{
		`["AAAA"]`,
		`["AAAA","base32"]`,
		`["!!!","base64"]`,
		`["0OIl","base58"]`,
		`42`,
	} {
		var d solana.AccountData
		require.Error(t, json.Unmarshal([]byte(raw), &d), raw)
	}
}

func TestAccountDataMarshalsBase64(t *testing.T) {
	out, err := json.Marshal(solana.AccountData{Encoding: solana.EncodingBase58, Raw: []byte{1, 2, 3}})
	require.NoError(t, err)
	require.JSONEq(t, `["AQID","base64"]`, string(out))
}

func TestGetAccount(t *testing.T) {
	node := newFakeNode(t).on(solana.GetAccountInfo, `{
		"context":{"slot":10},
		"value":{"lamports":1461600,"owner":"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
			"data":["AQID","base64"],"executable":false,"rentEpoch":18446744073709551615,"space":3}
	}`)

	account, err := node.client(t).GetAccount(context.Background(), testKey, solana.CommitmentFinalized)
	require.NoError(t, err)
	require.Equal(t, solana.TokenProgramID, account.Owner)
	require.Equal(t, uint64(1461600), account.Lamports)
	require.Equal(t, []byte{1, 2, 3}, account.Bytes())
	require.Equal(t, uint64(18446744073709551615), account.RentEpoch)

	require.JSONEq(t,
		`["9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",{"commitment":"finalized","encoding":"base64"}]`,
		string(node.lastCall(t).Params))
}

func TestGetAccountNotFound(t *testing.T) {
	node := newFakeNode(t).on(solana.GetAccountInfo, `{"context":{"slot":10},"value":null}`)

	_, err := node.client(t).GetAccount(context.Background(), testKey, "")
	require.ErrorIs(t, err, solana.ErrAccountNotFound)
}

func statuses(status string) string {
	return fmt.Sprintf(`{"context":{"slot":1},"value":[%s]}`, status)
}

func TestWaitForConfirmation(t *testing.T) {
	node := newFakeNode(t).on(solana.GetSignatureStatuses,
		statuses(`null`),
		statuses(`{"slot":5,"confirmations":0,"err":null,"confirmationStatus":"processed"}`),
		statuses(`{"slot":5,"confirmations":1,"err":null,"confirmationStatus":"confirmed"}`),
	)

	status, err := node.client(t).WaitForConfirmation(context.Background(), testSig, solana.CommitmentConfirmed, time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, uint64(5), status.Slot)
	require.Equal(t, solana.CommitmentConfirmed, status.ConfirmationStatus)
	require.Equal(t, 3, node.count(solana.GetSignatureStatuses))
}

func TestWaitForConfirmationRootedWithoutStatus(t *testing.T) {
	node := newFakeNode(t).on(solana.GetSignatureStatuses,
		statuses(`{"slot":5,"confirmations":null,"err":null}`))

	_, err := node.client(t).WaitForConfirmation(context.Background(), testSig, solana.CommitmentFinalized, time.Millisecond)
	require.NoError(t, err)
}

func TestWaitForConfirmationFailedTransaction(t *testing.T) {
	node := newFakeNode(t).on(solana.GetSignatureStatuses,
		statuses(`{"slot":5,"confirmations":0,"err":{"InstructionError":[0,{"Custom":1}]},"confirmationStatus":"processed"}`))

	_, err := node.client(t).WaitForConfirmation(context.Background(), testSig, solana.CommitmentConfirmed, time.Millisecond)
	var txErr *solana.TransactionError
	require.ErrorAs(t, err, &txErr)
	require.Equal(t, testSig, txErr.Signature)
	require.JSONEq(t, `{"InstructionError":[0,{"Custom":1}]}`, string(txErr.Err))
	require.Equal(t, 1, node.count(solana.GetSignatureStatuses))
}

func TestWaitForConfirmationGivesUpWithContext(t *testing.T) {
	node := newFakeNode(t).on(solana.GetSignatureStatuses, statuses(`null`))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := node.client(t).WaitForConfirmation(ctx, testSig, solana.CommitmentConfirmed, 5*time.Millisecond)
	require.ErrorIs(t, err, solana.ErrNotConfirmed)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForConfirmationStopsOnCallError(t *testing.T) {
	node := newFakeNode(t).fail(solana.GetSignatureStatuses, `{"code":-32005,"message":"Node is behind"}`)

	_, err := node.client(t).WaitForConfirmation(context.Background(), testSig, solana.CommitmentConfirmed, time.Millisecond)
	require.True(t, solana.IsRPCError(err, solana.CodeNodeUnhealthy))
	require.Equal(t, 1, node.count(solana.GetSignatureStatuses))
}

func TestRequestAirdropAndConfirm(t *testing.T) {
	node := newFakeNode(t).
		on(solana.RequestAirdrop, fmt.Sprintf("%q", testSig.String())).
		on(solana.GetSignatureStatuses, statuses(`{"slot":9,"confirmations":null,"err":null,"confirmationStatus":"finalized"}`))

	sig, err := node.client(t).RequestAirdropAndConfirm(context.Background(), testKey, 2*solana.LamportsPerSOL, solana.CommitmentFinalized)
	require.NoError(t, err)
	require.Equal(t, testSig, sig)
	require.Equal(t, 1, node.count(solana.RequestAirdrop))
}
