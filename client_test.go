package solana_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebamiro/solana"
)

var (
	testKey  = solana.MustPublicKey("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	testSig  = mustSignature("5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW")
	testHash = mustHash("EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N")
)

func mustSignature(s string) solana.Signature {
	sig, err := solana.ParseSignature(s)
	if err != nil {
		panic(err)
	}
	return sig
}

func mustHash(s string) solana.Hash {
	h, err := solana.ParseHash(s)
	if err != nil {
		panic(err)
	}
	return h
}

type call struct {
	Method string
	Params json.RawMessage
}

// fakeNode answers every method from a queue of canned result members. The
// last queued answer repeats.
type fakeNode struct {
	*httptest.Server

	mu      sync.Mutex
	calls   []call
	results map[string][]string
	errors  map[string]string
}

func newFakeNode(t *testing.T) *fakeNode {
	t.Helper()
	n := &fakeNode{results: map[string][]string{}, errors: map[string]string{}}
	n.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     uint64          `json:"id"`
			Method string          `json:"method"`
			Params json.RawMessage `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		n.mu.Lock()
		defer n.mu.Unlock()
		n.calls = append(n.calls, call{Method: req.Method, Params: req.Params})

		if e, ok := n.errors[req.Method]; ok {
			_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"error":%s}`, req.ID, e)
			return
		}
		queue, ok := n.results[req.Method]
		if !ok {
			_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"error":{"code":-32601,"message":"Method not found"}}`, req.ID)
			return
		}
		result := queue[0]
		if len(queue) > 1 {
			n.results[req.Method] = queue[1:]
		}
		_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":%s}`, req.ID, result)
	}))
	t.Cleanup(n.Close)
	return n
}

func (n *fakeNode) on(method string, results ...string) *fakeNode {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.results[method] = results
	return n
}

func (n *fakeNode) fail(method, errObj string) *fakeNode {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors[method] = errObj
	return n
}

func (n *fakeNode) lastCall(t *testing.T) call {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.calls)
	return n.calls[len(n.calls)-1]
}

func (n *fakeNode) count(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	total := 0
	for _, c := range n.calls {
		if c.Method == method {
			total++
		}
	}
	return total
}

func (n *fakeNode) client(t *testing.T, opts ...solana.Option) solana.Client {
	t.Helper()
	c, err := solana.NewClient(n.URL, opts...)
	require.NoError(t, err)
	return c
}

func TestNewClientRejectsBadEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "localhost:8899", "ftp://node", "http://"} {
		_, err := solana.NewClient(endpoint)
		var cfgErr *solana.ConfigurationError
		require.ErrorAs(t, err, &cfgErr, endpoint)
		require.Equal(t, "endpoint", cfgErr.Field)
	}
}

func TestZeroClient(t *testing.T) {
	var c solana.Client
	_, err := c.GetSlot(context.Background(), nil)
	var cfgErr *solana.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "client", cfgErr.Field)

	_, err = c.Call(context.Background(), solana.GetSlot)
	require.ErrorAs(t, err, &cfgErr)
}

func TestClusterURL(t *testing.T) {
	u, err := solana.ClusterURL("devnet")
	require.NoError(t, err)
	require.Equal(t, solana.Devnet, u)

	_, err = solana.ClusterURL("moonnet")
	require.Error(t, err)

	require.Equal(t, []string{"devnet", "localnet", "mainnet-beta", "testnet"}, solana.Clusters())
}

func TestWrapperParams(t *testing.T) {
	end := uint64(10)
	limit := uint64(3)
	tests := []struct {
		name   string
		method string
		result string
		call   func(ctx context.Context, c solana.Client) error
		params string
	}{
		{
			name: "required only", method: solana.GetBalance, result: `{"context":{"slot":1},"value":5}`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.GetBalance(ctx, testKey, nil)
				return err
			},
			params: `["9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"]`,
		},
		{
			name: "with config", method: solana.GetBalance, result: `{"context":{"slot":1},"value":5}`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.GetBalance(ctx, testKey, &solana.CommitmentConfig{Commitment: solana.CommitmentFinalized})
				return err
			},
			params: `["9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",{"commitment":"finalized"}]`,
		},
		{
			name: "no params", method: solana.GetSlot, result: `7`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.GetSlot(ctx, nil)
				return err
			},
			params: `[]`,
		},
		{
			name: "absent middle optional is null", method: solana.GetBlocks, result: `[5,6]`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.GetBlocks(ctx, 5, nil, &solana.CommitmentConfig{Commitment: solana.CommitmentConfirmed})
				return err
			},
			params: `[5,null,{"commitment":"confirmed"}]`,
		},
		{
			name: "absent trailing optional is dropped", method: solana.GetBlocks, result: `[5,6]`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.GetBlocks(ctx, 5, &end, nil)
				return err
			},
			params: `[5,10]`,
		},
		{
			name: "optional scalar", method: solana.GetRecentPerformanceSamples, result: `[]`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.GetRecentPerformanceSamples(ctx, &limit)
				return err
			},
			params: `[3]`,
		},
		{
			name: "optional slice unset", method: solana.GetRecentPrioritizationFees, result: `[]`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.GetRecentPrioritizationFees(ctx, nil)
				return err
			},
			params: `[]`,
		},
		{
			name: "optional slice set", method: solana.GetRecentPrioritizationFees, result: `[]`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.GetRecentPrioritizationFees(ctx, []solana.PublicKey{testKey})
				return err
			},
			params: `[["9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"]]`,
		},
		{
			name: "leading optional", method: solana.GetLeaderSchedule, result: `null`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.GetLeaderSchedule(ctx, nil, &solana.GetLeaderScheduleConfig{Identity: &testKey})
				return err
			},
			params: `[null,{"identity":"9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"}]`,
		},
		{
			name: "signatures", method: solana.GetSignatureStatuses, result: `{"context":{"slot":1},"value":[null]}`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.GetSignatureStatuses(ctx, []solana.Signature{testSig}, &solana.GetSignatureStatusesConfig{SearchTransactionHistory: true})
				return err
			},
			params: `[["5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"],{"searchTransactionHistory":true}]`,
		},
		{
			name: "filter record", method: solana.GetTokenAccountsByOwner, result: `{"context":{"slot":1},"value":[]}`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.GetTokenAccountsByOwner(ctx, testKey, solana.TokenAccountsFilter{ProgramID: &solana.TokenProgramID}, nil)
				return err
			},
			params: `["9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",{"programId":"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"}]`,
		},
		{
			name: "airdrop", method: solana.RequestAirdrop, result: `"5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.RequestAirdrop(ctx, testKey, solana.LamportsPerSOL, nil)
				return err
			},
			params: `["9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",1000000000]`,
		},
		{
			name: "blockhash", method: solana.IsBlockhashValid, result: `{"context":{"slot":1},"value":true}`,
			call: func(ctx context.Context, c solana.Client) error {
				_, err := c.IsBlockhashValid(ctx, testHash, nil)
				return err
			},
			params: `["EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N"]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := newFakeNode(t).on(tt.method, tt.result)
			require.NoError(t, tt.call(context.Background(), node.client(t)))

			got := node.lastCall(t)
			require.Equal(t, tt.method, got.Method)
			require.JSONEq(t, tt.params, string(got.Params))
		})
	}
}

func TestWrapperResults(t *testing.T) {
	ctx := context.Background()
	node := newFakeNode(t).
		on(solana.GetBalance, `{"context":{"slot":301},"value":2500000000}`).
		on(solana.GetTransaction, `null`).
		on(solana.GetBlockTime, `null`).
		on(solana.GetHealth, `"ok"`).
		on(solana.GetVersion, `{"solana-core":"1.18.12","feature-set":4215500110}`).
		on(solana.GetLatestBlockhash, `{"context":{"slot":2792},"value":{"blockhash":"EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N","lastValidBlockHeight":3090}}`)
	c := node.client(t)

	balance, err := c.GetBalance(ctx, testKey, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(301), balance.Context.Slot)
	require.Equal(t, "2.5", solana.LamportsToSOL(balance.Value).String())

	tx, err := c.GetTransaction(ctx, testSig, nil)
	require.NoError(t, err)
	require.Nil(t, tx)

	blockTime, err := c.GetBlockTime(ctx, 1)
	require.NoError(t, err)
	require.Nil(t, blockTime)

	health, err := c.GetHealth(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health)

	version, err := c.GetVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, solana.Version{SolanaCore: "1.18.12", FeatureSet: 4215500110}, version)

	latest, err := c.GetLatestBlockhash(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, testHash, latest.Value.Blockhash)
	require.Equal(t, uint64(3090), latest.Value.LastValidBlockHeight)
}

func TestWrapperRPCError(t *testing.T) {
	node := newFakeNode(t).fail(solana.GetHealth,
		`{"code":-32005,"message":"Node is unhealthy","data":{"numSlotsBehind":42}}`)

	_, err := node.client(t).GetHealth(context.Background())
	require.True(t, solana.IsRPCError(err, solana.CodeNodeUnhealthy))

	var rpcErr *solana.RPCError
	require.ErrorAs(t, err, &rpcErr)
	require.JSONEq(t, `{"numSlotsBehind":42}`, string(rpcErr.Data))
}

func TestWrapperResultTypeMismatch(t *testing.T) {
	node := newFakeNode(t).on(solana.GetSlot, `"not a slot"`)

	_, err := node.client(t).GetSlot(context.Background(), nil)
	var malformed *solana.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, solana.GetSlot, malformed.Method)
}

func TestCallResultTrimsTrailingNil(t *testing.T) {
	node := newFakeNode(t).on("custom", `null`)

	err := node.client(t).CallResult(context.Background(), "custom", nil, 1, nil, "x", nil, nil)
	require.NoError(t, err)
	require.JSONEq(t, `[1,null,"x"]`, string(node.lastCall(t).Params))
}

func TestClientHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":1,"result":"ok"}`)
	}))
	defer srv.Close()

	c, err := solana.NewClient(srv.URL, solana.WithHeaders(map[string]string{"Authorization": "Bearer t"}))
	require.NoError(t, err)
	_, err = c.GetHealth(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer t", got.Get("Authorization"))
	require.Equal(t, "application/json", got.Get("Content-Type"))
}

func TestTransportErrorIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := solana.NewClient(srv.URL)
	require.NoError(t, err)
	_, err = c.GetSlot(context.Background(), nil)

	var transportErr *solana.TransportError
	require.True(t, errors.As(err, &transportErr))
	require.Equal(t, http.StatusBadGateway, transportErr.StatusCode)
}
