package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebamiro/solana"
)

type request struct {
	ID     uint64            `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
	Auth   string            `json:"-"`
}

type node struct {
	*httptest.Server

	mu       sync.Mutex
	requests []request
}

func newNode(t *testing.T, results map[string]string) *node {
	t.Helper()
	n := &node{}
	n.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.Auth = r.Header.Get("Authorization")
		n.mu.Lock()
		n.requests = append(n.requests, req)
		n.mu.Unlock()

		result, ok := results[req.Method]
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"error":{"code":-32601,"message":"Method not found"}}`, req.ID)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":%s}`, req.ID, result)
	}))
	t.Cleanup(n.Close)
	return n
}

func (n *node) last(t *testing.T) request {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.requests)
	return n.requests[len(n.requests)-1]
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"solana-rpc"}, args...))
	return out.String(), err
}

func TestSlotCommand(t *testing.T) {
	n := newNode(t, map[string]string{solana.GetSlot: `1234`})

	out, err := run(t, "-u", n.URL, "-H", "Authorization: Bearer t", "--commitment", "finalized", "slot")
	require.NoError(t, err)
	require.Equal(t, "1234\n", out)

	req := n.last(t)
	require.Equal(t, solana.GetSlot, req.Method)
	require.Equal(t, "Bearer t", req.Auth)
	require.Len(t, req.Params, 1)
	require.JSONEq(t, `{"commitment":"finalized"}`, string(req.Params[0]))
}

func TestZeroTimeoutDisablesDeadline(t *testing.T) {
	n := newNode(t, map[string]string{solana.GetSlot: `7`})

	out, err := run(t, "-u", n.URL, "--timeout", "0s", "slot")
	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}

func TestCallCommand(t *testing.T) {
	n := newNode(t, map[string]string{"getBlockCommitment": `{"commitment":null,"totalStake":42}`})

	out, err := run(t, "-u", n.URL, "call", "getBlockCommitment", "5")
	require.NoError(t, err)
	require.JSONEq(t, `{"commitment":null,"totalStake":42}`, out)
	require.JSONEq(t, `5`, string(n.last(t).Params[0]))

	_, err = run(t, "-u", n.URL, "call", "getBlockCommitment", "not-json")
	require.Error(t, err)

	_, err = run(t, "-u", n.URL, "call")
	require.Error(t, err)
}

func TestCallCommandRPCError(t *testing.T) {
	n := newNode(t, nil)

	_, err := run(t, "-u", n.URL, "call", "noSuchMethod")
	require.True(t, solana.IsRPCError(err, solana.CodeMethodNotFound))
}

func TestBalanceCommand(t *testing.T) {
	n := newNode(t, map[string]string{solana.GetBalance: `{"context":{"slot":9},"value":1500000000}`})

	out, err := run(t, "-u", n.URL, "balance", "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	require.NoError(t, err)
	require.JSONEq(t, `{"slot":9,"lamports":1500000000,"sol":"1.5"}`, out)

	_, err = run(t, "-u", n.URL, "balance", "bad0key")
	require.ErrorIs(t, err, solana.ErrInvalidBase58)
}

func TestAccountCommandNotFound(t *testing.T) {
	n := newNode(t, map[string]string{solana.GetAccountInfo: `{"context":{"slot":9},"value":null}`})

	_, err := run(t, "-u", n.URL, "account", "--encoding", "base64+zstd", "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	require.ErrorIs(t, err, solana.ErrAccountNotFound)
	require.JSONEq(t, `{"commitment":"confirmed","encoding":"base64+zstd"}`, string(n.last(t).Params[1]))
}

func TestClustersCommand(t *testing.T) {
	out, err := run(t, "clusters")
	require.NoError(t, err)

	var clusters []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &clusters))
	require.Len(t, clusters, 4)
	require.Equal(t, "devnet", clusters[0]["name"])
	require.Equal(t, solana.Devnet, clusters[0]["url"])
}

func TestBadEndpoint(t *testing.T) {
	_, err := run(t, "-u", "ftp://node", "slot")
	require.Error(t, err)
}
