package solana

import (
	"context"
	"fmt"
	"sort"

	"github.com/sebamiro/solana/internal/rpc"
)

//go:generate go run ./cmd/rpcgen -in methods.yaml -out methods.g.go

// Client wrapper of rpc.Client. Build it with NewClient: calls on the zero
// value fail with a *ConfigurationError.
type Client struct {
	*rpc.Client
}

type Option = rpc.Option

// Re-exported so callers never import internal/rpc.
var (
	WithHeaders = rpc.WithHeaders
	WithHTTP    = rpc.WithHTTP
	WithLogger  = rpc.WithLogger
	WithMetrics = rpc.WithMetrics
	NewMetrics  = rpc.NewMetrics
)

type Metrics = rpc.Metrics

// Public cluster endpoints.
const (
	MainnetBeta = "https://api.mainnet-beta.solana.com"
	Devnet      = "https://api.devnet.solana.com"
	Testnet     = "https://api.testnet.solana.com"
	Localnet    = "http://localhost:8899"
)

var clusters = map[string]string{
	"mainnet-beta": MainnetBeta,
	"devnet":       Devnet,
	"testnet":      Testnet,
	"localnet":     Localnet,
}

// ClusterURL returns the endpoint of a named cluster: mainnet-beta, devnet,
// testnet or localnet.
func ClusterURL(name string) (string, error) {
	u, ok := clusters[name]
	if !ok {
		return "", fmt.Errorf("unknown cluster %q", name)
	}
	return u, nil
}

// Clusters returns the known cluster names, sorted.
func Clusters() []string {
	names := make([]string, 0, len(clusters))
	for name := range clusters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewClient returns a Client for endpoint.
//
// Example:
//
//	c, err := solana.NewClient(solana.Devnet,
//		solana.WithHeaders(map[string]string{"Authorization": "Bearer " + token}))
func NewClient(endpoint string, opts ...Option) (Client, error) {
	c, err := rpc.NewClient(endpoint, opts...)
	if err != nil {
		return Client{}, err
	}
	return Client{c}, nil
}

// CallResult executes a call, with params if any, and saves the result into
// the interface passed as param. Trailing nil params are not sent.
func (c Client) CallResult(ctx context.Context, method string, result any, params ...any) error {
	return c.Client.CallResult(ctx, method, result, trimParams(params)...)
}

func trimParams(params []any) []any {
	n := len(params)
	for n > 0 && params[n-1] == nil {
		n--
	}
	return params[:n]
}

// optional turns an unset optional param into an untyped nil, which is
// trimmed when trailing and sent as null otherwise.
func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return v
}

func optionalSlice[T any](v []T) any {
	if v == nil {
		return nil
	}
	return v
}
