package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Client implements remote calls to a JSON-RPC 2.0 http server.
//
// Client is safe for concurrent use: every call gets a distinct, strictly
// increasing request id and the endpoint configuration never changes after
// NewClient returns.
type Client struct {
	url     string
	headers http.Header
	http    HTTP
	log     *zap.Logger
	metrics *Metrics

	id atomic.Uint64
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithHeaders merges headers over the defaults. Later values win.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers.Set(k, v)
		}
	}
}

// WithHTTP replaces http.DefaultClient as transport.
func WithHTTP(h HTTP) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = logger
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient returns a Client posting to endpoint, which must be an absolute
// http or https URL.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, &ConfigurationError{Field: "endpoint", Reason: "is required"}
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &ConfigurationError{Field: "endpoint", Reason: "is not a valid URL", Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &ConfigurationError{Field: "endpoint", Reason: "scheme must be http or https"}
	}
	if u.Host == "" {
		return nil, &ConfigurationError{Field: "endpoint", Reason: "host is required"}
	}

	c := &Client{
		url:     endpoint,
		headers: http.Header{"Content-Type": []string{"application/json"}},
		http:    http.DefaultClient,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("endpoint", u.Redacted()))
	return c, nil
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.url
}

// Header returns a copy of the headers sent with every request.
func (c *Client) Header() http.Header {
	return c.headers.Clone()
}

// Call remote server with given method and positional params and returns the
// raw result member of the response. The id counter advances exactly once
// per call, whatever the outcome.
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if c == nil {
		return nil, &ConfigurationError{Field: "client", Reason: "is nil, use NewClient"}
	}
	id := c.id.Add(1)
	start := time.Now()

	result, err := c.call(ctx, id, method, params)

	c.metrics.observe(method, err, time.Since(start))
	if err != nil {
		c.log.Debug("rpc call failed",
			zap.String("method", method),
			zap.Uint64("id", id),
			zap.Duration("took", time.Since(start)),
			zap.Error(err))
		return nil, err
	}
	c.log.Debug("rpc call",
		zap.String("method", method),
		zap.Uint64("id", id),
		zap.Duration("took", time.Since(start)),
		zap.Int("bytes", len(result)))
	return result, nil
}

// CallResult executes a call and saves the result into the value pointed to
// by result. A nil result discards it.
func (c *Client) CallResult(ctx context.Context, method string, result any, params ...any) error {
	raw, err := c.Call(ctx, method, params...)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return newMalformed(method, raw, err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, id uint64, method string, params []any) (json.RawMessage, error) {
	if method == "" {
		return nil, &ConfigurationError{Field: "method", Reason: "is required"}
	}
	if params == nil {
		params = []any{}
	}
	b, err := json.Marshal(Request{Version: Version, ID: id, Method: method, Params: params})
	if err != nil {
		return nil, &ConfigurationError{Field: "params", Reason: "cannot be encoded as JSON", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	for k, v := range c.headers {
		req.Header[k] = append([]string(nil), v...)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, StatusCode: resp.StatusCode, Err: err}
	}

	envelope, decodeErr := decodeResponse(body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Some providers answer rate limits and bad requests with a proper
		// error envelope; keep the node's code when there is one.
		if decodeErr == nil && envelope.Error != nil {
			return nil, newRPCError(envelope.Error)
		}
		return nil, &TransportError{Method: method, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}
	if decodeErr != nil {
		return nil, newMalformed(method, body, decodeErr)
	}
	if envelope.Error != nil {
		return nil, newRPCError(envelope.Error)
	}
	return envelope.Result, nil
}
