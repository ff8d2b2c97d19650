package solana

import (
	"context"
	"errors"

	"github.com/btcsuite/btcutil/base58"
)

type ProgramQuery struct {
	client  *Client
	program *PublicKey
	config  GetProgramAccountsConfig
	err     error
}

// Limits enforced by nodes on getProgramAccounts filters.
const (
	MaxProgramFilters = 4
	MaxMemcmpBytes    = 128
)

const (
	ErrorRequiredProgram = "Program is required"
	ErrorTooManyFilters  = "At most 4 filters are allowed"
	ErrorMemcmpTooLong   = "Memcmp bytes must be at most 128 bytes"
	ErrorMemcmpEmpty     = "Memcmp bytes are required"
)

// NewProgramQuery returns a builder for getProgramAccounts.
//
// Example:
//
//	accounts, err := solana.NewProgramQuery().
//		Client(&client).
//		Program(solana.TokenProgramID).
//		DataSize(165).
//		Memcmp(32, owner[:]).
//		Fetch(ctx)
func NewProgramQuery() *ProgramQuery {
	return &ProgramQuery{}
}

// Client sets the client to use to connect to the network
func (q *ProgramQuery) Client(c *Client) *ProgramQuery {
	q.client = c
	return q
}

// Program sets the owner program of the accounts
func (q *ProgramQuery) Program(id PublicKey) *ProgramQuery {
	q.program = &id
	return q
}

func (q *ProgramQuery) Commitment(c Commitment) *ProgramQuery {
	q.config.Commitment = c
	return q
}

// Encoding of the returned account data. Defaults to base64.
func (q *ProgramQuery) Encoding(enc Encoding) *ProgramQuery {
	q.config.Encoding = enc
	return q
}

// DataSlice limits the returned data to length bytes from offset.
func (q *ProgramQuery) DataSlice(offset, length uint64) *ProgramQuery {
	q.config.DataSlice = &DataSlice{Offset: offset, Length: length}
	return q
}

func (q *ProgramQuery) MinContextSlot(slot uint64) *ProgramQuery {
	q.config.MinContextSlot = &slot
	return q
}

// DataSize keeps only accounts whose data is exactly size bytes long.
func (q *ProgramQuery) DataSize(size uint64) *ProgramQuery {
	q.config.Filters = append(q.config.Filters, AccountFilter{DataSize: &size})
	return q
}

// Memcmp keeps only accounts whose data matches b at offset.
func (q *ProgramQuery) Memcmp(offset uint64, b []byte) *ProgramQuery {
	switch {
	case q.err != nil:
	case len(b) == 0:
		q.err = errors.New(ErrorMemcmpEmpty)
	case len(b) > MaxMemcmpBytes:
		q.err = errors.New(ErrorMemcmpTooLong)
	}
	q.config.Filters = append(q.config.Filters, AccountFilter{Memcmp: &MemcmpFilter{
		Offset:   offset,
		Bytes:    base58.Encode(b),
		Encoding: EncodingBase58,
	}})
	return q
}

// Config returns the request configuration, or the first error a builder
// step recorded.
func (q *ProgramQuery) Config() (GetProgramAccountsConfig, error) {
	switch {
	case q.err != nil:
		return GetProgramAccountsConfig{}, q.err
	case q.program == nil:
		return GetProgramAccountsConfig{}, errors.New(ErrorRequiredProgram)
	case len(q.config.Filters) > MaxProgramFilters:
		return GetProgramAccountsConfig{}, errors.New(ErrorTooManyFilters)
	}
	config := q.config
	if config.Encoding == "" {
		config.Encoding = EncodingBase64
	}
	return config, nil
}

// Fetch returns the matching accounts with their data.
func (q *ProgramQuery) Fetch(ctx context.Context) ([]ProgramAccount, error) {
	if q.client == nil {
		return nil, errors.New(ErrorRequiredClient)
	}
	config, err := q.Config()
	if err != nil {
		return nil, err
	}
	return q.client.GetProgramAccounts(ctx, *q.program, &config)
}

// Keys returns only the addresses of the matching accounts. No account data
// is transferred. The query itself is left unchanged.
func (q *ProgramQuery) Keys(ctx context.Context) ([]PublicKey, error) {
	if q.client == nil {
		return nil, errors.New(ErrorRequiredClient)
	}
	config, err := q.Config()
	if err != nil {
		return nil, err
	}
	config.DataSlice = &DataSlice{}
	accounts, err := q.client.GetProgramAccounts(ctx, *q.program, &config)
	if err != nil {
		return nil, err
	}
	keys := make([]PublicKey, 0, len(accounts))
	for _, a := range accounts {
		keys = append(keys, a.Pubkey)
	}
	return keys, nil
}
