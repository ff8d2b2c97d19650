package solana

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
)

const (
	PublicKeyLength = 32
	SignatureLength = 64
	HashLength      = 32
)

var ErrInvalidBase58 = errors.New("invalid base58 string")

// PublicKey is an ed25519 account address, base58 encoded on the wire.
type PublicKey [PublicKeyLength]byte

// Signature is a transaction signature, base58 encoded on the wire.
type Signature [SignatureLength]byte

// Hash is a blockhash, base58 encoded on the wire.
type Hash [HashLength]byte

// Well known program ids.
var (
	SystemProgramID          = MustPublicKey("11111111111111111111111111111111")
	TokenProgramID           = MustPublicKey("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	Token2022ProgramID       = MustPublicKey("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	VoteProgramID            = MustPublicKey("Vote111111111111111111111111111111111111111")
	StakeProgramID           = MustPublicKey("Stake11111111111111111111111111111111111111")
	WrappedSOLMint           = MustPublicKey("So11111111111111111111111111111111111111112")
	AssociatedTokenProgramID = MustPublicKey("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
)

func decodeFixed(s string, dst []byte) error {
	if s == "" {
		return fmt.Errorf("%w: empty", ErrInvalidBase58)
	}
	b := base58.Decode(s)
	// base58.Decode returns an empty slice for characters outside the alphabet.
	if len(b) == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidBase58, s)
	}
	if len(b) != len(dst) {
		return fmt.Errorf("%w: %q decodes to %d bytes, want %d", ErrInvalidBase58, s, len(b), len(dst))
	}
	copy(dst, b)
	return nil
}

// ParsePublicKey decodes a base58 address.
func ParsePublicKey(s string) (PublicKey, error) {
	var k PublicKey
	err := decodeFixed(s, k[:])
	return k, err
}

// MustPublicKey is like ParsePublicKey but panics on error.
func MustPublicKey(s string) PublicKey {
	k, err := ParsePublicKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func (k PublicKey) String() string {
	return base58.Encode(k[:])
}

func (k PublicKey) IsZero() bool {
	return k == PublicKey{}
}

func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PublicKey) UnmarshalText(text []byte) error {
	return decodeFixed(string(text), k[:])
}

func ParseSignature(s string) (Signature, error) {
	var sig Signature
	err := decodeFixed(s, sig[:])
	return sig, err
}

func (s Signature) String() string {
	return base58.Encode(s[:])
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	return decodeFixed(string(text), s[:])
}

func ParseHash(s string) (Hash, error) {
	var h Hash
	err := decodeFixed(s, h[:])
	return h, err
}

func (h Hash) String() string {
	return base58.Encode(h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	return decodeFixed(string(text), h[:])
}
