package solana

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL uint64 = 1_000_000_000

const solDecimals = 9

// LamportsToSOL converts lamports to an exact SOL amount.
func LamportsToSOL(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -solDecimals)
}

// SOLToLamports converts a SOL amount to lamports. Fractions of a lamport and
// negative amounts are rejected.
func SOLToLamports(sol decimal.Decimal) (uint64, error) {
	if sol.IsNegative() {
		return 0, fmt.Errorf("negative amount %s", sol)
	}
	l := sol.Shift(solDecimals)
	if !l.Equal(l.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more than %d decimals", sol, solDecimals)
	}
	bi := l.BigInt()
	if !bi.IsUint64() {
		return 0, fmt.Errorf("amount %s overflows lamports", sol)
	}
	return bi.Uint64(), nil
}

// ParseSOL parses a decimal SOL string such as "1.5" into lamports.
func ParseSOL(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return SOLToLamports(d)
}

// Decimal returns the exact token amount using the raw amount and decimals,
// avoiding the float uiAmount.
func (a TokenAmount) Decimal() (decimal.Decimal, error) {
	raw, err := decimal.NewFromString(a.Amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("token amount %q: %w", a.Amount, err)
	}
	return raw.Shift(-int32(a.Decimals)), nil
}
