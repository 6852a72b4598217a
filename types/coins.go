// Package types provides common types used across Tycoon.
package types

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// BpsDenominator is the basis-point scale: 10,000 bp = 100%.
const BpsDenominator = 10_000

// MicrosPerCoin is the fixed-point scale for display: one whole coin
// is 1,000,000 micros. All arithmetic happens in micros.
const MicrosPerCoin = 1_000_000

// ErrOverflow is returned when an arithmetic operation would wrap.
// No Coins operation ever wraps silently.
var ErrOverflow = errors.New("tycoon: math overflow")

// Coins represents an unsigned in-game value in micros.
// All arithmetic is integer-only and overflow-checked — an operation that
// would wrap returns ErrOverflow instead of a wrapped result.
type Coins uint64

// MaxCoins is the largest representable value.
const MaxCoins = Coins(math.MaxUint64)

// FromWhole converts a whole-coin count into micros.
// It panics on overflow; use for hardcoded catalog values only.
func FromWhole(whole uint64) Coins {
	c, err := Coins(whole).Mul(MicrosPerCoin)
	if err != nil {
		panic(fmt.Sprintf("coins: %d whole coins overflows", whole))
	}
	return c
}

// Add returns c + other, or ErrOverflow if the sum wraps.
func (c Coins) Add(other Coins) (Coins, error) {
	sum, carry := bits.Add64(uint64(c), uint64(other), 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return Coins(sum), nil
}

// Sub returns c - other, or ErrOverflow if other exceeds c.
func (c Coins) Sub(other Coins) (Coins, error) {
	diff, borrow := bits.Sub64(uint64(c), uint64(other), 0)
	if borrow != 0 {
		return 0, ErrOverflow
	}
	return Coins(diff), nil
}

// Mul returns c * factor, or ErrOverflow if the product wraps.
func (c Coins) Mul(factor uint64) (Coins, error) {
	hi, lo := bits.Mul64(uint64(c), factor)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return Coins(lo), nil
}

// MulDiv returns c * num / den using a 128-bit intermediate, floored.
// It returns ErrOverflow if the quotient does not fit in 64 bits and
// panics if den is zero (programming error).
func (c Coins) MulDiv(num, den uint64) (Coins, error) {
	if den == 0 {
		panic("coins: division by zero")
	}
	hi, lo := bits.Mul64(uint64(c), num)
	if hi >= den {
		return 0, ErrOverflow
	}
	quo, _ := bits.Div64(hi, lo, den)
	return Coins(quo), nil
}

// ApplyBps returns c * bps / 10,000, floored — fractional micros are
// dropped, never rounded. A zero bps always yields zero.
func (c Coins) ApplyBps(bps uint32) (Coins, error) {
	if bps == 0 {
		return 0, nil
	}
	return c.MulDiv(uint64(bps), BpsDenominator)
}

// AddBps returns c inflated by bps basis points: c + c*bps/10,000.
func (c Coins) AddBps(bps uint32) (Coins, error) {
	bonus, err := c.ApplyBps(bps)
	if err != nil {
		return 0, err
	}
	return c.Add(bonus)
}

// IsZero reports whether the value is zero.
func (c Coins) IsZero() bool { return c == 0 }

// Min returns the smaller of two values.
func (c Coins) Min(other Coins) Coins {
	if other < c {
		return other
	}
	return c
}

// Max returns the larger of two values.
func (c Coins) Max(other Coins) Coins {
	if other > c {
		return other
	}
	return c
}

// Whole returns the whole-coin part of the value.
func (c Coins) Whole() uint64 { return uint64(c) / MicrosPerCoin }

// Micros returns the raw value in micros.
func (c Coins) Micros() uint64 { return uint64(c) }

// String returns a human-readable decimal representation, e.g. "49.500000".
func (c Coins) String() string {
	return fmt.Sprintf("%d.%06d", uint64(c)/MicrosPerCoin, uint64(c)%MicrosPerCoin)
}

// SumCoins adds a series of values, overflow-checked at every step.
func SumCoins(values ...Coins) (Coins, error) {
	var total Coins
	for _, v := range values {
		sum, err := total.Add(v)
		if err != nil {
			return 0, err
		}
		total = sum
	}
	return total, nil
}
