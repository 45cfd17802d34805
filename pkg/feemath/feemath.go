// Package feemath holds the integer arithmetic shared by the launchpad and
// intent validators. Every function mirrors the on-chain program's checked
// u128 math exactly; a client that rounds differently would accept amounts
// the program rejects.
package feemath

import (
	"errors"
	"math/bits"
)

// ErrZeroPrice is returned when a token price of zero would divide by zero.
var ErrZeroPrice = errors.New("feemath: token price is zero")

// ErrOverflow is returned when an intermediate value exceeds 128 bits or a
// result exceeds 64 bits.
var ErrOverflow = errors.New("feemath: arithmetic overflow")

// BpsDenominator converts basis points to a fraction: 10000 bps = 100%.
const BpsDenominator = 10_000

// Fee computes floor(amount * bps / 10000). The schedule (200 bps for the
// launchpad, 30 bps for the intent protocol) is supplied by the caller.
func Fee(amount uint64, bps uint16) uint64 {
	// floor(a*b/c) == (a/c)*b + floor((a%c)*b/c); the remainder product is
	// at most 9999*65535 so nothing here can overflow or panic.
	b := uint64(bps)
	return amount/BpsDenominator*b + amount%BpsDenominator*b/BpsDenominator
}

// Pow10 returns 10^n for token decimal scaling. n above 19 overflows u64.
func Pow10(n uint8) (uint64, error) {
	if n > 19 {
		return 0, ErrOverflow
	}
	result := uint64(1)
	for i := uint8(0); i < n; i++ {
		result *= 10
	}
	return result, nil
}

// TokensToReceive computes floor(contribution * 10^decimals / tokenPrice)
// in token base units. Division truncates toward zero, matching the
// program's checked_mul/checked_div sequence.
func TokensToReceive(contribution uint64, decimals uint8, tokenPrice uint64) (uint64, error) {
	if tokenPrice == 0 {
		return 0, ErrZeroPrice
	}
	scale, err := Pow10(decimals)
	if err != nil {
		return 0, err
	}

	hi, lo := bits.Mul64(contribution, scale)
	if hi >= tokenPrice {
		// Quotient would not fit in 64 bits.
		return 0, ErrOverflow
	}
	q, _ := bits.Div64(hi, lo, tokenPrice)
	return q, nil
}

// MaxContributionFor computes floor(availableTokens * tokenPrice / 10^decimals),
// the largest contribution the remaining supply can satisfy. Reported to the
// caller alongside an insufficient-supply rejection.
func MaxContributionFor(availableTokens uint64, tokenPrice uint64, decimals uint8) (uint64, error) {
	scale, err := Pow10(decimals)
	if err != nil {
		return 0, err
	}

	hi, lo := bits.Mul64(availableTokens, tokenPrice)
	if hi >= scale {
		return 0, ErrOverflow
	}
	q, _ := bits.Div64(hi, lo, scale)
	return q, nil
}
