// Package pda derives program addresses from seed byte sequences.
//
// The derivation must be bit-for-bit identical to the on-chain runtime:
// every other component locates accounts by recomputing these addresses
// instead of storing pointers.
package pda

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/gagliardetto/solana-go"
)

// ErrNoValidBump is returned when no bump in [0,255] yields an off-curve
// address. This cannot happen for real seed inputs; treat it as a logic
// error rather than retrying.
var ErrNoValidBump = errors.New("pda: no valid bump seed found")

// MaxSeeds is the runtime limit on the number of seeds per derivation.
const MaxSeeds = 16

// MaxSeedLen is the runtime limit on a single seed's byte length.
const MaxSeedLen = 32

const derivationMarker = "ProgramDerivedAddress"

// Derive finds the canonical program-derived address for the given seeds and
// program id: the first bump, scanning downward from 255, whose
// sha256(seeds || bump || programID || "ProgramDerivedAddress") is not a
// valid ed25519 curve point. Deterministic for identical inputs.
func Derive(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	if len(seeds) > MaxSeeds {
		return solana.PublicKey{}, 0, fmt.Errorf("pda: %d seeds exceeds limit of %d", len(seeds), MaxSeeds)
	}
	for i, seed := range seeds {
		if len(seed) > MaxSeedLen {
			return solana.PublicKey{}, 0, fmt.Errorf("pda: seed %d is %d bytes, limit %d", i, len(seed), MaxSeedLen)
		}
	}

	buf := make([]byte, 0, 128)
	for _, seed := range seeds {
		buf = append(buf, seed...)
	}
	base := len(buf)

	for bump := 255; bump >= 0; bump-- {
		buf = buf[:base]
		buf = append(buf, byte(bump))
		buf = append(buf, programID.Bytes()...)
		buf = append(buf, derivationMarker...)

		hash := sha256.Sum256(buf)
		if !isOnCurve(hash[:]) {
			return solana.PublicKeyFromBytes(hash[:]), uint8(bump), nil
		}
	}

	return solana.PublicKey{}, 0, ErrNoValidBump
}

// DeriveWithBump recomputes the address for a known bump, for example one
// stored on chain next to the account it derived. Errors if the resulting
// hash lands on the curve, since such an address can never be a PDA.
func DeriveWithBump(seeds [][]byte, bump uint8, programID solana.PublicKey) (solana.PublicKey, error) {
	buf := make([]byte, 0, 128)
	for _, seed := range seeds {
		buf = append(buf, seed...)
	}
	buf = append(buf, bump)
	buf = append(buf, programID.Bytes()...)
	buf = append(buf, derivationMarker...)

	hash := sha256.Sum256(buf)
	if isOnCurve(hash[:]) {
		return solana.PublicKey{}, fmt.Errorf("pda: bump %d yields an on-curve point", bump)
	}
	return solana.PublicKeyFromBytes(hash[:]), nil
}

// isOnCurve reports whether the 32 bytes decode to a point on the ed25519
// curve. Off-curve hashes are exactly the addresses with no private key.
func isOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
