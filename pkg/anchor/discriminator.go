package anchor

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Discriminator is the 8-byte selector that prefixes every Anchor instruction
// and account buffer.
type Discriminator [8]byte

// String returns the hex representation of the discriminator.
func (d Discriminator) String() string {
	return hex.EncodeToString(d[:])
}

// Bytes returns the discriminator as a byte slice.
func (d Discriminator) Bytes() []byte {
	return d[:]
}

// ComputeDiscriminator computes sha256(namespace + ":" + name)[0:8].
func ComputeDiscriminator(namespace, name string) Discriminator {
	hash := sha256.Sum256([]byte(namespace + ":" + name))

	var d Discriminator
	copy(d[:], hash[:8])
	return d
}

// ComputeInstructionDiscriminator computes the discriminator for an
// instruction, using Anchor's "global" namespace.
func ComputeInstructionDiscriminator(name string) Discriminator {
	return ComputeDiscriminator("global", name)
}

// ComputeAccountDiscriminator computes the discriminator for an account kind,
// using Anchor's "account" namespace.
func ComputeAccountDiscriminator(name string) Discriminator {
	return ComputeDiscriminator("account", name)
}

// DiscriminatorFromBytes reads the leading discriminator from raw data.
func DiscriminatorFromBytes(data []byte) (Discriminator, error) {
	if len(data) < 8 {
		return Discriminator{}, fmt.Errorf("%w: need 8 bytes for discriminator, got %d",
			ErrTruncatedData, len(data))
	}

	var d Discriminator
	copy(d[:], data[:8])
	return d, nil
}

// ValidateDiscriminator checks that data starts with the expected
// discriminator. A mismatch means the buffer holds a different account or
// instruction kind and must not be parsed with this schema.
func ValidateDiscriminator(data []byte, expected Discriminator) error {
	actual, err := DiscriminatorFromBytes(data)
	if err != nil {
		return err
	}
	if actual != expected {
		return fmt.Errorf("%w: discriminator %s, want %s",
			ErrUnknownVariant, actual, expected)
	}
	return nil
}
