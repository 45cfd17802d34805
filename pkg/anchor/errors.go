package anchor

import (
	"errors"
	"fmt"
)

// ErrTruncatedData is returned when a read would run past the end of the
// buffer.
var ErrTruncatedData = errors.New("anchor: truncated data")

// ErrInvalidLength is returned when a length prefix fails its sanity bound
// before any buffer access.
var ErrInvalidLength = errors.New("anchor: invalid length prefix")

// ErrUnknownVariant is returned when a discriminator or enum byte does not
// match any known variant.
var ErrUnknownVariant = errors.New("anchor: unknown variant")

// SerializationError reports an encode failure with enough context to name
// the offending instruction and field.
type SerializationError struct {
	Instruction string
	Field       string
	Reason      string
}

func (e *SerializationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("anchor: encode %s: %s", e.Instruction, e.Reason)
	}
	return fmt.Sprintf("anchor: encode %s.%s: %s", e.Instruction, e.Field, e.Reason)
}

func serializeErr(instruction, field, format string, args ...interface{}) error {
	return &SerializationError{
		Instruction: instruction,
		Field:       field,
		Reason:      fmt.Sprintf(format, args...),
	}
}
