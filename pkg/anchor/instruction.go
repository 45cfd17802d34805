package anchor

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

// InstructionBuilder accumulates instruction data in Anchor wire order:
// the 8-byte discriminator followed by each argument, little-endian.
type InstructionBuilder struct {
	data []byte
}

// NewInstructionBuilder starts instruction data for the named instruction.
func NewInstructionBuilder(instructionName string) *InstructionBuilder {
	d := ComputeInstructionDiscriminator(instructionName)
	return &InstructionBuilder{data: d.Bytes()}
}

// AddU8 appends a u8.
func (ib *InstructionBuilder) AddU8(value uint8) *InstructionBuilder {
	ib.data = append(ib.data, value)
	return ib
}

// AddU16 appends a little-endian u16.
func (ib *InstructionBuilder) AddU16(value uint16) *InstructionBuilder {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, value)
	ib.data = append(ib.data, buf...)
	return ib
}

// AddU32 appends a little-endian u32.
func (ib *InstructionBuilder) AddU32(value uint32) *InstructionBuilder {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, value)
	ib.data = append(ib.data, buf...)
	return ib
}

// AddU64 appends a little-endian u64.
func (ib *InstructionBuilder) AddU64(value uint64) *InstructionBuilder {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, value)
	ib.data = append(ib.data, buf...)
	return ib
}

// AddI64 appends a little-endian i64 (two's complement).
func (ib *InstructionBuilder) AddI64(value int64) *InstructionBuilder {
	return ib.AddU64(uint64(value))
}

// AddBool appends a bool as a single 0/1 byte.
func (ib *InstructionBuilder) AddBool(value bool) *InstructionBuilder {
	if value {
		return ib.AddU8(1)
	}
	return ib.AddU8(0)
}

// AddString appends a u32 byte-length prefix followed by the UTF-8 bytes.
// No terminator, no padding.
func (ib *InstructionBuilder) AddString(value string) *InstructionBuilder {
	raw := []byte(value)
	ib.AddU32(uint32(len(raw)))
	ib.data = append(ib.data, raw...)
	return ib
}

// AddPubkey appends the 32 raw bytes of a public key.
func (ib *InstructionBuilder) AddPubkey(key solana.PublicKey) *InstructionBuilder {
	ib.data = append(ib.data, key.Bytes()...)
	return ib
}

// AddOptionU16 appends a presence byte, then the value if present.
func (ib *InstructionBuilder) AddOptionU16(value *uint16) *InstructionBuilder {
	if value == nil {
		return ib.AddU8(0)
	}
	return ib.AddU8(1).AddU16(*value)
}

// AddOptionU64 appends a presence byte, then the value if present.
func (ib *InstructionBuilder) AddOptionU64(value *uint64) *InstructionBuilder {
	if value == nil {
		return ib.AddU8(0)
	}
	return ib.AddU8(1).AddU64(*value)
}

// AddOptionI64 appends a presence byte, then the value if present.
func (ib *InstructionBuilder) AddOptionI64(value *int64) *InstructionBuilder {
	if value == nil {
		return ib.AddU8(0)
	}
	return ib.AddU8(1).AddI64(*value)
}

// Build returns the accumulated instruction data.
func (ib *InstructionBuilder) Build() []byte {
	return ib.data
}
