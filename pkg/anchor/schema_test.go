package anchor

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorEncode(t *testing.T) {
	desc := NewInstructionDescriptor("contribute_to_launch",
		FieldSpec{Name: "amount", Type: TypeU64},
	)

	data, err := desc.Encode(uint64(500_000_000))
	require.NoError(t, err)
	require.Len(t, data, 16)

	assert.Equal(t, desc.Discriminator.Bytes(), data[:8])
	assert.Equal(t, uint64(500_000_000), binary.LittleEndian.Uint64(data[8:]))
}

func TestDescriptorEncodeAllTypes(t *testing.T) {
	desc := NewInstructionDescriptor("test_everything",
		FieldSpec{Name: "flag", Type: TypeBool},
		FieldSpec{Name: "key", Type: TypePubkey},
		FieldSpec{Name: "name", Type: TypeString},
		FieldSpec{Name: "rate", Type: TypeU16},
		FieldSpec{Name: "deadline", Type: TypeI64},
		FieldSpec{Name: "cap", Type: TypeOptionU64},
	)

	hardCap := uint64(77)
	data, err := desc.Encode(true, testKey, "ab", uint16(30), int64(-5), &hardCap)
	require.NoError(t, err)

	// 8 disc + 1 bool + 32 key + (4+2) string + 2 u16 + 8 i64 + (1+8) option
	assert.Len(t, data, 8+1+32+6+2+8+9)

	d := NewDecoder(data[8:])
	flag, _ := d.ReadBool()
	assert.True(t, flag)
	key, _ := d.ReadPubkey()
	assert.Equal(t, testKey, key)
	name, _ := d.ReadString()
	assert.Equal(t, "ab", name)
	rate, _ := d.ReadU16()
	assert.Equal(t, uint16(30), rate)
	deadline, _ := d.ReadI64()
	assert.Equal(t, int64(-5), deadline)
	got, err := d.ReadOptionU64()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, hardCap, *got)
}

func TestDescriptorEncodeArgCountMismatch(t *testing.T) {
	desc := NewInstructionDescriptor("create_swap_intent",
		FieldSpec{Name: "amount", Type: TypeU64},
		FieldSpec{Name: "max_slippage", Type: TypeU16},
	)

	_, err := desc.Encode(uint64(1))
	var serr *SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "create_swap_intent", serr.Instruction)
}

func TestDescriptorEncodeTypeMismatch(t *testing.T) {
	desc := NewInstructionDescriptor("create_swap_intent",
		FieldSpec{Name: "amount", Type: TypeU64},
	)

	// An int literal is not a uint64; silent coercion would corrupt the wire.
	_, err := desc.Encode(1)
	var serr *SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "amount", serr.Field)
}

func TestDescriptorEncodeStringTooLong(t *testing.T) {
	desc := NewInstructionDescriptor("create_token_launch",
		FieldSpec{Name: "uri", Type: TypeString},
	)

	huge := make([]byte, MaxStringLen+1)
	_, err := desc.Encode(string(huge))
	var serr *SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "uri", serr.Field)
}

func TestDescriptorEncodeNilOption(t *testing.T) {
	desc := NewInstructionDescriptor("test_option",
		FieldSpec{Name: "max_slippage", Type: TypeOptionU16},
	)

	data, err := desc.Encode((*uint16)(nil))
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, data[8:])
}
