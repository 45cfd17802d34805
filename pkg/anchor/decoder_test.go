package anchor

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

func TestDecoderReadsScalars(t *testing.T) {
	slippage := uint16(50)
	ib := NewInstructionBuilder("test")
	data := ib.
		AddU8(7).
		AddU16(0x0201).
		AddU32(0x04030201).
		AddU64(0x0807060504030201).
		AddI64(-42).
		AddBool(true).
		AddPubkey(testKey).
		AddString("hello").
		AddOptionU16(&slippage).
		AddOptionU64(nil).
		Build()

	d := NewDecoder(data[8:]) // skip the instruction discriminator

	u8, err := d.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(7), u8)

	u16, err := d.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0201), u16)

	u32, err := d.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), u32)

	u64, err := d.ReadU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0807060504030201), u64)

	i64, err := d.ReadI64()
	require.NoError(t, err)
	assert.Equal(t, int64(-42), i64)

	b, err := d.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	key, err := d.ReadPubkey()
	require.NoError(t, err)
	assert.Equal(t, testKey, key)

	s, err := d.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	opt16, err := d.ReadOptionU16()
	require.NoError(t, err)
	require.NotNil(t, opt16)
	assert.Equal(t, uint16(50), *opt16)

	opt64, err := d.ReadOptionU64()
	require.NoError(t, err)
	assert.Nil(t, opt64)

	assert.Equal(t, 0, d.Remaining())
}

func TestDecoderLittleEndian(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02, 0x03, 0x04})
	v, err := d.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), v)
}

// Decoding must fail cleanly at every possible truncation point, never
// panic and never return a partial success.
func TestDecoderTruncationSweep(t *testing.T) {
	apy := uint16(500)
	ib := NewInstructionBuilder("test")
	full := ib.
		AddPubkey(testKey).
		AddU64(1_000_000).
		AddString("TOKEN").
		AddOptionU16(&apy).
		AddI64(1_700_000_000).
		Build()

	decode := func(data []byte) error {
		d := NewDecoder(data)
		if _, err := d.ReadPubkey(); err != nil {
			return err
		}
		if _, err := d.ReadU64(); err != nil {
			return err
		}
		if _, err := d.ReadString(); err != nil {
			return err
		}
		if _, err := d.ReadOptionU16(); err != nil {
			return err
		}
		_, err := d.ReadI64()
		return err
	}

	payload := full[8:]
	require.NoError(t, decode(payload))

	for i := 0; i < len(payload); i++ {
		err := decode(payload[:i])
		assert.ErrorIs(t, err, ErrTruncatedData, "prefix length %d", i)
	}
}

func TestDecoderStringLengthBound(t *testing.T) {
	// A corrupt length prefix must be reported as invalid, not trusted and
	// then reported as a giant truncation.
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, MaxStringLen+1)

	d := NewDecoder(data)
	_, err := d.ReadString()
	assert.ErrorIs(t, err, ErrInvalidLength)

	// At the bound the length itself is fine; only the missing bytes fail.
	binary.LittleEndian.PutUint32(data, MaxStringLen)
	d = NewDecoder(data)
	_, err = d.ReadString()
	assert.ErrorIs(t, err, ErrTruncatedData)
}

func TestDecoderEmptyString(t *testing.T) {
	d := NewDecoder([]byte{0, 0, 0, 0})
	s, err := d.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Equal(t, 0, d.Remaining())
}

func TestDecoderOptionRoundTrip(t *testing.T) {
	out := uint64(123_456)
	ts := int64(-1)

	ib := NewInstructionBuilder("test")
	data := ib.
		AddOptionU64(&out).
		AddOptionI64(&ts).
		AddOptionI64(nil).
		Build()

	d := NewDecoder(data[8:])

	gotOut, err := d.ReadOptionU64()
	require.NoError(t, err)
	require.NotNil(t, gotOut)
	assert.Equal(t, out, *gotOut)

	gotTs, err := d.ReadOptionI64()
	require.NoError(t, err)
	require.NotNil(t, gotTs)
	assert.Equal(t, ts, *gotTs)

	gotNil, err := d.ReadOptionI64()
	require.NoError(t, err)
	assert.Nil(t, gotNil)
}

func TestNewAccountDecoder(t *testing.T) {
	disc := ComputeAccountDiscriminator("TestAccount")
	data := append(disc.Bytes(), 0x2A)

	d, err := NewAccountDecoder(data, disc)
	require.NoError(t, err)
	assert.Equal(t, 8, d.Offset())

	v, err := d.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2A), v)

	_, err = NewAccountDecoder(data, ComputeAccountDiscriminator("OtherAccount"))
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = NewAccountDecoder([]byte{1, 2}, disc)
	assert.ErrorIs(t, err, ErrTruncatedData)
}

func TestNewLooseAccountDecoder(t *testing.T) {
	data := append(ComputeAccountDiscriminator("Whatever").Bytes(), 9)

	d, err := NewLooseAccountDecoder(data)
	require.NoError(t, err)

	v, err := d.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(9), v)

	_, err = NewLooseAccountDecoder([]byte{1})
	assert.ErrorIs(t, err, ErrTruncatedData)
}
