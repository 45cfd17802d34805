package anchor

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// MaxStringLen bounds the length prefix of any string field. A prefix above
// this is treated as corruption rather than trusted, since no on-chain
// name/symbol/uri field comes anywhere near it.
const MaxStringLen = 10_000

// Decoder walks raw account or instruction data with bounds checking on
// every read. A failed read returns ErrTruncatedData or ErrInvalidLength and
// leaves the offset unchanged; it never reads out of bounds or panics.
type Decoder struct {
	data   []byte
	offset int
}

// NewDecoder creates a decoder positioned at the start of data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// NewAccountDecoder validates the expected account discriminator and returns
// a decoder positioned just past it.
func NewAccountDecoder(data []byte, expected Discriminator) (*Decoder, error) {
	if err := ValidateDiscriminator(data, expected); err != nil {
		return nil, err
	}
	return &Decoder{data: data, offset: 8}, nil
}

// NewLooseAccountDecoder skips the leading 8 bytes without validating them.
// Useful when reading accounts from a program version whose discriminators
// are not known yet.
func NewLooseAccountDecoder(data []byte) (*Decoder, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: need 8 bytes for discriminator, got %d",
			ErrTruncatedData, len(data))
	}
	return &Decoder{data: data, offset: 8}, nil
}

// Offset returns the current read position.
func (d *Decoder) Offset() int {
	return d.offset
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.offset
}

func (d *Decoder) require(width int, what string) error {
	if d.offset+width > len(d.data) {
		return fmt.Errorf("%w: %s needs %d bytes at offset %d, have %d",
			ErrTruncatedData, what, width, d.offset, len(d.data)-d.offset)
	}
	return nil
}

// ReadU8 reads a u8.
func (d *Decoder) ReadU8() (uint8, error) {
	if err := d.require(1, "u8"); err != nil {
		return 0, err
	}
	v := d.data[d.offset]
	d.offset++
	return v, nil
}

// ReadU16 reads a little-endian u16.
func (d *Decoder) ReadU16() (uint16, error) {
	if err := d.require(2, "u16"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(d.data[d.offset:])
	d.offset += 2
	return v, nil
}

// ReadU32 reads a little-endian u32.
func (d *Decoder) ReadU32() (uint32, error) {
	if err := d.require(4, "u32"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(d.data[d.offset:])
	d.offset += 4
	return v, nil
}

// ReadU64 reads a little-endian u64.
func (d *Decoder) ReadU64() (uint64, error) {
	if err := d.require(8, "u64"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(d.data[d.offset:])
	d.offset += 8
	return v, nil
}

// ReadI64 reads a little-endian i64.
func (d *Decoder) ReadI64() (int64, error) {
	v, err := d.ReadU64()
	return int64(v), err
}

// ReadBool reads a single byte, any non-zero value is true.
func (d *Decoder) ReadBool() (bool, error) {
	v, err := d.ReadU8()
	return v != 0, err
}

// ReadPubkey reads 32 raw bytes as a public key.
func (d *Decoder) ReadPubkey() (solana.PublicKey, error) {
	if err := d.require(32, "pubkey"); err != nil {
		return solana.PublicKey{}, err
	}
	key := solana.PublicKeyFromBytes(d.data[d.offset : d.offset+32])
	d.offset += 32
	return key, nil
}

// ReadString reads a u32-length-prefixed UTF-8 string. The length is
// sanity-bounded before the buffer bounds check so that a corrupt prefix is
// reported as ErrInvalidLength instead of a huge truncation error.
func (d *Decoder) ReadString() (string, error) {
	if err := d.require(4, "string length"); err != nil {
		return "", err
	}
	length := binary.LittleEndian.Uint32(d.data[d.offset:])
	if length > MaxStringLen {
		return "", fmt.Errorf("%w: string length %d exceeds %d",
			ErrInvalidLength, length, MaxStringLen)
	}
	if d.offset+4+int(length) > len(d.data) {
		return "", fmt.Errorf("%w: string of length %d at offset %d, have %d bytes",
			ErrTruncatedData, length, d.offset+4, len(d.data)-d.offset-4)
	}
	d.offset += 4
	s := string(d.data[d.offset : d.offset+int(length)])
	d.offset += int(length)
	return s, nil
}

// ReadOptionU16 reads a presence byte, then the value if present.
func (d *Decoder) ReadOptionU16() (*uint16, error) {
	present, err := d.ReadBool()
	if err != nil || !present {
		return nil, err
	}
	v, err := d.ReadU16()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ReadOptionU64 reads a presence byte, then the value if present.
func (d *Decoder) ReadOptionU64() (*uint64, error) {
	present, err := d.ReadBool()
	if err != nil || !present {
		return nil, err
	}
	v, err := d.ReadU64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ReadOptionI64 reads a presence byte, then the value if present.
func (d *Decoder) ReadOptionI64() (*int64, error) {
	present, err := d.ReadBool()
	if err != nil || !present {
		return nil, err
	}
	v, err := d.ReadI64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}
