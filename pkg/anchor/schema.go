package anchor

import (
	"github.com/gagliardetto/solana-go"
)

// FieldType identifies the wire encoding of one instruction argument.
type FieldType int

const (
	TypeU8 FieldType = iota
	TypeU16
	TypeU32
	TypeU64
	TypeI64
	TypeBool
	TypePubkey
	TypeString
	TypeOptionU16
	TypeOptionU64
	TypeOptionI64
)

// FieldSpec declares one argument: its name and wire type.
type FieldSpec struct {
	Name string
	Type FieldType
}

// InstructionDescriptor pairs an instruction discriminator with the ordered
// argument schema. Descriptors are declared once at compile time and never
// mutated.
type InstructionDescriptor struct {
	Name          string
	Discriminator Discriminator
	Args          []FieldSpec
}

// NewInstructionDescriptor builds a descriptor for the named instruction.
func NewInstructionDescriptor(name string, args ...FieldSpec) InstructionDescriptor {
	return InstructionDescriptor{
		Name:          name,
		Discriminator: ComputeInstructionDiscriminator(name),
		Args:          args,
	}
}

// Encode serializes the argument values in schema order, prefixed with the
// instruction discriminator. The value count and Go types must match the
// schema exactly; encoding is total and never truncates, but a string longer
// than MaxStringLen is rejected since no on-chain field can hold it.
func (desc *InstructionDescriptor) Encode(values ...interface{}) ([]byte, error) {
	if len(values) != len(desc.Args) {
		return nil, serializeErr(desc.Name, "", "want %d args, got %d",
			len(desc.Args), len(values))
	}

	ib := NewInstructionBuilder(desc.Name)
	for i, spec := range desc.Args {
		if err := encodeField(ib, desc.Name, spec, values[i]); err != nil {
			return nil, err
		}
	}
	return ib.Build(), nil
}

func encodeField(ib *InstructionBuilder, instruction string, spec FieldSpec, value interface{}) error {
	switch spec.Type {
	case TypeU8:
		v, ok := value.(uint8)
		if !ok {
			return typeErr(instruction, spec, value)
		}
		ib.AddU8(v)
	case TypeU16:
		v, ok := value.(uint16)
		if !ok {
			return typeErr(instruction, spec, value)
		}
		ib.AddU16(v)
	case TypeU32:
		v, ok := value.(uint32)
		if !ok {
			return typeErr(instruction, spec, value)
		}
		ib.AddU32(v)
	case TypeU64:
		v, ok := value.(uint64)
		if !ok {
			return typeErr(instruction, spec, value)
		}
		ib.AddU64(v)
	case TypeI64:
		v, ok := value.(int64)
		if !ok {
			return typeErr(instruction, spec, value)
		}
		ib.AddI64(v)
	case TypeBool:
		v, ok := value.(bool)
		if !ok {
			return typeErr(instruction, spec, value)
		}
		ib.AddBool(v)
	case TypePubkey:
		v, ok := value.(solana.PublicKey)
		if !ok {
			return typeErr(instruction, spec, value)
		}
		ib.AddPubkey(v)
	case TypeString:
		v, ok := value.(string)
		if !ok {
			return typeErr(instruction, spec, value)
		}
		if len(v) > MaxStringLen {
			return serializeErr(instruction, spec.Name,
				"string of %d bytes exceeds %d", len(v), MaxStringLen)
		}
		ib.AddString(v)
	case TypeOptionU16:
		v, ok := value.(*uint16)
		if !ok {
			return typeErr(instruction, spec, value)
		}
		ib.AddOptionU16(v)
	case TypeOptionU64:
		v, ok := value.(*uint64)
		if !ok {
			return typeErr(instruction, spec, value)
		}
		ib.AddOptionU64(v)
	case TypeOptionI64:
		v, ok := value.(*int64)
		if !ok {
			return typeErr(instruction, spec, value)
		}
		ib.AddOptionI64(v)
	default:
		return serializeErr(instruction, spec.Name, "unsupported field type %d", spec.Type)
	}
	return nil
}

func typeErr(instruction string, spec FieldSpec, value interface{}) error {
	return serializeErr(instruction, spec.Name, "value %T does not match schema", value)
}
