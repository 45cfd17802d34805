package txutil

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"intentfi-client-go/internal/config"
)

// ComputeBudgetInstruction types
const (
	RequestUnitsInstruction        uint8 = 0 // Deprecated
	RequestHeapFrameInstruction    uint8 = 1
	SetComputeUnitLimitInstruction uint8 = 2
	SetComputeUnitPriceInstruction uint8 = 3
)

// NewSetComputeUnitLimitInstruction creates a compute unit limit instruction
func NewSetComputeUnitLimitInstruction(units uint32) solana.Instruction {
	data := make([]byte, 5) // 1 byte instruction + 4 bytes for units
	data[0] = SetComputeUnitLimitInstruction
	binary.LittleEndian.PutUint32(data[1:5], units)

	return solana.NewInstruction(
		solana.PublicKeyFromBytes(config.ComputeBudgetProgramID),
		[]*solana.AccountMeta{},
		data,
	)
}

// NewSetComputeUnitPriceInstruction creates a compute unit price instruction
// for priority fees, in micro-lamports per compute unit
func NewSetComputeUnitPriceInstruction(microLamports uint64) solana.Instruction {
	data := make([]byte, 9) // 1 byte instruction + 8 bytes for price
	data[0] = SetComputeUnitPriceInstruction
	binary.LittleEndian.PutUint64(data[1:9], microLamports)

	return solana.NewInstruction(
		solana.PublicKeyFromBytes(config.ComputeBudgetProgramID),
		[]*solana.AccountMeta{},
		data,
	)
}

// ComputeBudgetInstructions returns the leading budget instructions for a
// transaction: always a unit limit, plus a priority fee when one is set.
func ComputeBudgetInstructions(unitLimit uint32, priorityFee uint64) []solana.Instruction {
	instructions := []solana.Instruction{
		NewSetComputeUnitLimitInstruction(unitLimit),
	}
	if priorityFee > 0 {
		instructions = append(instructions, NewSetComputeUnitPriceInstruction(priorityFee))
	}
	return instructions
}
