package txutil

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"intentfi-client-go/internal/config"
)

// System program instruction index for Transfer.
const systemTransferInstruction uint32 = 2

// NewTransferInstruction creates a system program lamport transfer.
func NewTransferInstruction(from, to solana.PublicKey, lamports uint64) solana.Instruction {
	data := make([]byte, 12) // 4 bytes instruction index + 8 bytes lamports
	binary.LittleEndian.PutUint32(data[0:4], systemTransferInstruction)
	binary.LittleEndian.PutUint64(data[4:12], lamports)

	return solana.NewInstruction(
		solana.PublicKeyFromBytes(config.SystemProgramID),
		[]*solana.AccountMeta{
			solana.NewAccountMeta(from, true, true),
			solana.NewAccountMeta(to, true, false),
		},
		data,
	)
}

// NewSelfTransferInstruction creates a zero-value transfer from the signer to
// itself. Used as a placeholder body when an intent is recorded off chain and
// the transaction still has to land so the fee transfer settles.
func NewSelfTransferInstruction(signer solana.PublicKey, lamports uint64) solana.Instruction {
	return NewTransferInstruction(signer, signer, lamports)
}
