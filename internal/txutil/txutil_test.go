package txutil

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	payer    = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	treasury = solana.MustPublicKeyFromBase58("SysvarRent111111111111111111111111111111111")
)

func TestSetComputeUnitLimitInstruction(t *testing.T) {
	ix := NewSetComputeUnitLimitInstruction(400_000)

	assert.Equal(t, solana.ComputeBudget, ix.ProgramID())
	assert.Empty(t, ix.Accounts())

	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 5)
	assert.Equal(t, SetComputeUnitLimitInstruction, data[0])
	assert.Equal(t, uint32(400_000), binary.LittleEndian.Uint32(data[1:]))
}

func TestSetComputeUnitPriceInstruction(t *testing.T) {
	ix := NewSetComputeUnitPriceInstruction(5_000)

	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 9)
	assert.Equal(t, SetComputeUnitPriceInstruction, data[0])
	assert.Equal(t, uint64(5_000), binary.LittleEndian.Uint64(data[1:]))
}

func TestComputeBudgetInstructions(t *testing.T) {
	// No priority fee: limit only.
	ixs := ComputeBudgetInstructions(200_000, 0)
	require.Len(t, ixs, 1)

	// With priority fee: limit first, then price.
	ixs = ComputeBudgetInstructions(200_000, 1_000)
	require.Len(t, ixs, 2)

	first, err := ixs[0].Data()
	require.NoError(t, err)
	assert.Equal(t, SetComputeUnitLimitInstruction, first[0])

	second, err := ixs[1].Data()
	require.NoError(t, err)
	assert.Equal(t, SetComputeUnitPriceInstruction, second[0])
}

func TestTransferInstruction(t *testing.T) {
	ix := NewTransferInstruction(payer, treasury, 20_000_000)

	assert.Equal(t, solana.SystemProgramID, ix.ProgramID())

	accounts := ix.Accounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, payer, accounts[0].PublicKey)
	assert.True(t, accounts[0].IsSigner)
	assert.True(t, accounts[0].IsWritable)
	assert.Equal(t, treasury, accounts[1].PublicKey)
	assert.False(t, accounts[1].IsSigner)
	assert.True(t, accounts[1].IsWritable)

	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 12)
	assert.Equal(t, systemTransferInstruction, binary.LittleEndian.Uint32(data[:4]))
	assert.Equal(t, uint64(20_000_000), binary.LittleEndian.Uint64(data[4:]))
}

func TestSelfTransferInstruction(t *testing.T) {
	ix := NewSelfTransferInstruction(payer, 0)

	accounts := ix.Accounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, payer, accounts[0].PublicKey)
	assert.Equal(t, payer, accounts[1].PublicKey)

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), binary.LittleEndian.Uint64(data[4:]))
}
