package launchpad

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intentfi-client-go/pkg/anchor"
)

func TestContributeToLaunchInstruction(t *testing.T) {
	ix, err := NewContributeToLaunchInstruction(testTreasury, testCreator, testMint, 500_000_000)
	require.NoError(t, err)

	assert.Equal(t, ProgramID(), ix.ProgramID())

	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 16)
	assert.Equal(t, "f4c53acb5a3bea4a", hex.EncodeToString(data[:8]))
	assert.Equal(t, uint64(500_000_000), binary.LittleEndian.Uint64(data[8:]))

	launchState, _, err := DeriveLaunchStatePDA(testCreator)
	require.NoError(t, err)
	contributorState, _, err := DeriveContributorStatePDA(launchState, testTreasury)
	require.NoError(t, err)
	launchpadState, _, err := DeriveLaunchpadStatePDA()
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 6)
	assert.Equal(t, testTreasury, accounts[0].PublicKey)
	assert.True(t, accounts[0].IsSigner)
	assert.Equal(t, launchState, accounts[1].PublicKey)
	assert.True(t, accounts[1].IsWritable)
	assert.Equal(t, contributorState, accounts[2].PublicKey)
	assert.Equal(t, launchpadState, accounts[3].PublicKey)
	assert.Equal(t, testMint, accounts[4].PublicKey)
	assert.False(t, accounts[5].IsWritable) // system_program
}

func TestCreateTokenLaunchInstruction(t *testing.T) {
	params := LaunchParams{
		TokenName:       "Example Token",
		TokenSymbol:     "EXT",
		TokenURI:        "https://example.com/token.json",
		SoftCap:         10_000_000_000,
		HardCap:         100_000_000_000,
		TokenPrice:      100_000,
		TokensForSale:   10_000_000_000_000_000,
		MinContribution: 100_000_000,
		MaxContribution: 5_000_000_000,
		LaunchDuration:  604_800,
	}

	ix, err := NewCreateTokenLaunchInstruction(testCreator, testMint, params)
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, "5d573a7e584bace9", hex.EncodeToString(data[:8]))

	// Arguments decode back in declaration order.
	d := anchor.NewDecoder(data[8:])
	name, err := d.ReadString()
	require.NoError(t, err)
	assert.Equal(t, params.TokenName, name)
	symbol, _ := d.ReadString()
	assert.Equal(t, params.TokenSymbol, symbol)
	uri, _ := d.ReadString()
	assert.Equal(t, params.TokenURI, uri)
	softCap, _ := d.ReadU64()
	assert.Equal(t, params.SoftCap, softCap)
	hardCap, _ := d.ReadU64()
	assert.Equal(t, params.HardCap, hardCap)
	price, _ := d.ReadU64()
	assert.Equal(t, params.TokenPrice, price)
	forSale, _ := d.ReadU64()
	assert.Equal(t, params.TokensForSale, forSale)
	minC, _ := d.ReadU64()
	assert.Equal(t, params.MinContribution, minC)
	maxC, _ := d.ReadU64()
	assert.Equal(t, params.MaxContribution, maxC)
	duration, err := d.ReadI64()
	require.NoError(t, err)
	assert.Equal(t, params.LaunchDuration, duration)
	assert.Equal(t, 0, d.Remaining())

	accounts := ix.Accounts()
	require.Len(t, accounts, 5)
	assert.Equal(t, testCreator, accounts[0].PublicKey)
	assert.True(t, accounts[0].IsSigner)
}

func TestCreateTokenMintInstructionMintIsSigner(t *testing.T) {
	metadata := testTreasury

	ix, err := NewCreateTokenMintInstruction(testCreator, testMint, metadata, 9, "Example", "EXT", "https://example.com")
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 8)
	// The mint keypair co-signs its own creation.
	assert.Equal(t, testMint, accounts[2].PublicKey)
	assert.True(t, accounts[2].IsSigner)
	assert.True(t, accounts[2].IsWritable)
}

func TestFinalizeLaunchInstruction(t *testing.T) {
	ix, err := NewFinalizeLaunchInstruction(testTreasury, testCreator)
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 8)
	assert.Equal(t, "71853ec43ad476a6", hex.EncodeToString(data))

	accounts := ix.Accounts()
	require.Len(t, accounts, 2)
	assert.True(t, accounts[0].IsSigner)
	assert.False(t, accounts[0].IsWritable)
	assert.True(t, accounts[1].IsWritable)
}

func TestNoArgInstructionsCarryOnlyDiscriminator(t *testing.T) {
	claimTokens, err := NewClaimTokensInstruction(testTreasury, testCreator, testMint, testMint)
	require.NoError(t, err)
	claimRefund, err := NewClaimRefundInstruction(testTreasury, testCreator)
	require.NoError(t, err)
	withdraw, err := NewWithdrawFundsInstruction(testCreator, testTreasury)
	require.NoError(t, err)

	for _, ix := range []struct {
		name string
		data func() ([]byte, error)
	}{
		{"claim_tokens", claimTokens.Data},
		{"claim_refund", claimRefund.Data},
		{"withdraw_funds", withdraw.Data},
	} {
		data, err := ix.data()
		require.NoError(t, err)
		assert.Len(t, data, 8, ix.name)
	}
}
