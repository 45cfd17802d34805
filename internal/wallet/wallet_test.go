package wallet

import (
	"testing"

	"github.com/blocto/solana-go-sdk/types"
	gosolana "github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intentfi-client-go/internal/txutil"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestNewWalletFromPrivateKey(t *testing.T) {
	account := types.NewAccount()

	w, err := NewWallet(Config{
		PrivateKey: base58.Encode(account.PrivateKey),
		Network:    "devnet",
	}, nil, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, account.PublicKey.ToBase58(), w.PublicKey().String())
}

func TestNewWalletFromMnemonic(t *testing.T) {
	w, err := NewWallet(Config{
		Mnemonic: testMnemonic,
		Network:  "devnet",
	}, nil, quietLogger())
	require.NoError(t, err)
	assert.False(t, w.PublicKey().IsZero())

	// Same phrase, same key.
	again, err := NewWallet(Config{Mnemonic: testMnemonic}, nil, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, w.PublicKey(), again.PublicKey())
}

func TestNewWalletRejectsBadInput(t *testing.T) {
	_, err := NewWallet(Config{}, nil, quietLogger())
	assert.Error(t, err)

	_, err = NewWallet(Config{PrivateKey: "not-base58!!"}, nil, quietLogger())
	assert.Error(t, err)

	_, err = NewWallet(Config{Mnemonic: "definitely not a valid phrase"}, nil, quietLogger())
	assert.Error(t, err)
}

func TestSignTransaction(t *testing.T) {
	account := types.NewAccount()
	w, err := NewWallet(Config{
		PrivateKey: base58.Encode(account.PrivateKey),
	}, nil, quietLogger())
	require.NoError(t, err)

	tx, err := w.BuildTransaction(
		[]gosolana.Instruction{txutil.NewSelfTransferInstruction(w.PublicKey(), 0)},
		gosolana.Hash{},
	)
	require.NoError(t, err)

	require.NoError(t, w.SignTransaction(tx))
	require.Len(t, tx.Signatures, 1)
	assert.NoError(t, tx.VerifySignatures())
}

func TestAssociatedTokenAddress(t *testing.T) {
	account := types.NewAccount()
	w, err := NewWallet(Config{
		PrivateKey: base58.Encode(account.PrivateKey),
	}, nil, quietLogger())
	require.NoError(t, err)

	mint := gosolana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

	ata, err := w.AssociatedTokenAddress(mint)
	require.NoError(t, err)

	want, _, err := gosolana.FindAssociatedTokenAddress(w.PublicKey(), mint)
	require.NoError(t, err)
	assert.Equal(t, want, ata)
}
