package wallet

import (
	"context"
	"fmt"

	"github.com/blocto/solana-go-sdk/types"
	gosolana "github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"
	"github.com/tyler-smith/go-bip39"

	"intentfi-client-go/internal/solana"
)

// Signer signs assembled transactions. Production wallets live outside this
// module; this interface is what the CLI and executors consume.
type Signer interface {
	PublicKey() gosolana.PublicKey
	SignTransaction(tx *gosolana.Transaction) error
}

// Wallet is a development signer backed by an in-memory keypair, loaded from
// a base58 private key or a bip39 mnemonic. Not for production funds.
type Wallet struct {
	account   types.Account
	key       gosolana.PrivateKey
	rpcClient *solana.Client
	logger    *logrus.Logger
}

// Config contains wallet configuration
type Config struct {
	PrivateKey string // base58-encoded 64-byte key
	Mnemonic   string // bip39 phrase, used when PrivateKey is empty
	Network    string
}

// NewWallet creates a wallet from the configured key material.
func NewWallet(cfg Config, rpcClient *solana.Client, logger *logrus.Logger) (*Wallet, error) {
	var account types.Account
	var err error

	switch {
	case cfg.PrivateKey != "":
		account, err = types.AccountFromBase58(cfg.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
	case cfg.Mnemonic != "":
		if !bip39.IsMnemonicValid(cfg.Mnemonic) {
			return nil, fmt.Errorf("invalid mnemonic phrase")
		}
		seed := bip39.NewSeed(cfg.Mnemonic, "")
		account, err = types.AccountFromSeed(seed[:32])
		if err != nil {
			return nil, fmt.Errorf("failed to derive account from mnemonic: %w", err)
		}
	default:
		return nil, fmt.Errorf("private key or mnemonic is required")
	}

	wallet := &Wallet{
		account:   account,
		key:       gosolana.PrivateKey(account.PrivateKey),
		rpcClient: rpcClient,
		logger:    logger,
	}

	logger.WithFields(logrus.Fields{
		"public_key": wallet.PublicKey().String(),
		"network":    cfg.Network,
	}).Info("wallet initialized")

	return wallet, nil
}

// PublicKey returns the wallet's public key.
func (w *Wallet) PublicKey() gosolana.PublicKey {
	return w.key.PublicKey()
}

// SignTransaction signs with the wallet key where it is a required signer.
func (w *Wallet) SignTransaction(tx *gosolana.Transaction) error {
	_, err := tx.Sign(func(key gosolana.PublicKey) *gosolana.PrivateKey {
		if key.Equals(w.PublicKey()) {
			return &w.key
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	return nil
}

// GetBalance returns the wallet's balance in lamports.
func (w *Wallet) GetBalance(ctx context.Context) (uint64, error) {
	balance, err := w.rpcClient.GetBalance(ctx, w.PublicKey())
	if err != nil {
		return 0, err
	}

	w.logger.WithField("balance_lamports", balance).Debug("wallet balance fetched")
	return balance, nil
}

// AssociatedTokenAddress returns the wallet's ATA for a mint (no RPC call).
func (w *Wallet) AssociatedTokenAddress(mint gosolana.PublicKey) (gosolana.PublicKey, error) {
	ata, _, err := gosolana.FindAssociatedTokenAddress(w.PublicKey(), mint)
	if err != nil {
		return gosolana.PublicKey{}, fmt.Errorf("failed to find ATA address: %w", err)
	}
	return ata, nil
}

// BuildTransaction assembles instructions into an unsigned transaction with
// the wallet as fee payer.
func (w *Wallet) BuildTransaction(
	instructions []gosolana.Instruction,
	recentBlockhash gosolana.Hash,
) (*gosolana.Transaction, error) {
	tx, err := gosolana.NewTransaction(
		instructions,
		recentBlockhash,
		gosolana.TransactionPayer(w.PublicKey()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}
	return tx, nil
}
