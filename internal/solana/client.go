package solana

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"
)

// Client represents a Solana RPC client wrapper
type Client struct {
	client *rpc.Client
	logger *logrus.Logger
}

// ClientConfig contains configuration for Solana client
type ClientConfig struct {
	RPCEndpoint string
	APIKey      string
	Timeout     time.Duration
}

// NewClient creates a new Solana RPC client
func NewClient(config ClientConfig, logger *logrus.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	var rpcClient *rpc.Client
	if config.APIKey != "" {
		rpcClient = rpc.NewWithHeaders(config.RPCEndpoint, map[string]string{
			"Authorization": "Bearer " + config.APIKey,
		})
	} else {
		rpcClient = rpc.New(config.RPCEndpoint)
	}

	return &Client{
		client: rpcClient,
		logger: logger,
	}
}

// GetAccountData fetches the raw data of an account. A missing account is
// reported as (nil, nil), not as an error; readiness checks depend on that
// distinction.
func (c *Client) GetAccountData(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	result, err := c.client.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
		Commitment: rpc.CommitmentConfirmed,
		Encoding:   solana.EncodingBase64,
	})
	if err != nil {
		if err == rpc.ErrNotFound {
			return nil, nil
		}
		return nil, networkErr("getAccountInfo", err)
	}
	if result == nil || result.Value == nil {
		return nil, nil
	}

	return result.Value.Data.GetBinary(), nil
}

// AccountExists reports whether the account has been created on chain.
func (c *Client) AccountExists(ctx context.Context, address solana.PublicKey) (bool, error) {
	data, err := c.GetAccountData(ctx, address)
	if err != nil {
		return false, err
	}
	return data != nil, nil
}

// GetBalance gets account balance in lamports
func (c *Client) GetBalance(ctx context.Context, address solana.PublicKey) (uint64, error) {
	result, err := c.client.GetBalance(ctx, address, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, networkErr("getBalance", err)
	}
	return result.Value, nil
}

// GetLatestBlockhash gets a recent blockhash for transaction assembly
func (c *Client) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	result, err := c.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, networkErr("getLatestBlockhash", err)
	}
	return result.Value.Blockhash, nil
}

// GetProgramAccounts fetches all accounts owned by a program whose data
// starts with the given 8-byte prefix, used to list launches or intents by
// account discriminator.
func (c *Client) GetProgramAccounts(ctx context.Context, programID solana.PublicKey, prefix []byte) (rpc.GetProgramAccountsResult, error) {
	opts := &rpc.GetProgramAccountsOpts{
		Commitment: rpc.CommitmentConfirmed,
		Encoding:   solana.EncodingBase64,
	}
	if len(prefix) > 0 {
		opts.Filters = []rpc.RPCFilter{
			{
				Memcmp: &rpc.RPCFilterMemcmp{
					Offset: 0,
					Bytes:  solana.Base58(prefix),
				},
			},
		}
	}

	result, err := c.client.GetProgramAccountsWithOpts(ctx, programID, opts)
	if err != nil {
		return nil, networkErr("getProgramAccounts", err)
	}
	return result, nil
}

// GetTokenAccountsByOwner lists a wallet's token accounts for a mint.
func (c *Client) GetTokenAccountsByOwner(ctx context.Context, owner, mint solana.PublicKey) (*rpc.GetTokenAccountsResult, error) {
	result, err := c.client.GetTokenAccountsByOwner(ctx, owner,
		&rpc.GetTokenAccountsConfig{Mint: &mint},
		&rpc.GetTokenAccountsOpts{
			Commitment: rpc.CommitmentConfirmed,
			Encoding:   solana.EncodingBase64,
		},
	)
	if err != nil {
		return nil, networkErr("getTokenAccountsByOwner", err)
	}
	return result, nil
}

// GetTokenAccountBalance gets a token account balance in base units
func (c *Client) GetTokenAccountBalance(ctx context.Context, address solana.PublicKey) (uint64, error) {
	result, err := c.client.GetTokenAccountBalance(ctx, address, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, networkErr("getTokenAccountBalance", err)
	}
	if result == nil || result.Value == nil {
		return 0, networkErr("getTokenAccountBalance", rpc.ErrNotFound)
	}

	amount, err := strconv.ParseUint(result.Value.Amount, 10, 64)
	if err != nil {
		return 0, networkErr("getTokenAccountBalance", err)
	}

	c.logger.WithFields(logrus.Fields{
		"account": address.String(),
		"amount":  amount,
	}).Debug("token balance fetched")

	return amount, nil
}

// SendTransaction sends a signed transaction to the network
func (c *Client) SendTransaction(ctx context.Context, transaction *solana.Transaction) (solana.Signature, error) {
	sig, err := c.client.SendTransactionWithOpts(ctx, transaction, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, networkErr("sendTransaction", err)
	}

	c.logger.WithField("signature", sig.String()).Info("transaction sent")
	return sig, nil
}

// ConfirmTransaction polls a signature until it confirms or the context ends
func (c *Client) ConfirmTransaction(ctx context.Context, signature solana.Signature) error {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return networkErr("confirmTransaction", ctx.Err())
		case <-ticker.C:
			result, err := c.client.GetSignatureStatuses(ctx, true, signature)
			if err != nil {
				return networkErr("getSignatureStatuses", err)
			}
			if result == nil || len(result.Value) == 0 || result.Value[0] == nil {
				continue
			}
			status := result.Value[0]
			if status.Err != nil {
				return networkErr("confirmTransaction", fmt.Errorf("transaction failed on chain: %v", status.Err))
			}
			if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
				status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
				return nil
			}
		}
	}
}
