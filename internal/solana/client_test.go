package solana

import (
	"context"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient() *Client {
	return NewClient(ClientConfig{
		RPCEndpoint: "http://127.0.0.1:1",
		Timeout:     time.Second,
	}, quietLogger())
}

func TestConfirmTransactionContextCancelled(t *testing.T) {
	c := unreachableClient()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.ConfirmTransaction(ctx, solana.Signature{})
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetAccountDataTransportFailure(t *testing.T) {
	// A transport failure must surface as a NetworkError, never as the
	// (nil, nil) that means "account absent".
	c := unreachableClient()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.GetAccountData(ctx, solana.PublicKey{})
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Nil(t, data)
}
