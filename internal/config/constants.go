package config

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Network endpoints.
const (
	SolanaMainnetRPC = "https://api.mainnet-beta.solana.com"
	SolanaDevnetRPC  = "https://api.devnet.solana.com"

	SolanaMainnetWS = "wss://api.mainnet-beta.solana.com"
	SolanaDevnetWS  = "wss://api.devnet.solana.com"

	LamportsPerSol = 1_000_000_000
)

// Program addresses.
var (
	// Launchpad program (token launches, contributions, claims)
	LaunchpadProgramID = mustDecodeBase58("5y2X9WML5ttrWrxzUfGrLSxbXfEcKTyV1dDyw2jXW1Zg")

	// Intent protocol program (swap/lend intents)
	IntentProgramID = mustDecodeBase58("2UPCMZ2LESPx8wU83wdng3Yjhx2yxRLEkEDYDkNUg1jd")

	// System program
	SystemProgramID = mustDecodeBase58("11111111111111111111111111111111")

	// Token program
	TokenProgramID = mustDecodeBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

	// Associated Token program
	AssociatedTokenProgramID = mustDecodeBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")

	// Metaplex token metadata program
	TokenMetadataProgramID = mustDecodeBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

	// Rent sysvar
	RentSysvarID = mustDecodeBase58("SysvarRent111111111111111111111111111111111")

	// Compute Budget program
	ComputeBudgetProgramID = mustDecodeBase58("ComputeBudget111111111111111111111111111111")
)

// Fee schedules. Both are defaults only; validators and executors take the
// rate as a parameter.
const (
	// Launchpad platform fee: 2%
	LaunchpadFeeBps = 200

	// Intent protocol fee: 0.3%
	IntentFeeBps = 30
)

// Protocol limits enforced on chain and pre-checked client side.
const (
	// Maximum swap slippage accepted by the intent program (10%)
	MaxSlippageBps = 1000

	// Maximum min-APY accepted by the lend intent (100%)
	MaxAPYBps = 10_000

	// Intent lifetime before the program treats it as expired
	IntentExpirySeconds = 7200
)

// mustDecodeBase58 decodes compile-time constant addresses and panics on
// error, which can only mean a typo in this file.
func mustDecodeBase58(addr string) []byte {
	decoded, err := base58.Decode(addr)
	if err != nil {
		panic("invalid base58 address: " + addr + ": " + err.Error())
	}
	return decoded
}

// decodeProgramID decodes a configured program address, requiring a full
// 32-byte public key.
func decodeProgramID(addr string) ([]byte, error) {
	decoded, err := base58.Decode(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid program address %q: %w", addr, err)
	}
	if len(decoded) != 32 {
		return nil, fmt.Errorf("program address %q is %d bytes, want 32", addr, len(decoded))
	}
	return decoded, nil
}

// GetRPCEndpoint returns the RPC endpoint for a network name.
func GetRPCEndpoint(network string) string {
	switch network {
	case "mainnet":
		return SolanaMainnetRPC
	default:
		return SolanaDevnetRPC
	}
}

// GetWSEndpoint returns the websocket endpoint for a network name.
func GetWSEndpoint(network string) string {
	switch network {
	case "mainnet":
		return SolanaMainnetWS
	default:
		return SolanaDevnetWS
	}
}
