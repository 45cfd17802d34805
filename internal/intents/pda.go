package intents

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"intentfi-client-go/internal/config"
	"intentfi-client-go/pkg/pda"
)

// Seed prefixes used by the intent program.
const (
	protocolStateSeed = "protocol_state"
	userAccountSeed   = "user_account"
	intentSeed        = "intent"
)

// ProgramID returns the intent program address.
func ProgramID() solana.PublicKey {
	return solana.PublicKeyFromBytes(config.IntentProgramID)
}

// DeriveProtocolStatePDA derives the singleton protocol state address.
func DeriveProtocolStatePDA() (solana.PublicKey, uint8, error) {
	return pda.Derive([][]byte{[]byte(protocolStateSeed)}, ProgramID())
}

// DeriveUserAccountPDA derives the per-wallet user account address.
func DeriveUserAccountPDA(authority solana.PublicKey) (solana.PublicKey, uint8, error) {
	return pda.Derive([][]byte{
		[]byte(userAccountSeed),
		authority.Bytes(),
	}, ProgramID())
}

// DeriveIntentPDA derives the address of the next intent for a user. The
// program seeds each intent with total_intents_created + 1, so the caller
// passes the count read from the user account.
func DeriveIntentPDA(authority solana.PublicKey, totalIntentsCreated uint64) (solana.PublicKey, uint8, error) {
	var counter [8]byte
	binary.LittleEndian.PutUint64(counter[:], totalIntentsCreated+1)

	return pda.Derive([][]byte{
		[]byte(intentSeed),
		authority.Bytes(),
		counter[:],
	}, ProgramID())
}
