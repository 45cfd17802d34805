package launchpad

import (
	"github.com/gagliardetto/solana-go"

	"intentfi-client-go/internal/config"
	"intentfi-client-go/pkg/pda"
)

// Seed prefixes used by the launchpad program.
const (
	launchpadStateSeed = "launchpad_state"
	launchStateSeed    = "launch_state"
	contributorSeed    = "contributor"
)

// ProgramID returns the launchpad program address.
func ProgramID() solana.PublicKey {
	return solana.PublicKeyFromBytes(config.LaunchpadProgramID)
}

// DeriveLaunchpadStatePDA derives the singleton global state address.
func DeriveLaunchpadStatePDA() (solana.PublicKey, uint8, error) {
	return pda.Derive([][]byte{[]byte(launchpadStateSeed)}, ProgramID())
}

// DeriveLaunchStatePDA derives the launch state address for a creator. One
// launch per creator, by program design.
func DeriveLaunchStatePDA(creator solana.PublicKey) (solana.PublicKey, uint8, error) {
	return pda.Derive([][]byte{
		[]byte(launchStateSeed),
		creator.Bytes(),
	}, ProgramID())
}

// DeriveContributorStatePDA derives the per-contributor record for a launch.
func DeriveContributorStatePDA(launch, contributor solana.PublicKey) (solana.PublicKey, uint8, error) {
	return pda.Derive([][]byte{
		[]byte(contributorSeed),
		launch.Bytes(),
		contributor.Bytes(),
	}, ProgramID())
}
