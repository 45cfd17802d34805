package launchpad

import (
	"github.com/gagliardetto/solana-go"

	"intentfi-client-go/pkg/anchor"
)

// Account discriminators, fixed by the program's account type names.
var (
	LaunchpadStateDiscriminator   = anchor.ComputeAccountDiscriminator("LaunchpadState")
	LaunchStateDiscriminator      = anchor.ComputeAccountDiscriminator("LaunchState")
	ContributorStateDiscriminator = anchor.ComputeAccountDiscriminator("ContributorState")
)

// LaunchStatus is the lifecycle state of a token launch.
type LaunchStatus uint8

const (
	StatusActive     LaunchStatus = 0
	StatusSuccessful LaunchStatus = 1
	StatusFailed     LaunchStatus = 2
	StatusCancelled  LaunchStatus = 3

	// StatusUnknown marks a status byte this client version does not know.
	// A program upgrade may add variants; the client surfaces them instead
	// of defaulting to Active. The raw byte is kept in RawStatus.
	StatusUnknown LaunchStatus = 255
)

func (s LaunchStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSuccessful:
		return "successful"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func launchStatusFromByte(b uint8) LaunchStatus {
	switch LaunchStatus(b) {
	case StatusActive, StatusSuccessful, StatusFailed, StatusCancelled:
		return LaunchStatus(b)
	default:
		return StatusUnknown
	}
}

// LaunchpadState is the global program state account.
type LaunchpadState struct {
	Authority         solana.PublicKey
	TreasuryAuthority solana.PublicKey
	PlatformFeeBps    uint16
	TotalLaunches     uint64
	TotalRaised       uint64
	IsPaused          bool
	Bump              uint8
}

// LaunchState is the per-launch state account.
type LaunchState struct {
	Creator           solana.PublicKey
	TokenMint         solana.PublicKey
	TokenName         string
	TokenSymbol       string
	TokenURI          string
	SoftCap           uint64
	HardCap           uint64
	TokenPrice        uint64
	TokensForSale     uint64
	MinContribution   uint64
	MaxContribution   uint64
	LaunchStart       int64
	LaunchEnd         int64
	TotalRaised       uint64
	TotalContributors uint32
	TokensSold        uint64
	Status            LaunchStatus
	RawStatus         uint8
	Bump              uint8
}

// Finalized reports whether the launch has left the Active state.
func (ls *LaunchState) Finalized() bool {
	return ls.Status != StatusActive
}

// ContributorState records one wallet's participation in a launch.
type ContributorState struct {
	Contributor      solana.PublicKey
	Launch           solana.PublicKey
	TotalContributed uint64
	TokensOwed       uint64
	Claimed          bool
}

// DecodeLaunchpadState parses a LaunchpadState account buffer.
func DecodeLaunchpadState(data []byte) (*LaunchpadState, error) {
	d, err := anchor.NewAccountDecoder(data, LaunchpadStateDiscriminator)
	if err != nil {
		return nil, err
	}

	var state LaunchpadState
	if state.Authority, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	if state.TreasuryAuthority, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	if state.PlatformFeeBps, err = d.ReadU16(); err != nil {
		return nil, err
	}
	if state.TotalLaunches, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.TotalRaised, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.IsPaused, err = d.ReadBool(); err != nil {
		return nil, err
	}
	if state.Bump, err = d.ReadU8(); err != nil {
		return nil, err
	}
	return &state, nil
}

// DecodeLaunchState parses a LaunchState account buffer.
func DecodeLaunchState(data []byte) (*LaunchState, error) {
	d, err := anchor.NewAccountDecoder(data, LaunchStateDiscriminator)
	if err != nil {
		return nil, err
	}

	var state LaunchState
	if state.Creator, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	if state.TokenMint, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	if state.TokenName, err = d.ReadString(); err != nil {
		return nil, err
	}
	if state.TokenSymbol, err = d.ReadString(); err != nil {
		return nil, err
	}
	if state.TokenURI, err = d.ReadString(); err != nil {
		return nil, err
	}
	if state.SoftCap, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.HardCap, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.TokenPrice, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.TokensForSale, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.MinContribution, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.MaxContribution, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.LaunchStart, err = d.ReadI64(); err != nil {
		return nil, err
	}
	if state.LaunchEnd, err = d.ReadI64(); err != nil {
		return nil, err
	}
	if state.TotalRaised, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.TotalContributors, err = d.ReadU32(); err != nil {
		return nil, err
	}
	if state.TokensSold, err = d.ReadU64(); err != nil {
		return nil, err
	}
	statusByte, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	state.Status = launchStatusFromByte(statusByte)
	state.RawStatus = statusByte
	if state.Bump, err = d.ReadU8(); err != nil {
		return nil, err
	}
	return &state, nil
}

// DecodeContributorState parses a ContributorState account buffer.
func DecodeContributorState(data []byte) (*ContributorState, error) {
	d, err := anchor.NewAccountDecoder(data, ContributorStateDiscriminator)
	if err != nil {
		return nil, err
	}

	var state ContributorState
	if state.Contributor, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	if state.Launch, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	if state.TotalContributed, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.TokensOwed, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.Claimed, err = d.ReadBool(); err != nil {
		return nil, err
	}
	return &state, nil
}
