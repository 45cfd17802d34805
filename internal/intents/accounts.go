package intents

import (
	"github.com/gagliardetto/solana-go"

	"intentfi-client-go/pkg/anchor"
)

// Account discriminators, fixed by the program's account type names.
var (
	ProtocolStateDiscriminator = anchor.ComputeAccountDiscriminator("ProtocolState")
	UserAccountDiscriminator   = anchor.ComputeAccountDiscriminator("UserAccount")
	IntentAccountDiscriminator = anchor.ComputeAccountDiscriminator("IntentAccount")
)

// IntentType identifies what an intent wants done.
type IntentType uint8

const (
	IntentSwap IntentType = 0
	IntentLend IntentType = 1

	// IntentTypeUnknown marks a type byte this client does not know. The
	// raw byte is kept alongside in the account struct.
	IntentTypeUnknown IntentType = 255
)

func (t IntentType) String() string {
	switch t {
	case IntentSwap:
		return "swap"
	case IntentLend:
		return "lend"
	default:
		return "unknown"
	}
}

func intentTypeFromByte(b uint8) IntentType {
	switch IntentType(b) {
	case IntentSwap, IntentLend:
		return IntentType(b)
	default:
		return IntentTypeUnknown
	}
}

// IntentStatus is the lifecycle state of an intent.
type IntentStatus uint8

const (
	IntentPending   IntentStatus = 0
	IntentExecuted  IntentStatus = 1
	IntentCancelled IntentStatus = 2
	IntentExpired   IntentStatus = 3

	// IntentStatusUnknown marks a status byte this client does not know.
	IntentStatusUnknown IntentStatus = 255
)

func (s IntentStatus) String() string {
	switch s {
	case IntentPending:
		return "pending"
	case IntentExecuted:
		return "executed"
	case IntentCancelled:
		return "cancelled"
	case IntentExpired:
		return "expired"
	default:
		return "unknown"
	}
}

func intentStatusFromByte(b uint8) IntentStatus {
	switch IntentStatus(b) {
	case IntentPending, IntentExecuted, IntentCancelled, IntentExpired:
		return IntentStatus(b)
	default:
		return IntentStatusUnknown
	}
}

// ProtocolState is the global program state account.
type ProtocolState struct {
	Authority            solana.PublicKey
	TreasuryAuthority    solana.PublicKey
	ProtocolFeeBps       uint16
	TotalIntentsCreated  uint64
	TotalIntentsExecuted uint64
	IsPaused             bool
	Bump                 uint8
}

// UserAccount is the per-wallet account tracking intent counters.
type UserAccount struct {
	Authority           solana.PublicKey
	ActiveIntents       uint8
	TotalIntentsCreated uint64
	TotalVolume         uint64
	Bump                uint8
}

// IntentAccount is one recorded swap or lend intent.
type IntentAccount struct {
	Authority       solana.PublicKey
	IntentType      IntentType
	RawIntentType   uint8
	Status          IntentStatus
	RawStatus       uint8
	FromMint        solana.PublicKey
	ToMint          solana.PublicKey
	Amount          uint64
	ProtocolFee     uint64
	MaxSlippage     *uint16
	MinAPY          *uint16
	ExecutionOutput *uint64
	ExecutionAPY    *uint16
	CreatedAt       int64
	ExpiresAt       int64
	ExecutedAt      *int64
	CancelledAt     *int64
	Bump            uint8
}

// DecodeProtocolState parses a ProtocolState account buffer.
func DecodeProtocolState(data []byte) (*ProtocolState, error) {
	d, err := anchor.NewAccountDecoder(data, ProtocolStateDiscriminator)
	if err != nil {
		return nil, err
	}

	var state ProtocolState
	if state.Authority, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	if state.TreasuryAuthority, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	if state.ProtocolFeeBps, err = d.ReadU16(); err != nil {
		return nil, err
	}
	if state.TotalIntentsCreated, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if state.TotalIntentsExecuted, err = d.ReadU64(); err != nil {
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

// DecodeUserAccount parses a UserAccount account buffer.
func DecodeUserAccount(data []byte) (*UserAccount, error) {
	d, err := anchor.NewAccountDecoder(data, UserAccountDiscriminator)
	if err != nil {
		return nil, err
	}

	var account UserAccount
	if account.Authority, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	if account.ActiveIntents, err = d.ReadU8(); err != nil {
		return nil, err
	}
	if account.TotalIntentsCreated, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if account.TotalVolume, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if account.Bump, err = d.ReadU8(); err != nil {
		return nil, err
	}
	return &account, nil
}

// DecodeIntentAccount parses an IntentAccount account buffer.
func DecodeIntentAccount(data []byte) (*IntentAccount, error) {
	d, err := anchor.NewAccountDecoder(data, IntentAccountDiscriminator)
	if err != nil {
		return nil, err
	}

	var intent IntentAccount
	if intent.Authority, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	typeByte, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	intent.IntentType = intentTypeFromByte(typeByte)
	intent.RawIntentType = typeByte

	statusByte, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	intent.Status = intentStatusFromByte(statusByte)
	intent.RawStatus = statusByte

	if intent.FromMint, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	if intent.ToMint, err = d.ReadPubkey(); err != nil {
		return nil, err
	}
	if intent.Amount, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if intent.ProtocolFee, err = d.ReadU64(); err != nil {
		return nil, err
	}
	if intent.MaxSlippage, err = d.ReadOptionU16(); err != nil {
		return nil, err
	}
	if intent.MinAPY, err = d.ReadOptionU16(); err != nil {
		return nil, err
	}
	if intent.ExecutionOutput, err = d.ReadOptionU64(); err != nil {
		return nil, err
	}
	if intent.ExecutionAPY, err = d.ReadOptionU16(); err != nil {
		return nil, err
	}
	if intent.CreatedAt, err = d.ReadI64(); err != nil {
		return nil, err
	}
	if intent.ExpiresAt, err = d.ReadI64(); err != nil {
		return nil, err
	}
	if intent.ExecutedAt, err = d.ReadOptionI64(); err != nil {
		return nil, err
	}
	if intent.CancelledAt, err = d.ReadOptionI64(); err != nil {
		return nil, err
	}
	if intent.Bump, err = d.ReadU8(); err != nil {
		return nil, err
	}
	return &intent, nil
}
