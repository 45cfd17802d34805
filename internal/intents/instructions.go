package intents

import (
	"github.com/gagliardetto/solana-go"

	"intentfi-client-go/internal/config"
	"intentfi-client-go/pkg/anchor"
)

// Instruction descriptors, one per program entry point.
var (
	InitializeProtocolDescriptor = anchor.NewInstructionDescriptor("initialize_protocol",
		anchor.FieldSpec{Name: "treasury_authority", Type: anchor.TypePubkey},
	)

	InitializeUserDescriptor = anchor.NewInstructionDescriptor("initialize_user")

	CreateSwapIntentDescriptor = anchor.NewInstructionDescriptor("create_swap_intent",
		anchor.FieldSpec{Name: "from_mint", Type: anchor.TypePubkey},
		anchor.FieldSpec{Name: "to_mint", Type: anchor.TypePubkey},
		anchor.FieldSpec{Name: "amount", Type: anchor.TypeU64},
		anchor.FieldSpec{Name: "max_slippage", Type: anchor.TypeU16},
	)

	ExecuteSwapIntentDescriptor = anchor.NewInstructionDescriptor("execute_swap_intent",
		anchor.FieldSpec{Name: "expected_output", Type: anchor.TypeU64},
	)

	CreateLendIntentDescriptor = anchor.NewInstructionDescriptor("create_lend_intent",
		anchor.FieldSpec{Name: "mint", Type: anchor.TypePubkey},
		anchor.FieldSpec{Name: "amount", Type: anchor.TypeU64},
		anchor.FieldSpec{Name: "min_apy", Type: anchor.TypeU16},
	)

	ExecuteLendIntentDescriptor = anchor.NewInstructionDescriptor("execute_lend_intent",
		anchor.FieldSpec{Name: "actual_apy", Type: anchor.TypeU16},
	)

	CancelIntentDescriptor = anchor.NewInstructionDescriptor("cancel_intent")
)

func systemProgram() solana.PublicKey {
	return solana.PublicKeyFromBytes(config.SystemProgramID)
}

func tokenProgram() solana.PublicKey {
	return solana.PublicKeyFromBytes(config.TokenProgramID)
}

// NewInitializeProtocolInstruction creates the one-time protocol state init.
func NewInitializeProtocolInstruction(
	authority solana.PublicKey,
	treasuryAuthority solana.PublicKey,
) (solana.Instruction, error) {
	protocolState, _, err := DeriveProtocolStatePDA()
	if err != nil {
		return nil, err
	}

	data, err := InitializeProtocolDescriptor.Encode(treasuryAuthority)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: authority, IsWritable: true, IsSigner: true},        // 0: authority
		{PublicKey: protocolState, IsWritable: true, IsSigner: false},   // 1: protocol_state
		{PublicKey: systemProgram(), IsWritable: false, IsSigner: false}, // 2: system_program
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// NewInitializeUserInstruction creates the caller's user account.
func NewInitializeUserInstruction(authority solana.PublicKey) (solana.Instruction, error) {
	userAccount, _, err := DeriveUserAccountPDA(authority)
	if err != nil {
		return nil, err
	}

	data, err := InitializeUserDescriptor.Encode()
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: authority, IsWritable: true, IsSigner: true},        // 0: authority
		{PublicKey: userAccount, IsWritable: true, IsSigner: false},     // 1: user_account
		{PublicKey: systemProgram(), IsWritable: false, IsSigner: false}, // 2: system_program
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// newCreateIntentInstruction builds create_swap_intent and create_lend_intent,
// which share the same account layout.
func newCreateIntentInstruction(
	authority solana.PublicKey,
	totalIntentsCreated uint64,
	data []byte,
) (solana.Instruction, error) {
	protocolState, _, err := DeriveProtocolStatePDA()
	if err != nil {
		return nil, err
	}
	userAccount, _, err := DeriveUserAccountPDA(authority)
	if err != nil {
		return nil, err
	}
	intentAccount, _, err := DeriveIntentPDA(authority, totalIntentsCreated)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: authority, IsWritable: true, IsSigner: true},        // 0: authority
		{PublicKey: protocolState, IsWritable: true, IsSigner: false},   // 1: protocol_state
		{PublicKey: userAccount, IsWritable: true, IsSigner: false},     // 2: user_account
		{PublicKey: intentAccount, IsWritable: true, IsSigner: false},   // 3: intent_account
		{PublicKey: systemProgram(), IsWritable: false, IsSigner: false}, // 4: system_program
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// NewCreateSwapIntentInstruction records a swap intent on chain.
// totalIntentsCreated is the counter from the caller's decoded UserAccount.
func NewCreateSwapIntentInstruction(
	authority solana.PublicKey,
	totalIntentsCreated uint64,
	fromMint, toMint solana.PublicKey,
	amount uint64,
	maxSlippageBps uint16,
) (solana.Instruction, error) {
	data, err := CreateSwapIntentDescriptor.Encode(fromMint, toMint, amount, maxSlippageBps)
	if err != nil {
		return nil, err
	}
	return newCreateIntentInstruction(authority, totalIntentsCreated, data)
}

// NewCreateLendIntentInstruction records a lend intent on chain.
func NewCreateLendIntentInstruction(
	authority solana.PublicKey,
	totalIntentsCreated uint64,
	mint solana.PublicKey,
	amount uint64,
	minAPYBps uint16,
) (solana.Instruction, error) {
	data, err := CreateLendIntentDescriptor.Encode(mint, amount, minAPYBps)
	if err != nil {
		return nil, err
	}
	return newCreateIntentInstruction(authority, totalIntentsCreated, data)
}

// NewExecuteSwapIntentInstruction settles a pending swap intent.
func NewExecuteSwapIntentInstruction(
	user solana.PublicKey,
	intentAccount solana.PublicKey,
	userSourceToken solana.PublicKey,
	userDestinationToken solana.PublicKey,
	treasuryFeeAccount solana.PublicKey,
	expectedOutput uint64,
) (solana.Instruction, error) {
	protocolState, _, err := DeriveProtocolStatePDA()
	if err != nil {
		return nil, err
	}
	userAccount, _, err := DeriveUserAccountPDA(user)
	if err != nil {
		return nil, err
	}

	data, err := ExecuteSwapIntentDescriptor.Encode(expectedOutput)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: user, IsWritable: true, IsSigner: true},                  // 0: user
		{PublicKey: intentAccount, IsWritable: true, IsSigner: false},        // 1: intent_account
		{PublicKey: protocolState, IsWritable: true, IsSigner: false},        // 2: protocol_state
		{PublicKey: userAccount, IsWritable: true, IsSigner: false},          // 3: user_account
		{PublicKey: userSourceToken, IsWritable: true, IsSigner: false},      // 4: user_source_token
		{PublicKey: userDestinationToken, IsWritable: true, IsSigner: false}, // 5: user_destination_token
		{PublicKey: treasuryFeeAccount, IsWritable: true, IsSigner: false},   // 6: treasury_fee_account
		{PublicKey: tokenProgram(), IsWritable: false, IsSigner: false},      // 7: token_program
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// NewExecuteLendIntentInstruction settles a pending lend intent.
func NewExecuteLendIntentInstruction(
	user solana.PublicKey,
	intentAccount solana.PublicKey,
	userTokenAccount solana.PublicKey,
	treasuryFeeAccount solana.PublicKey,
	actualAPYBps uint16,
) (solana.Instruction, error) {
	protocolState, _, err := DeriveProtocolStatePDA()
	if err != nil {
		return nil, err
	}
	userAccount, _, err := DeriveUserAccountPDA(user)
	if err != nil {
		return nil, err
	}

	data, err := ExecuteLendIntentDescriptor.Encode(actualAPYBps)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: user, IsWritable: true, IsSigner: true},                // 0: user
		{PublicKey: intentAccount, IsWritable: true, IsSigner: false},      // 1: intent_account
		{PublicKey: protocolState, IsWritable: true, IsSigner: false},      // 2: protocol_state
		{PublicKey: userAccount, IsWritable: true, IsSigner: false},        // 3: user_account
		{PublicKey: userTokenAccount, IsWritable: true, IsSigner: false},   // 4: user_token_account
		{PublicKey: treasuryFeeAccount, IsWritable: true, IsSigner: false}, // 5: treasury_fee_account
		{PublicKey: tokenProgram(), IsWritable: false, IsSigner: false},    // 6: token_program
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// NewCancelIntentInstruction cancels a pending intent.
func NewCancelIntentInstruction(
	authority solana.PublicKey,
	intentAccount solana.PublicKey,
) (solana.Instruction, error) {
	userAccount, _, err := DeriveUserAccountPDA(authority)
	if err != nil {
		return nil, err
	}

	data, err := CancelIntentDescriptor.Encode()
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: authority, IsWritable: true, IsSigner: true},      // 0: authority
		{PublicKey: intentAccount, IsWritable: true, IsSigner: false}, // 1: intent_account
		{PublicKey: userAccount, IsWritable: true, IsSigner: false},   // 2: user_account
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}
