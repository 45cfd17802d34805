package launchpad

import (
	"github.com/gagliardetto/solana-go"

	"intentfi-client-go/internal/config"
	"intentfi-client-go/pkg/anchor"
)

// Instruction descriptors, one per program entry point. Argument order
// matches the on-chain handler signatures exactly.
var (
	InitializeLaunchpadDescriptor = anchor.NewInstructionDescriptor("initialize_launchpad",
		anchor.FieldSpec{Name: "platform_fee_bps", Type: anchor.TypeU16},
		anchor.FieldSpec{Name: "treasury_authority", Type: anchor.TypePubkey},
	)

	CreateTokenLaunchDescriptor = anchor.NewInstructionDescriptor("create_token_launch",
		anchor.FieldSpec{Name: "token_name", Type: anchor.TypeString},
		anchor.FieldSpec{Name: "token_symbol", Type: anchor.TypeString},
		anchor.FieldSpec{Name: "token_uri", Type: anchor.TypeString},
		anchor.FieldSpec{Name: "soft_cap", Type: anchor.TypeU64},
		anchor.FieldSpec{Name: "hard_cap", Type: anchor.TypeU64},
		anchor.FieldSpec{Name: "token_price", Type: anchor.TypeU64},
		anchor.FieldSpec{Name: "tokens_for_sale", Type: anchor.TypeU64},
		anchor.FieldSpec{Name: "min_contribution", Type: anchor.TypeU64},
		anchor.FieldSpec{Name: "max_contribution", Type: anchor.TypeU64},
		anchor.FieldSpec{Name: "launch_duration", Type: anchor.TypeI64},
	)

	CreateTokenMintDescriptor = anchor.NewInstructionDescriptor("create_token_mint",
		anchor.FieldSpec{Name: "decimals", Type: anchor.TypeU8},
		anchor.FieldSpec{Name: "name", Type: anchor.TypeString},
		anchor.FieldSpec{Name: "symbol", Type: anchor.TypeString},
		anchor.FieldSpec{Name: "uri", Type: anchor.TypeString},
	)

	ContributeToLaunchDescriptor = anchor.NewInstructionDescriptor("contribute_to_launch",
		anchor.FieldSpec{Name: "amount", Type: anchor.TypeU64},
	)

	FinalizeLaunchDescriptor = anchor.NewInstructionDescriptor("finalize_launch")
	ClaimTokensDescriptor    = anchor.NewInstructionDescriptor("claim_tokens")
	ClaimRefundDescriptor    = anchor.NewInstructionDescriptor("claim_refund")
	WithdrawFundsDescriptor  = anchor.NewInstructionDescriptor("withdraw_funds")
)

// LaunchParams carries the create_token_launch arguments.
type LaunchParams struct {
	TokenName       string
	TokenSymbol     string
	TokenURI        string
	SoftCap         uint64
	HardCap         uint64
	TokenPrice      uint64
	TokensForSale   uint64
	MinContribution uint64
	MaxContribution uint64
	LaunchDuration  int64
}

// NewInitializeLaunchpadInstruction creates the one-time global state init.
func NewInitializeLaunchpadInstruction(
	authority solana.PublicKey,
	platformFeeBps uint16,
	treasuryAuthority solana.PublicKey,
) (solana.Instruction, error) {
	launchpadState, _, err := DeriveLaunchpadStatePDA()
	if err != nil {
		return nil, err
	}

	data, err := InitializeLaunchpadDescriptor.Encode(platformFeeBps, treasuryAuthority)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: authority, IsWritable: true, IsSigner: true},                                       // 0: authority
		{PublicKey: launchpadState, IsWritable: true, IsSigner: false},                                 // 1: launchpad_state
		{PublicKey: solana.PublicKeyFromBytes(config.SystemProgramID), IsWritable: false, IsSigner: false}, // 2: system_program
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// NewCreateTokenLaunchInstruction creates a token launch for the creator.
func NewCreateTokenLaunchInstruction(
	creator solana.PublicKey,
	tokenMint solana.PublicKey,
	params LaunchParams,
) (solana.Instruction, error) {
	launchpadState, _, err := DeriveLaunchpadStatePDA()
	if err != nil {
		return nil, err
	}
	launchState, _, err := DeriveLaunchStatePDA(creator)
	if err != nil {
		return nil, err
	}

	data, err := CreateTokenLaunchDescriptor.Encode(
		params.TokenName,
		params.TokenSymbol,
		params.TokenURI,
		params.SoftCap,
		params.HardCap,
		params.TokenPrice,
		params.TokensForSale,
		params.MinContribution,
		params.MaxContribution,
		params.LaunchDuration,
	)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: creator, IsWritable: true, IsSigner: true},                                         // 0: creator
		{PublicKey: launchpadState, IsWritable: true, IsSigner: false},                                 // 1: launchpad_state
		{PublicKey: launchState, IsWritable: true, IsSigner: false},                                    // 2: launch_state
		{PublicKey: tokenMint, IsWritable: false, IsSigner: false},                                     // 3: token_mint
		{PublicKey: solana.PublicKeyFromBytes(config.SystemProgramID), IsWritable: false, IsSigner: false}, // 4: system_program
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// NewCreateTokenMintInstruction creates the launch's token mint and its
// metadata account. The mint keypair must co-sign the transaction.
func NewCreateTokenMintInstruction(
	creator solana.PublicKey,
	tokenMint solana.PublicKey,
	metadata solana.PublicKey,
	decimals uint8,
	name, symbol, uri string,
) (solana.Instruction, error) {
	launchState, _, err := DeriveLaunchStatePDA(creator)
	if err != nil {
		return nil, err
	}

	data, err := CreateTokenMintDescriptor.Encode(decimals, name, symbol, uri)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: creator, IsWritable: true, IsSigner: true},                                                // 0: creator
		{PublicKey: launchState, IsWritable: false, IsSigner: false},                                          // 1: launch_state
		{PublicKey: tokenMint, IsWritable: true, IsSigner: true},                                              // 2: token_mint
		{PublicKey: metadata, IsWritable: true, IsSigner: false},                                              // 3: metadata
		{PublicKey: solana.PublicKeyFromBytes(config.TokenProgramID), IsWritable: false, IsSigner: false},     // 4: token_program
		{PublicKey: solana.PublicKeyFromBytes(config.TokenMetadataProgramID), IsWritable: false, IsSigner: false}, // 5: token_metadata_program
		{PublicKey: solana.PublicKeyFromBytes(config.SystemProgramID), IsWritable: false, IsSigner: false},    // 6: system_program
		{PublicKey: solana.PublicKeyFromBytes(config.RentSysvarID), IsWritable: false, IsSigner: false},       // 7: rent
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// NewContributeToLaunchInstruction contributes lamports to a launch.
func NewContributeToLaunchInstruction(
	contributor solana.PublicKey,
	launchCreator solana.PublicKey,
	tokenMint solana.PublicKey,
	amount uint64,
) (solana.Instruction, error) {
	launchpadState, _, err := DeriveLaunchpadStatePDA()
	if err != nil {
		return nil, err
	}
	launchState, _, err := DeriveLaunchStatePDA(launchCreator)
	if err != nil {
		return nil, err
	}
	contributorState, _, err := DeriveContributorStatePDA(launchState, contributor)
	if err != nil {
		return nil, err
	}

	data, err := ContributeToLaunchDescriptor.Encode(amount)
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: contributor, IsWritable: true, IsSigner: true},                                     // 0: contributor
		{PublicKey: launchState, IsWritable: true, IsSigner: false},                                    // 1: launch_state
		{PublicKey: contributorState, IsWritable: true, IsSigner: false},                               // 2: contributor_state
		{PublicKey: launchpadState, IsWritable: true, IsSigner: false},                                 // 3: launchpad_state
		{PublicKey: tokenMint, IsWritable: false, IsSigner: false},                                     // 4: token_mint
		{PublicKey: solana.PublicKeyFromBytes(config.SystemProgramID), IsWritable: false, IsSigner: false}, // 5: system_program
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// NewFinalizeLaunchInstruction settles an ended launch as successful or
// failed.
func NewFinalizeLaunchInstruction(
	authority solana.PublicKey,
	launchCreator solana.PublicKey,
) (solana.Instruction, error) {
	launchState, _, err := DeriveLaunchStatePDA(launchCreator)
	if err != nil {
		return nil, err
	}

	data, err := FinalizeLaunchDescriptor.Encode()
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: authority, IsWritable: false, IsSigner: true}, // 0: authority
		{PublicKey: launchState, IsWritable: true, IsSigner: false}, // 1: launch_state
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// NewClaimTokensInstruction mints owed tokens to the contributor's ATA after
// a successful launch.
func NewClaimTokensInstruction(
	contributor solana.PublicKey,
	launchCreator solana.PublicKey,
	tokenMint solana.PublicKey,
	contributorTokenAccount solana.PublicKey,
) (solana.Instruction, error) {
	launchState, _, err := DeriveLaunchStatePDA(launchCreator)
	if err != nil {
		return nil, err
	}
	contributorState, _, err := DeriveContributorStatePDA(launchState, contributor)
	if err != nil {
		return nil, err
	}

	data, err := ClaimTokensDescriptor.Encode()
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: contributor, IsWritable: true, IsSigner: true},                                               // 0: contributor
		{PublicKey: launchState, IsWritable: false, IsSigner: false},                                             // 1: launch_state
		{PublicKey: contributorState, IsWritable: true, IsSigner: false},                                         // 2: contributor_state
		{PublicKey: tokenMint, IsWritable: true, IsSigner: false},                                                // 3: token_mint
		{PublicKey: contributorTokenAccount, IsWritable: true, IsSigner: false},                                  // 4: contributor_token_account
		{PublicKey: solana.PublicKeyFromBytes(config.TokenProgramID), IsWritable: false, IsSigner: false},        // 5: token_program
		{PublicKey: solana.PublicKeyFromBytes(config.AssociatedTokenProgramID), IsWritable: false, IsSigner: false}, // 6: associated_token_program
		{PublicKey: solana.PublicKeyFromBytes(config.SystemProgramID), IsWritable: false, IsSigner: false},       // 7: system_program
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// NewClaimRefundInstruction reclaims a contribution after a failed launch.
func NewClaimRefundInstruction(
	contributor solana.PublicKey,
	launchCreator solana.PublicKey,
) (solana.Instruction, error) {
	launchState, _, err := DeriveLaunchStatePDA(launchCreator)
	if err != nil {
		return nil, err
	}
	contributorState, _, err := DeriveContributorStatePDA(launchState, contributor)
	if err != nil {
		return nil, err
	}

	data, err := ClaimRefundDescriptor.Encode()
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: contributor, IsWritable: true, IsSigner: true},       // 0: contributor
		{PublicKey: launchState, IsWritable: true, IsSigner: false},      // 1: launch_state
		{PublicKey: contributorState, IsWritable: true, IsSigner: false}, // 2: contributor_state
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}

// NewWithdrawFundsInstruction withdraws raised funds to the creator, minus
// the platform fee.
func NewWithdrawFundsInstruction(
	creator solana.PublicKey,
	treasury solana.PublicKey,
) (solana.Instruction, error) {
	launchpadState, _, err := DeriveLaunchpadStatePDA()
	if err != nil {
		return nil, err
	}
	launchState, _, err := DeriveLaunchStatePDA(creator)
	if err != nil {
		return nil, err
	}

	data, err := WithdrawFundsDescriptor.Encode()
	if err != nil {
		return nil, err
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: creator, IsWritable: true, IsSigner: true},          // 0: creator
		{PublicKey: launchState, IsWritable: true, IsSigner: false},     // 1: launch_state
		{PublicKey: launchpadState, IsWritable: false, IsSigner: false}, // 2: launchpad_state
		{PublicKey: treasury, IsWritable: true, IsSigner: false},        // 3: treasury
	}

	return solana.NewInstruction(ProgramID(), accounts, data), nil
}
