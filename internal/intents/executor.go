package intents

import (
	"context"

	gosolana "github.com/gagliardetto/solana-go"

	"intentfi-client-go/internal/config"
	"intentfi-client-go/internal/logger"
	"intentfi-client-go/internal/solana"
	"intentfi-client-go/internal/txutil"
	"intentfi-client-go/pkg/feemath"
)

// Readiness is the result of probing the on-chain deployment state before
// assembly. ProtocolLive gates the real program instruction; a missing user
// account alone does not, since the same transaction can initialize it.
type Readiness struct {
	ProtocolLive    bool
	UserInitialized bool
	Protocol        *ProtocolState // nil unless ProtocolLive
	User            *UserAccount   // nil unless UserInitialized
}

// Ready reports whether the real program instruction can be emitted.
func (r *Readiness) Ready() bool {
	return r.ProtocolLive
}

// IntentPlan is the assembled, unsigned output of a create-intent call.
type IntentPlan struct {
	Instructions    []gosolana.Instruction
	RecentBlockhash gosolana.Hash
	ProtocolFee     uint64
	OnChain         bool // false when the fallback path was taken
}

// SwapIntentRequest carries the caller parameters for a swap intent.
type SwapIntentRequest struct {
	Authority      gosolana.PublicKey
	FromMint       gosolana.PublicKey
	ToMint         gosolana.PublicKey
	Amount         uint64
	MaxSlippageBps uint16
	// Prerequisites are collaborator-supplied instructions (token account
	// creation and the like) emitted before the program instruction.
	Prerequisites []gosolana.Instruction
}

// LendIntentRequest carries the caller parameters for a lend intent.
type LendIntentRequest struct {
	Authority     gosolana.PublicKey
	Mint          gosolana.PublicKey
	Amount        uint64
	MinAPYBps     uint16
	Prerequisites []gosolana.Instruction
}

// Executor assembles unsigned intent transactions. It is a two-state
// machine per call: Ready emits the full sequence, NotReady emits a
// fallback that still settles the protocol fee.
type Executor struct {
	rpcClient *solana.Client
	logger    *logger.Logger
	config    *config.Config
}

// NewExecutor creates an intent executor.
func NewExecutor(rpcClient *solana.Client, log *logger.Logger, cfg *config.Config) *Executor {
	return &Executor{
		rpcClient: rpcClient,
		logger:    log,
		config:    cfg,
	}
}

// CheckReadiness probes protocol and user account existence. A transport
// failure surfaces as a NetworkError and never counts as "absent".
func (e *Executor) CheckReadiness(ctx context.Context, authority gosolana.PublicKey) (*Readiness, error) {
	r := &Readiness{}

	protocolAddr, _, err := DeriveProtocolStatePDA()
	if err != nil {
		return nil, err
	}
	protocolData, err := e.rpcClient.GetAccountData(ctx, protocolAddr)
	if err != nil {
		return nil, err
	}
	if protocolData != nil {
		if r.Protocol, err = DecodeProtocolState(protocolData); err != nil {
			return nil, err
		}
		r.ProtocolLive = true
	}

	userAddr, _, err := DeriveUserAccountPDA(authority)
	if err != nil {
		return nil, err
	}
	userData, err := e.rpcClient.GetAccountData(ctx, userAddr)
	if err != nil {
		return nil, err
	}
	if userData != nil {
		if r.User, err = DecodeUserAccount(userData); err != nil {
			return nil, err
		}
		r.UserInitialized = true
	}

	return r, nil
}

// CreateSwapIntent validates, probes readiness, and assembles the swap
// intent transaction.
func (e *Executor) CreateSwapIntent(ctx context.Context, req SwapIntentRequest) (*IntentPlan, error) {
	if err := ValidateSwapParams(req.Amount, req.MaxSlippageBps); err != nil {
		e.logger.LogValidationReject("create_swap_intent", err.Error())
		return nil, err
	}

	readiness, err := e.CheckReadiness(ctx, req.Authority)
	if err != nil {
		return nil, err
	}
	if err := ValidateProtocolOpen(readiness.Protocol); err != nil {
		e.logger.LogValidationReject("create_swap_intent", err.Error())
		return nil, err
	}

	programIx := func(totalIntentsCreated uint64) (gosolana.Instruction, error) {
		return NewCreateSwapIntentInstruction(
			req.Authority, totalIntentsCreated, req.FromMint, req.ToMint,
			req.Amount, req.MaxSlippageBps)
	}
	plan, err := e.assemble(ctx, req.Authority, req.Amount, req.Prerequisites, readiness, programIx)
	if err != nil {
		return nil, err
	}

	e.logger.LogIntent(IntentSwap.String(), req.Amount, plan.OnChain)
	return plan, nil
}

// CreateLendIntent validates, probes readiness, and assembles the lend
// intent transaction.
func (e *Executor) CreateLendIntent(ctx context.Context, req LendIntentRequest) (*IntentPlan, error) {
	if err := ValidateLendParams(req.Amount, req.MinAPYBps); err != nil {
		e.logger.LogValidationReject("create_lend_intent", err.Error())
		return nil, err
	}

	readiness, err := e.CheckReadiness(ctx, req.Authority)
	if err != nil {
		return nil, err
	}
	if err := ValidateProtocolOpen(readiness.Protocol); err != nil {
		e.logger.LogValidationReject("create_lend_intent", err.Error())
		return nil, err
	}

	programIx := func(totalIntentsCreated uint64) (gosolana.Instruction, error) {
		return NewCreateLendIntentInstruction(
			req.Authority, totalIntentsCreated, req.Mint, req.Amount, req.MinAPYBps)
	}
	plan, err := e.assemble(ctx, req.Authority, req.Amount, req.Prerequisites, readiness, programIx)
	if err != nil {
		return nil, err
	}

	e.logger.LogIntent(IntentLend.String(), req.Amount, plan.OnChain)
	return plan, nil
}

// assemble emits the instruction sequence for one intent. The readiness
// decision was made before this call; assembly never re-probes mid-build.
//
// Ready order: compute budget, initialize_user (when absent), caller
// prerequisites, program instruction, fee transfer (fee > 0).
// NotReady order: compute budget, fee transfer (fee > 0), self-transfer
// placeholder, keeping fee accounting exercisable against a live network.
func (e *Executor) assemble(
	ctx context.Context,
	authority gosolana.PublicKey,
	amount uint64,
	prerequisites []gosolana.Instruction,
	readiness *Readiness,
	programIx func(totalIntentsCreated uint64) (gosolana.Instruction, error),
) (*IntentPlan, error) {
	instructions, fee, err := e.buildInstructions(authority, amount, prerequisites, readiness, programIx)
	if err != nil {
		return nil, err
	}

	blockhash, err := e.rpcClient.GetLatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}

	return &IntentPlan{
		Instructions:    instructions,
		RecentBlockhash: blockhash,
		ProtocolFee:     fee,
		OnChain:         readiness.Ready(),
	}, nil
}

// buildInstructions emits the full sequence and the computed fee. Pure with
// respect to the network; all on-chain state arrives through readiness.
func (e *Executor) buildInstructions(
	authority gosolana.PublicKey,
	amount uint64,
	prerequisites []gosolana.Instruction,
	readiness *Readiness,
	programIx func(totalIntentsCreated uint64) (gosolana.Instruction, error),
) ([]gosolana.Instruction, uint64, error) {
	feeBps := e.config.Transaction.IntentFeeBps
	treasury := e.treasuryAddress()
	if readiness.Protocol != nil {
		feeBps = readiness.Protocol.ProtocolFeeBps
		treasury = readiness.Protocol.TreasuryAuthority
	}
	fee := feemath.Fee(amount, feeBps)
	// The reported fee must match what the transaction actually moves: with
	// no treasury to pay, no fee is charged.
	if treasury.IsZero() {
		fee = 0
	}

	instructions := txutil.ComputeBudgetInstructions(
		e.config.Transaction.ComputeUnitLimit,
		e.config.Transaction.PriorityFee,
	)

	if readiness.Ready() {
		if !readiness.UserInitialized {
			initIx, err := NewInitializeUserInstruction(authority)
			if err != nil {
				return nil, 0, err
			}
			instructions = append(instructions, initIx)
		}

		instructions = append(instructions, prerequisites...)

		var totalIntentsCreated uint64
		if readiness.User != nil {
			totalIntentsCreated = readiness.User.TotalIntentsCreated
		}
		ix, err := programIx(totalIntentsCreated)
		if err != nil {
			return nil, 0, err
		}
		instructions = append(instructions, ix)

		if fee > 0 {
			instructions = append(instructions,
				txutil.NewTransferInstruction(authority, treasury, fee))
		}
	} else {
		if fee > 0 {
			instructions = append(instructions,
				txutil.NewTransferInstruction(authority, treasury, fee))
		}
		instructions = append(instructions, txutil.NewSelfTransferInstruction(authority, 0))
	}

	return instructions, fee, nil
}

// CancelIntent assembles a cancel transaction for a pending intent.
func (e *Executor) CancelIntent(ctx context.Context, authority, intentAccount gosolana.PublicKey) (*IntentPlan, error) {
	instructions := txutil.ComputeBudgetInstructions(
		e.config.Transaction.ComputeUnitLimit,
		e.config.Transaction.PriorityFee,
	)

	ix, err := NewCancelIntentInstruction(authority, intentAccount)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, ix)

	blockhash, err := e.rpcClient.GetLatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}

	return &IntentPlan{
		Instructions:    instructions,
		RecentBlockhash: blockhash,
		OnChain:         true,
	}, nil
}

func (e *Executor) treasuryAddress() gosolana.PublicKey {
	if e.config.Programs.TreasuryAddress == "" {
		return gosolana.PublicKey{}
	}
	addr, err := gosolana.PublicKeyFromBase58(e.config.Programs.TreasuryAddress)
	if err != nil {
		return gosolana.PublicKey{}
	}
	return addr
}
