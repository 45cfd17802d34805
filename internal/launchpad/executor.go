package launchpad

import (
	"context"
	"fmt"
	"time"

	gosolana "github.com/gagliardetto/solana-go"

	"intentfi-client-go/internal/config"
	"intentfi-client-go/internal/logger"
	"intentfi-client-go/internal/solana"
	"intentfi-client-go/internal/txutil"
	"intentfi-client-go/pkg/feemath"
)

// Executor assembles unsigned launchpad transactions from decoded on-chain
// state. Signing and submission stay with the caller.
type Executor struct {
	rpcClient *solana.Client
	logger    *logger.Logger
	config    *config.Config
}

// ContributionPlan is the assembled, unsigned output of a contribute call.
type ContributionPlan struct {
	Instructions    []gosolana.Instruction
	RecentBlockhash gosolana.Hash
	Amount          uint64
	PlatformFee     uint64
	TokensToReceive uint64
}

// NewExecutor creates a launchpad executor.
func NewExecutor(rpcClient *solana.Client, log *logger.Logger, cfg *config.Config) *Executor {
	return &Executor{
		rpcClient: rpcClient,
		logger:    log,
		config:    cfg,
	}
}

// fetchLaunch loads and decodes the launch and global state accounts.
func (e *Executor) fetchLaunch(ctx context.Context, creator gosolana.PublicKey) (*LaunchState, *LaunchpadState, error) {
	launchAddr, _, err := DeriveLaunchStatePDA(creator)
	if err != nil {
		return nil, nil, err
	}
	launchData, err := e.rpcClient.GetAccountData(ctx, launchAddr)
	if err != nil {
		return nil, nil, err
	}
	if launchData == nil {
		return nil, nil, fmt.Errorf("launchpad: no launch found for creator %s", creator)
	}
	launch, err := DecodeLaunchState(launchData)
	if err != nil {
		return nil, nil, err
	}

	stateAddr, _, err := DeriveLaunchpadStatePDA()
	if err != nil {
		return nil, nil, err
	}
	stateData, err := e.rpcClient.GetAccountData(ctx, stateAddr)
	if err != nil {
		return nil, nil, err
	}
	var global *LaunchpadState
	if stateData != nil {
		if global, err = DecodeLaunchpadState(stateData); err != nil {
			return nil, nil, err
		}
	}

	return launch, global, nil
}

// Contribute validates the amount against live launch state and assembles
// the full contribution transaction: compute budget, contribute instruction,
// and a platform-fee transfer to the treasury when the fee is non-zero.
func (e *Executor) Contribute(
	ctx context.Context,
	contributor gosolana.PublicKey,
	launchCreator gosolana.PublicKey,
	amount uint64,
	decimals uint8,
) (*ContributionPlan, error) {
	launch, global, err := e.fetchLaunch(ctx, launchCreator)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	if err := ValidateLaunchOpen(launch, global, amount, now); err != nil {
		e.logger.LogValidationReject("contribute", err.Error())
		return nil, err
	}
	if err := ValidateContribution(launch, amount, decimals); err != nil {
		e.logger.LogValidationReject("contribute", err.Error())
		return nil, err
	}

	plan, err := e.buildContribution(contributor, launchCreator, launch, global, amount, decimals)
	if err != nil {
		return nil, err
	}

	blockhash, err := e.rpcClient.GetLatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}
	plan.RecentBlockhash = blockhash

	e.logger.LogContribution(launch.TokenSymbol, amount, plan.PlatformFee)

	return plan, nil
}

// buildContribution assembles the instruction sequence from already-validated
// state: compute budget, contribute, then the platform fee transfer.
func (e *Executor) buildContribution(
	contributor gosolana.PublicKey,
	launchCreator gosolana.PublicKey,
	launch *LaunchState,
	global *LaunchpadState,
	amount uint64,
	decimals uint8,
) (*ContributionPlan, error) {
	tokens, err := feemath.TokensToReceive(amount, decimals, launch.TokenPrice)
	if err != nil {
		return nil, err
	}

	feeBps := e.config.Transaction.LaunchpadFeeBps
	treasury := e.treasuryAddress()
	if global != nil {
		feeBps = global.PlatformFeeBps
		treasury = global.TreasuryAuthority
	}
	fee := feemath.Fee(amount, feeBps)

	instructions := txutil.ComputeBudgetInstructions(
		e.config.Transaction.ComputeUnitLimit,
		e.config.Transaction.PriorityFee,
	)

	contributeIx, err := NewContributeToLaunchInstruction(contributor, launchCreator, launch.TokenMint, amount)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, contributeIx)

	// The reported fee must match what the transaction actually moves: with
	// no treasury to pay, no fee is charged.
	if fee > 0 && !treasury.IsZero() {
		instructions = append(instructions,
			txutil.NewTransferInstruction(contributor, treasury, fee))
	} else {
		fee = 0
	}

	return &ContributionPlan{
		Instructions:    instructions,
		Amount:          amount,
		PlatformFee:     fee,
		TokensToReceive: tokens,
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
