package launchpad

import (
	"fmt"

	"intentfi-client-go/pkg/feemath"
)

// BelowMinimumError reports a contribution under the launch's minimum.
type BelowMinimumError struct {
	Contribution    uint64
	MinContribution uint64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("launchpad: contribution %d below minimum %d",
		e.Contribution, e.MinContribution)
}

// AboveMaximumError reports a contribution over the launch's per-wallet
// maximum.
type AboveMaximumError struct {
	Contribution    uint64
	MaxContribution uint64
}

func (e *AboveMaximumError) Error() string {
	return fmt.Sprintf("launchpad: contribution %d above maximum %d",
		e.Contribution, e.MaxContribution)
}

// InsufficientSupplyError reports that the remaining token supply cannot
// cover the contribution, with the corrected upper bound so the caller can
// retry at the largest acceptable amount.
type InsufficientSupplyError struct {
	TokensRequested                   uint64
	AvailableTokens                   uint64
	MaxContributionForAvailableTokens uint64
}

func (e *InsufficientSupplyError) Error() string {
	return fmt.Sprintf("launchpad: %d tokens requested, %d available (max contribution %d)",
		e.TokensRequested, e.AvailableTokens, e.MaxContributionForAvailableTokens)
}

// LaunchClosedError reports that a launch cannot accept contributions right
// now: paused platform, not yet started, already ended, or finalized.
type LaunchClosedError struct {
	Reason string
}

func (e *LaunchClosedError) Error() string {
	return "launchpad: launch closed: " + e.Reason
}

// AvailableTokens returns the unsold remainder of the sale allocation.
// Never negative: the program rejects any contribution that would oversell.
func AvailableTokens(state *LaunchState) uint64 {
	if state.TokensSold >= state.TokensForSale {
		return 0
	}
	return state.TokensForSale - state.TokensSold
}

// ValidateContribution checks a contribution amount against decoded launch
// state, raising the first violated rule. Boundary values are accepted:
// exactly MinContribution and exactly MaxContribution both pass.
func ValidateContribution(state *LaunchState, amount uint64, decimals uint8) error {
	if amount < state.MinContribution {
		return &BelowMinimumError{
			Contribution:    amount,
			MinContribution: state.MinContribution,
		}
	}
	if amount > state.MaxContribution {
		return &AboveMaximumError{
			Contribution:    amount,
			MaxContribution: state.MaxContribution,
		}
	}

	tokens, err := feemath.TokensToReceive(amount, decimals, state.TokenPrice)
	if err != nil {
		return err
	}

	available := AvailableTokens(state)
	if tokens > available {
		maxContribution, err := feemath.MaxContributionFor(available, state.TokenPrice, decimals)
		if err != nil {
			return err
		}
		return &InsufficientSupplyError{
			TokensRequested:                   tokens,
			AvailableTokens:                   available,
			MaxContributionForAvailableTokens: maxContribution,
		}
	}
	return nil
}

// ValidateLaunchOpen checks the pre-flight conditions the program enforces
// before the amount rules: active status, launch window, paused platform,
// and hard-cap headroom.
func ValidateLaunchOpen(state *LaunchState, launchpad *LaunchpadState, amount uint64, now int64) error {
	if launchpad != nil && launchpad.IsPaused {
		return &LaunchClosedError{Reason: "launchpad is paused"}
	}
	if state.Status != StatusActive {
		return &LaunchClosedError{Reason: "launch is " + state.Status.String()}
	}
	if now < state.LaunchStart {
		return &LaunchClosedError{Reason: "launch has not started"}
	}
	if now > state.LaunchEnd {
		return &LaunchClosedError{Reason: "launch has ended"}
	}
	// Compared against the remaining headroom so a huge amount cannot wrap
	// the sum around uint64.
	if state.TotalRaised >= state.HardCap || amount > state.HardCap-state.TotalRaised {
		return &LaunchClosedError{Reason: "hard cap reached"}
	}
	return nil
}
