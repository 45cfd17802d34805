package intents

import (
	"fmt"

	"intentfi-client-go/internal/config"
)

// ValidationError reports a parameter the program would reject, caught
// before any bytes are encoded.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("intents: invalid %s: %s", e.Field, e.Reason)
}

// ValidateSwapParams mirrors the program's create_swap_intent checks:
// amount > 0 and slippage within the 10% cap.
func ValidateSwapParams(amount uint64, maxSlippageBps uint16) error {
	if amount == 0 {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if maxSlippageBps > config.MaxSlippageBps {
		return &ValidationError{
			Field:  "max_slippage",
			Reason: fmt.Sprintf("%d bps exceeds cap of %d", maxSlippageBps, config.MaxSlippageBps),
		}
	}
	return nil
}

// ValidateLendParams mirrors the program's create_lend_intent checks:
// amount > 0 and min APY within the 100% cap.
func ValidateLendParams(amount uint64, minAPYBps uint16) error {
	if amount == 0 {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if minAPYBps > config.MaxAPYBps {
		return &ValidationError{
			Field:  "min_apy",
			Reason: fmt.Sprintf("%d bps exceeds cap of %d", minAPYBps, config.MaxAPYBps),
		}
	}
	return nil
}

// ValidateProtocolOpen rejects intents while the protocol is paused.
func ValidateProtocolOpen(state *ProtocolState) error {
	if state != nil && state.IsPaused {
		return &ValidationError{Field: "protocol", Reason: "protocol is paused"}
	}
	return nil
}
