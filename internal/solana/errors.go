package solana

import "fmt"

// NetworkError wraps a transport or RPC failure. Callers that gate behavior
// on account existence must distinguish "account absent" (nil data, no error)
// from "could not ask" (NetworkError) and never treat the latter as absence.
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("solana: %s failed: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func networkErr(operation string, err error) error {
	return &NetworkError{Operation: operation, Err: err}
}
