package briefing

import (
	"errors"
	"fmt"
)

var (
	// ErrActiveOrderExists rejects a submission while the client already
	// holds a Pending or In Progress order.
	ErrActiveOrderExists = errors.New("an active order already exists")

	// ErrSubmissionInFlight marks a duplicate submit while one is still
	// running. Callers treat it as an idempotent no-op.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

// ValidationError carries per-field messages for a rejected briefing.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("briefing validation failed (%d fields)", len(e.Fields))
}
