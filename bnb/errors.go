package bnb

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by BranchAndBound.
var (
	// ErrInfeasibleEmbedding reports that no complete embedding was found;
	// the concrete error is an *InfeasibleError.
	ErrInfeasibleEmbedding = errors.New("bnb: layout cannot be embedded")

	// ErrInvalidSettings wraps every Settings.Validate failure.
	ErrInvalidSettings = errors.New("bnb: invalid settings")

	// ErrNilEmbedding indicates a nil root embedding.
	ErrNilEmbedding = errors.New("bnb: nil embedding")

	// ErrUnassignedVertices indicates a root embedding with unpinned layout vertices.
	ErrUnassignedVertices = errors.New("bnb: layout vertices not all assigned")
)

// Reason tells why a search ended without a complete embedding.
type Reason int

const (
	// ReasonExhausted: every branch was explored or pruned.
	ReasonExhausted Reason = iota
	// ReasonTimeLimit: the time limit expired and extension was disabled.
	ReasonTimeLimit
	// ReasonCancelled: the context was cancelled.
	ReasonCancelled
)

// String returns a short label.
func (r Reason) String() string {
	switch r {
	case ReasonExhausted:
		return "frontier exhausted"
	case ReasonTimeLimit:
		return "time limit"
	case ReasonCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// InfeasibleError is returned when a search produced no complete embedding.
// errors.Is(err, ErrInfeasibleEmbedding) holds; Cause carries the context
// error for ReasonCancelled.
type InfeasibleError struct {
	Name       string
	Reason     Reason
	Iterations int
	Cause      error
}

// Error implements error.
func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("bnb %q: layout cannot be embedded (%s after %d iterations)", e.Name, e.Reason, e.Iterations)
}

// Is matches ErrInfeasibleEmbedding.
func (e *InfeasibleError) Is(target error) bool { return target == ErrInfeasibleEmbedding }

// Unwrap exposes Cause.
func (e *InfeasibleError) Unwrap() error { return e.Cause }
