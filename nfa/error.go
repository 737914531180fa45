// Package nfa provides the Thompson NFA used by the grep engine: the
// character-class compiler, the postfix-to-NFA builder and a backtracking
// simulator that explores alternatives depth first.
//
// An NFA is an arena of states addressed by StateID. Each state holds an
// ordered list of transitions and the order is significant: the simulator
// always tries the most recently added transition of a state first, which
// is how greedy and lazy quantifiers express their preference.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors
var (
	// ErrInvalidState indicates an invalid NFA state ID was encountered
	ErrInvalidState = errors.New("invalid NFA state")

	// ErrInvalidPattern indicates a class specifier the class compiler does not know
	ErrInvalidPattern = errors.New("invalid regex pattern")

	// ErrTooComplex indicates the pattern needs more states than the compiler allows
	ErrTooComplex = errors.New("pattern too complex")

	// ErrInternal marks a broken pipeline invariant: a malformed postfix
	// stream or an NFA that violates the Thompson shape. It is never caused
	// by a bad pattern.
	ErrInternal = errors.New("internal error")
)

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("NFA compilation failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError reports a violated builder invariant. It always satisfies
// errors.Is(err, ErrInternal).
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}

// Unwrap returns ErrInternal.
func (e *BuildError) Unwrap() error {
	return ErrInternal
}

// internalError returns a BuildError that is not tied to a state.
func internalError(format string, args ...any) *BuildError {
	return &BuildError{Message: fmt.Sprintf(format, args...), StateID: InvalidState}
}
