package backend

import (
	"errors"
	"fmt"
)

// Kind classifies a backend failure. The search pipeline uses it to decide
// whether a failed fan-out branch indicates a data problem (absorbed) or a
// configuration/programming error (surfaced when every branch fails).
type Kind string

const (
	// KindNetwork covers timeouts, connection failures and HTTP errors.
	KindNetwork Kind = "network"

	// KindParse covers unexpected result-page markup.
	KindParse Kind = "parse"

	// KindRateLimit covers HTTP 429 responses that survived all retries.
	KindRateLimit Kind = "rate_limit"

	// KindConfig covers invalid engine configuration (bad base URL,
	// unusable parameters). Never transient.
	KindConfig Kind = "config"
)

// Error is the structured error type for backend failures.
type Error struct {
	// Kind is the failure class.
	Kind Kind

	// Op is the operation that failed (e.g. "duckduckgo.search").
	Op string

	// Retryable indicates whether retrying the call may succeed.
	Retryable bool

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a backend error. Network and rate-limit failures are
// retryable; parse and config failures are not.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{
		Kind:      kind,
		Op:        op,
		Retryable: kind == KindNetwork || kind == KindRateLimit,
		Err:       err,
	}
}

// ErrKind extracts the failure class from an error.
// Returns KindNetwork for non-backend errors, which keeps unknown failures
// in the transient bucket.
func ErrKind(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindNetwork
}

// IsConfig reports whether an error is a configuration-class failure.
func IsConfig(err error) bool {
	return ErrKind(err) == KindConfig
}
