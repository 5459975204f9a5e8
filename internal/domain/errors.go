package domain

import "errors"

// Kind classifies an error for callers that need to pick a response code
// without inspecting driver internals.
type Kind string

const (
	// KindInvalidDate marks an unparseable date/timestamp input.
	KindInvalidDate Kind = "invalid_date_format"
	// KindNotFound marks an update/delete that matched zero rows.
	KindNotFound Kind = "not_found"
	// KindIntegrity marks a constraint violation (foreign key, duplicate key).
	KindIntegrity Kind = "integrity_violation"
	// KindTransient marks connectivity/pool/timeout failures; safe to retry.
	KindTransient Kind = "transient"
	// KindPolicy marks a write that would break the temporal interval rules.
	KindPolicy Kind = "policy_violation"
	// KindInternal is everything else.
	KindInternal Kind = "internal"
)

// Error carries a kind, a human-readable message, and the wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error without a cause.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError builds an Error around a cause.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
