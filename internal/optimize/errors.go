package optimize

import (
	"errors"
	"fmt"
)

// Kind is the closed taxonomy of generation failures. Every error surfaced by
// a generation attempt carries exactly one Kind.
type Kind string

const (
	KindMissingCredential    Kind = "missing_credential"
	KindInvalidCredential    Kind = "invalid_credential"
	KindServiceUnavailable   Kind = "service_unavailable"
	KindQuotaExhausted       Kind = "quota_exhausted"
	KindRateLimitExceeded    Kind = "rate_limit_exceeded"
	KindContentBlockedSafety Kind = "content_blocked_safety"
	KindContentBlocked       Kind = "content_blocked"
	KindInvalidRequest       Kind = "invalid_request"
	KindEmptyResponse        Kind = "empty_response"
	KindMalformedResponse    Kind = "malformed_response"
	KindServiceFault         Kind = "service_fault"
)

// Error is a taxonomy-classified generation failure. The cause retains full
// diagnostic detail for logging; only the Kind and its mapped message are
// meant for end users.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewError wraps cause with a taxonomy kind.
func NewError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

// KindOf extracts the taxonomy kind from err. Unclassified errors report
// KindServiceFault so that raw diagnostics never reach the user.
func KindOf(err error) Kind {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return KindServiceFault
}
