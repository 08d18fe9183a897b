package booking

import "errors"

// Kind classifies a booking service failure. Every error returned by the
// service carries exactly one kind; handlers map kinds to HTTP statuses.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidInput covers missing or malformed fields, including a
	// slot outside the catalog. Caller-correctable.
	KindInvalidInput
	// KindNotFound means the provider is absent or not approved.
	KindNotFound
	// KindServiceUnavailable means the payment gateway is not configured
	// or not reachable.
	KindServiceUnavailable
	// KindConflict means the slot is held by an active booking, detected
	// either at pre-check or at commit time.
	KindConflict
	// KindPaymentVerificationFailed means the gateway signature did not
	// match. Terminal; no booking is created.
	KindPaymentVerificationFailed
)

// Error is a booking service failure with a stable kind and a
// human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the failure kind from err, or KindUnknown for errors
// that did not originate in this service.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindUnknown
}
