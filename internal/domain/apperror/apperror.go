package apperror

import "errors"

// Kind classifies a failure so the HTTP layer can map it to a status code.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindProvider
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindProvider:
		return "provider"
	default:
		return "unknown"
	}
}

// Error is a classified failure. Message is safe to return to callers; Err is the internal cause.
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

// Validation reports malformed or contradictory input.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound reports an unknown location or record.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Provider reports a failure of an external provider, keeping the cause for logs only.
func Provider(message string, cause error) *Error {
	return &Error{Kind: KindProvider, Message: message, Err: cause}
}

// KindOf returns the kind of the first classified error in the chain, or 0.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
