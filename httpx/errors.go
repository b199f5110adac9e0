package httpx

import "net/http"

// Kind classifies an Error for status mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindValidation
	KindNotFound
	KindConflict
	KindInvalidOperation
)

// Error is a client-facing failure. Message is safe to show; Err is kept for
// server-side logging only.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation, KindInvalidOperation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Unauthenticated() *Error {
	return &Error{Kind: KindUnauthenticated, Code: "unauthenticated", Message: "Unauthorized"}
}

func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Code: "forbidden", Message: "Forbidden"}
}

// Invalid reports a schema violation. msg is the joined human summary and
// fields the per-field messages.
func Invalid(msg string, fields map[string]string) *Error {
	e := &Error{Kind: KindValidation, Code: "validation_failed", Message: msg}
	if len(fields) > 0 {
		e.Details = fields
	}
	return e
}

// MalformedJSON reports a body that could not be parsed at all.
func MalformedJSON() *Error {
	return &Error{Kind: KindValidation, Code: "invalid_json", Message: "Invalid JSON body"}
}

// NotFound builds "<entity> not found".
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Code: "not_found", Message: entity + " not found"}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Code: "conflict", Message: msg}
}

func InvalidOperation(reason string) *Error {
	return &Error{Kind: KindInvalidOperation, Code: "invalid_operation", Message: reason}
}

// Internal hides err behind msg. An empty msg becomes "Internal server error".
func Internal(msg string, err error) *Error {
	if msg == "" {
		msg = "Internal server error"
	}
	return &Error{Kind: KindInternal, Code: "internal_error", Message: msg, Err: err}
}
