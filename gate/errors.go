package gate

import "errors"

// Sentinel errors returned by Roles.Allow.
var (
	ErrForbidden   = errors.New("forbidden")
	ErrUnknownRole = errors.New("unknown role")
)
