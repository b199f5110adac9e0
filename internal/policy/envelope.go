// Package policy holds the authorization envelope every API route runs in
// and the wiring of handlers to their required permissions.
package policy

import (
	"context"
	"errors"
	"net/http"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/gate"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/services"
	"github.com/diewo77/go-srm/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler is an authenticated route. Returned errors are mapped to
// responses by the envelope.
type Handler func(w http.ResponseWriter, r *http.Request, caller auth.Identity) error

// PublicHandler is a route reachable without a session.
type PublicHandler func(w http.ResponseWriter, r *http.Request) error

// IdentityResolver loads the caller identity for a session subject. It
// returns services.ErrUserNotFound when the user no longer exists.
type IdentityResolver interface {
	Identity(ctx context.Context, userID string) (auth.Identity, error)
}

// Envelope authenticates the caller, checks the route permission against the
// caller's role and maps handler errors to JSON responses.
type Envelope struct {
	sessions *auth.Sessions
	users    IdentityResolver
	roles    *gate.Roles
	logger   *zap.Logger
}

func NewEnvelope(sessions *auth.Sessions, users IdentityResolver, roles *gate.Roles, logger *zap.Logger) *Envelope {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Envelope{sessions: sessions, users: users, roles: roles, logger: logger}
}

// Handle wraps h so it only runs for a caller whose role grants perm.
// Unauthenticated callers get 401 and callers lacking perm get 403.
func (e *Envelope) Handle(perm gate.Permission, h Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer e.recover(w, r)

		uid, ok := e.sessions.Parse(r)
		if !ok {
			e.fail(w, r, httpx.Unauthenticated())
			return
		}
		caller, err := e.users.Identity(r.Context(), uid)
		if errors.Is(err, services.ErrUserNotFound) {
			e.sessions.Clear(w)
			e.fail(w, r, httpx.Unauthenticated())
			return
		}
		if err != nil {
			e.fail(w, r, err)
			return
		}
		if err := e.roles.Allow(caller.Role, perm); err != nil {
			e.logger.Info("permission denied",
				zap.String("user_id", caller.ID),
				zap.String("role", caller.Role),
				zap.String("permission", string(perm)),
			)
			e.fail(w, r, httpx.Forbidden())
			return
		}

		r = r.WithContext(auth.WithIdentity(r.Context(), caller))
		if err := h(w, r, caller); err != nil {
			e.fail(w, r, err)
		}
	})
}

// Public wraps h with error mapping only.
func (e *Envelope) Public(h PublicHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer e.recover(w, r)
		if err := h(w, r); err != nil {
			e.fail(w, r, err)
		}
	})
}

func (e *Envelope) recover(w http.ResponseWriter, r *http.Request) {
	if v := recover(); v != nil {
		e.logger.Error("handler panic",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Any("panic", v),
			zap.Stack("stack"),
		)
		httpx.WriteError(w, httpx.Internal("", nil))
	}
}

func (e *Envelope) fail(w http.ResponseWriter, r *http.Request, err error) {
	he := Translate(err)
	if he.Kind == httpx.KindInternal {
		e.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	httpx.WriteError(w, he)
}

// Translate maps an error escaping a handler onto the client-facing
// taxonomy. Unknown errors become a bare 500.
func Translate(err error) *httpx.Error {
	var he *httpx.Error
	var violations validation.Violations
	switch {
	case errors.As(err, &he):
		return he
	case errors.As(err, &violations):
		return httpx.Invalid(violations.Error(), violations)
	case errors.Is(err, validation.ErrMalformed):
		return httpx.MalformedJSON()
	case errors.Is(err, gorm.ErrRecordNotFound):
		return httpx.NotFound("Record")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return httpx.Conflict("Unique constraint violation")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return httpx.NotFound("Referenced record")
	default:
		return httpx.Internal("", err)
	}
}
