package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	SessionCookieName = "session"
	DefaultSecret     = "devsessionsecret"
)

var errSigningMethod = errors.New("unexpected signing method")

// Sessions signs HS256 tokens whose subject is the user id. Tokens travel in
// the session cookie or an "Authorization: Bearer" header.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewSessions returns a session manager. An empty secret falls back to
// DefaultSecret.
func NewSessions(secret string, ttl time.Duration, secure bool) *Sessions {
	if secret == "" {
		secret = DefaultSecret
	}
	return &Sessions{secret: []byte(secret), ttl: ttl, secure: secure}
}

// Token signs a session token for userID.
func (s *Sessions) Token(userID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   userID,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	})
	token, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// Issue sets the session cookie for userID and returns the raw token.
func (s *Sessions) Issue(w http.ResponseWriter, userID string) (string, error) {
	token, err := s.Token(userID)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(s.ttl),
	})
	return token, nil
}

// Clear deletes the session cookie.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Parse validates the request token and returns the user id it was issued for.
func (s *Sessions) Parse(r *http.Request) (string, bool) {
	raw := bearerToken(r)
	if raw == "" {
		c, err := r.Cookie(SessionCookieName)
		if err != nil || c.Value == "" {
			return "", false
		}
		raw = c.Value
	}
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errSigningMethod
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
