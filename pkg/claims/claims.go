package claims

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	TokenContextKey contextKey = "token"
	ScopeContextKey contextKey = "scope"
)

var ErrInvalidEmail = errors.New("invalid email")

// Identity is the caller-asserted identity signed into a session token.
type Identity struct {
	Email string `json:"email"`
}

// Validate rejects identities without a bare email address. Surrounding
// whitespace is rejected too, since the signed value is compared verbatim.
func (i Identity) Validate() error {
	if strings.TrimSpace(i.Email) == "" {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(i.Email)
	if err != nil || addr.Address != i.Email {
		return ErrInvalidEmail
	}
	return nil
}

type Claims struct {
	Identity
	jwt.RegisteredClaims
}

// Scope is the filter the authorization check granted for this request.
type Scope struct {
	Email string
}

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, TokenContextKey, c)
}

func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(TokenContextKey).(*Claims)
	if !ok || c == nil || c.Email == "" {
		return nil, false
	}
	return c, true
}

func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, ScopeContextKey, s)
}

// ScopeFromContext reports false when the request carried no identity parameter.
func ScopeFromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(ScopeContextKey).(Scope)
	return s, ok
}
