package session

import (
	"context"
	"errors"
	"time"

	"cardoctor/pkg/claims"
)

// TokenTTL is the fixed validity window of an issued session token.
const TokenTTL = 10 * time.Hour

var (
	ErrEmptySecret  = errors.New("empty signing secret")
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Session is an issued token. Nothing about it is stored server-side.
type Session struct {
	Token     string
	Identity  claims.Identity
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Issuer interface {
	Issue(identity claims.Identity) (*Session, error)
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*claims.Claims, error)
}
