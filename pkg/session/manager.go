package session

import (
	"context"
	"fmt"
	"time"

	"cardoctor/pkg/claims"
	"cardoctor/pkg/generator"

	"github.com/golang-jwt/jwt/v5"
)

// Manager signs and verifies HS256 session tokens with one process-wide secret.
// It holds no mutable state and is shared by all requests.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(secret string, opts ...Option) (*Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	m := &Manager{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) Issue(identity claims.Identity) (*Session, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	tokenID, err := generator.TokenID()
	if err != nil {
		return nil, fmt.Errorf("token id gen error: %w", err)
	}

	issuedAt := m.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims.Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("token signing: %w", err)
	}

	return &Session{
		Token:     signed,
		Identity:  identity,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

type verifyResult struct {
	claims *claims.Claims
	err    error
}

// Verify checks the signature and expiry of token on its own goroutine and
// waits for the result or for ctx to end.
func (m *Manager) Verify(ctx context.Context, token string) (*claims.Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	done := make(chan verifyResult, 1)
	go func() {
		c, err := m.parse(token)
		done <- verifyResult{claims: c, err: err}
	}()

	select {
	case res := <-done:
		return res.claims, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (m *Manager) parse(token string) (*claims.Claims, error) {
	c := &claims.Claims{}

	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || c.Email == "" {
		return nil, ErrInvalidToken
	}

	return c, nil
}
