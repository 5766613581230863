package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// Verifier decides whether a login may be signed for email.
type Verifier interface {
	Verify(ctx context.Context, email, password string) error
}

// TrustAsserted accepts every claimed identity without proof.
type TrustAsserted struct{}

func (TrustAsserted) Verify(context.Context, string, string) error {
	return nil
}
