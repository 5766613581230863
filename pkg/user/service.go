package user

import (
	"context"
	"errors"
	"fmt"

	"cardoctor/pkg/claims"
	"cardoctor/pkg/generator"

	"golang.org/x/crypto/bcrypt"
)

const idLength = 24

// Service proves a claimed email against a bcrypt password hash.
type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Add(ctx context.Context, email, password string) (*User, error) {
	if err := (claims.Identity{Email: email}).Validate(); err != nil {
		return nil, err
	}

	exist, err := s.Repo.FindByEmail(ctx, email)
	if exist != nil && err == nil {
		return nil, ErrAlreadyExists
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}

	userID, err := generator.GenerateRandomID(idLength)
	if err != nil {
		return nil, fmt.Errorf("UserID gen error: %w", err)
	}

	user := &User{
		ID:       userID,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Verify reports ErrInvalidCredentials for an unknown email or a wrong
// password, so callers cannot tell the two apart.
func (s *Service) Verify(ctx context.Context, email, password string) error {
	user, err := s.Repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
