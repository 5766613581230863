package booking

import (
	"context"
	"errors"
	"strings"

	"cardoctor/pkg/claims"
)

var (
	ErrMissingEmail  = errors.New("missing email")
	ErrMissingStatus = errors.New("missing status")
)

type ServiceBooking interface {
	List(ctx context.Context, scope *claims.Scope) ([]*Booking, error)
	Create(ctx context.Context, b *Booking) (*InsertResult, error)
	UpdateStatus(ctx context.Context, id string, update StatusUpdate) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

type BookingService struct {
	Repo Repository
}

func NewService(repo Repository) *BookingService {
	return &BookingService{Repo: repo}
}

// List returns the bookings of scope's owner, or every booking when scope is nil.
func (s *BookingService) List(ctx context.Context, scope *claims.Scope) ([]*Booking, error) {
	var filter Filter
	if scope != nil {
		filter.Email = scope.Email
	}
	return s.Repo.Find(ctx, filter)
}

func (s *BookingService) Create(ctx context.Context, b *Booking) (*InsertResult, error) {
	b.Email = strings.TrimSpace(b.Email)
	if b.Email == "" {
		return nil, ErrMissingEmail
	}
	return s.Repo.Insert(ctx, b)
}

func (s *BookingService) UpdateStatus(ctx context.Context, id string, update StatusUpdate) (*UpdateResult, error) {
	if strings.TrimSpace(update.Status) == "" {
		return nil, ErrMissingStatus
	}
	return s.Repo.UpdateStatus(ctx, id, update.Status)
}

func (s *BookingService) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	return s.Repo.Delete(ctx, id)
}
