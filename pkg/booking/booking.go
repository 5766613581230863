package booking

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID  = errors.New("invalid ID format")
	ErrNotFound   = errors.New("booking not found")
	ErrNoInsertID = errors.New("failed to convert inserted ID to ObjectID")
)

type Booking struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CustomerName string             `json:"customerName" bson:"customerName"`
	Email        string             `json:"email" bson:"email"`
	Img          string             `json:"img,omitempty" bson:"img,omitempty"`
	Date         string             `json:"date" bson:"date"`
	Service      string             `json:"service" bson:"service"`
	ServiceID    string             `json:"service_id" bson:"service_id"`
	Price        string             `json:"price" bson:"price"`
	Status       string             `json:"status,omitempty" bson:"status,omitempty"`
}

// Filter narrows a listing. The zero Filter matches every booking.
type Filter struct {
	Email string
}

// StatusUpdate is the only mutation allowed on an existing booking.
type StatusUpdate struct {
	Status string `json:"status"`
}

type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type Repository interface {
	Find(ctx context.Context, filter Filter) ([]*Booking, error)
	Insert(ctx context.Context, b *Booking) (*InsertResult, error)
	UpdateStatus(ctx context.Context, id, status string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
