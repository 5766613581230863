package carservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID = errors.New("invalid ID format")
	ErrNotFound  = errors.New("service not found")
)

type Facility struct {
	Name    string `json:"name" bson:"name"`
	Details string `json:"details" bson:"details"`
}

// Service is an offering from the "services" collection.
type Service struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ServiceID   string             `json:"service_id" bson:"service_id"`
	Title       string             `json:"title" bson:"title"`
	Img         string             `json:"img,omitempty" bson:"img,omitempty"`
	Price       string             `json:"price" bson:"price"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Facility    []Facility         `json:"facility,omitempty" bson:"facility,omitempty"`
}

type Repository interface {
	GetAll(ctx context.Context) ([]*Service, error)
	GetByID(ctx context.Context, id string) (*Service, error)
}
