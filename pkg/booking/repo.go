package booking

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "bookings"

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection(collectionName),
	}
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if f.Email != "" {
		q["email"] = f.Email
	}
	return q
}

func (r *MongoRepo) Find(ctx context.Context, filter Filter) ([]*Booking, error) {
	cursor, err := r.collection.Find(ctx, filter.query())
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]*Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoRepo) Insert(ctx context.Context, b *Booking) (*InsertResult, error) {
	result, err := r.collection.InsertOne(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, ErrNoInsertID
	}
	b.ID = oid

	return &InsertResult{Acknowledged: true, InsertedID: oid}, nil
}

func (r *MongoRepo) UpdateStatus(ctx context.Context, id, status string) (*UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (r *MongoRepo) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}

	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
