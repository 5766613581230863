package booking_test

import (
	"context"
	"testing"

	"cardoctor/pkg/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "carDoctor.bookings"

func bookingDoc(email, status string) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "customerName", Value: "Alice"},
		{Key: "email", Value: email},
		{Key: "date", Value: "2026-10-20"},
		{Key: "service", Value: "Engine Oil Change"},
		{Key: "service_id", Value: "03"},
		{Key: "price", Value: "30.00"},
		{Key: "status", Value: status},
	}
}

func TestFindRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filtered by email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bookingDoc("a@x.com", "confirm"),
		))

		bookings, err := booking.NewMongoRepo(mt.DB).Find(context.Background(), booking.Filter{Email: "a@x.com"})

		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "a@x.com", bookings[0].Email)
		assert.Equal(t, "confirm", bookings[0].Status)

		filter, ok := mt.GetStartedEvent().Command.Lookup("filter").DocumentOK()
		require.True(t, ok)
		assert.Equal(t, "a@x.com", filter.Lookup("email").StringValue())
	})

	mt.Run("no filter", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bookingDoc("a@x.com", ""),
			bookingDoc("b@x.com", ""),
		))

		bookings, err := booking.NewMongoRepo(mt.DB).Find(context.Background(), booking.Filter{})

		require.NoError(t, err)
		assert.Len(t, bookings, 2)

		filter, ok := mt.GetStartedEvent().Command.Lookup("filter").DocumentOK()
		require.True(t, ok)
		elems, err := filter.Elements()
		require.NoError(t, err)
		assert.Empty(t, elems)
	})

	mt.Run("find error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    123,
			Message: "some error",
		}))

		bookings, err := booking.NewMongoRepo(mt.DB).Find(context.Background(), booking.Filter{})

		assert.Error(t, err)
		assert.Nil(t, bookings)
	})
}

func TestInsertRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		b := &booking.Booking{CustomerName: "Alice", Email: "a@x.com"}
		res, err := booking.NewMongoRepo(mt.DB).Insert(context.Background(), b)

		require.NoError(t, err)
		assert.True(t, res.Acknowledged)
		assert.False(t, res.InsertedID.IsZero())
		assert.Equal(t, res.InsertedID, b.ID)
	})

	mt.Run("write error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		res, err := booking.NewMongoRepo(mt.DB).Insert(context.Background(), &booking.Booking{Email: "a@x.com"})

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestUpdateStatusRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("invalid ID format", func(mt *mtest.T) {
		res, err := booking.NewMongoRepo(mt.DB).UpdateStatus(context.Background(), "invalid", "confirm")

		assert.ErrorIs(t, err, booking.ErrInvalidID)
		assert.Nil(t, res)
	})

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := booking.NewMongoRepo(mt.DB).UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), "confirm")

		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(1), res.ModifiedCount)

		update, ok := mt.GetStartedEvent().Command.Lookup("updates").ArrayOK()
		require.True(t, ok)
		first, err := update.IndexErr(0)
		require.NoError(t, err)
		status := first.Value().Document().Lookup("u", "$set", "status").StringValue()
		assert.Equal(t, "confirm", status)
	})

	mt.Run("update error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    123,
			Message: "simulated update error",
		}))

		res, err := booking.NewMongoRepo(mt.DB).UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), "confirm")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "simulated update error")
		assert.Nil(t, res)
	})
}

func TestDeleteRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("invalid ID format", func(mt *mtest.T) {
		_, err := booking.NewMongoRepo(mt.DB).Delete(context.Background(), "invalid")
		assert.ErrorIs(t, err, booking.ErrInvalidID)
	})

	mt.Run("delete success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "ok", Value: 1},
		))

		res, err := booking.NewMongoRepo(mt.DB).Delete(context.Background(), primitive.NewObjectID().Hex())

		require.NoError(t, err)
		assert.Equal(t, int64(1), res.DeletedCount)
	})

	mt.Run("nothing deleted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "ok", Value: 1},
			bson.E{Key: "n", Value: 0},
		))

		res, err := booking.NewMongoRepo(mt.DB).Delete(context.Background(), primitive.NewObjectID().Hex())

		require.NoError(t, err)
		assert.Equal(t, int64(0), res.DeletedCount)
	})

	mt.Run("delete error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    123,
			Message: "simulated delete error",
		}))

		_, err := booking.NewMongoRepo(mt.DB).Delete(context.Background(), primitive.NewObjectID().Hex())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "simulated delete error")
	})
}
