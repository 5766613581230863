package mongo_test

import (
	"context"
	"testing"

	"cardoctor/internal/mongo"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestPing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(t, mongo.Ping(context.Background(), mt.Client))
	})

	mt.Run("error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "not authorized",
		}))
		err := mongo.Ping(context.Background(), mt.Client)
		assert.ErrorContains(t, err, "not authorized")
	})
}

func TestLoadDBBadURI(t *testing.T) {
	_, _, err := mongo.LoadDB(context.Background(), "not-a-uri", "carDoctor")
	assert.ErrorContains(t, err, "cannot connect to MongoDB")
}
