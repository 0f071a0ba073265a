package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockMongoRepo(mt *mtest.T) *MongoRepo {
	// createIndexes issued by NewMongoRepo
	mt.AddMockResponses(mtest.CreateSuccessResponse())
	return NewMongoRepo(context.Background(), mt.Coll)
}

func toBSON(t *testing.T, v interface{}) bson.D {
	t.Helper()
	b, err := bson.Marshal(v)
	require.NoError(t, err)
	var d bson.D
	require.NoError(t, bson.Unmarshal(b, &d))
	return d
}

func TestMongoRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		repo := newMockMongoRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, repo.Create(ctx, sampleResume("ada")))
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := newMockMongoRepo(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))
		require.Error(mt, repo.Create(ctx, sampleResume("ada")))
	})

	mt.Run("get", func(mt *mtest.T) {
		repo := newMockMongoRepo(mt)
		rec := sampleResume("ada")
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toBSON(mt.T, rec)))

		got, err := repo.Get(ctx, rec.ID)
		require.NoError(mt, err)
		require.Equal(mt, rec.ID, got.ID)
		require.Equal(mt, rec.Data, got.Data)
		require.True(mt, rec.CreatedAt.Equal(got.CreatedAt))
	})

	mt.Run("get missing", func(mt *mtest.T) {
		repo := newMockMongoRepo(mt)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.Get(ctx, uuid.NewString())
		require.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("list skips undecodable documents", func(mt *mtest.T) {
		repo := newMockMongoRepo(mt)
		good := sampleResume("ada")
		bad := bson.D{{Key: "_id", Value: uuid.NewString()}, {Key: "created_at", Value: "yesterday"}}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toBSON(mt.T, good), bad))

		list, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, list, 1)
		require.Equal(mt, good.ID, list[0].ID)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := newMockMongoRepo(mt)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})
		require.NoError(mt, repo.Delete(ctx, uuid.NewString()))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := newMockMongoRepo(mt)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})
		require.ErrorIs(mt, repo.Delete(ctx, uuid.NewString()), ErrNotFound)
	})
}
