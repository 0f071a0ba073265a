package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume"
	"github.com/resumeeditor/resume-editor/backend/go-services/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements a MongoDB-backed durable tier. The resume id is the
// document _id.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(ctx context.Context, col *mongo.Collection) *MongoRepo {
	// index on created_at keeps List ordered without a collection scan sort
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: 1}}}
	if _, err := col.Indexes().CreateOne(ctx, idxModel); err != nil {
		logger.Warnf("failed to ensure created_at index on %s: %v", col.Name(), err)
	}
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(ctx context.Context, r *resume.StoredResume) error {
	if _, err := m.col.InsertOne(ctx, r); err != nil {
		return fmt.Errorf("insert resume %s: %w", r.ID, err)
	}
	return nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*resume.StoredResume, error) {
	var r resume.StoredResume
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find resume %s: %w", id, err)
	}
	return &r, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*resume.StoredResume, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer cur.Close(ctx)
	out := []*resume.StoredResume{}
	for cur.Next(ctx) {
		var r resume.StoredResume
		if err := cur.Decode(&r); err != nil {
			id, _ := cur.Current.Lookup("_id").StringValueOK()
			skipRecord("mongo", id, err)
			continue
		}
		out = append(out, &r)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete resume %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}
