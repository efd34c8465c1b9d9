package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

const collectionActivity = "activity_logs"

// ActivityLogRepository persists the append-only audit trail shown on the
// admin dashboard.
type ActivityLogRepository struct {
	col *mongo.Collection
}

func NewActivityLogRepository(db *mongo.Database) *ActivityLogRepository {
	return &ActivityLogRepository{col: db.Collection(collectionActivity)}
}

func (r *ActivityLogRepository) Insert(ctx context.Context, entry *domain.ActivityLog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

func (r *ActivityLogRepository) List(ctx context.Context, page, limit int) ([]*domain.ActivityLog, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*domain.ActivityLog
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *ActivityLogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
