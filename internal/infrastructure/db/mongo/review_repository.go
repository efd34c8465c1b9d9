package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

const collectionReviews = "reviews"

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(collectionReviews)}
}

// Create inserts a review. The unique booking_id index turns a concurrent
// double submission into ErrReviewExists.
func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if rev.ID == "" {
		rev.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, rev); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrReviewExists
		}
		return err
	}
	return nil
}

func (r *ReviewRepository) FindByBooking(ctx context.Context, bookingID string) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rev domain.Review
	if err := r.col.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&rev); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) ListByPhotographer(ctx context.Context, photographerID string) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"photographer_id": photographerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Review
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "photographer_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
