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
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

// Create inserts a new booking document, assigning an id when none is set.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if b.ID == "" {
		b.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, b)
	return err
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Booking
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// UpdateStatus applies the status change atomically and returns the document
// as it stands after the update.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, update ports.BookingUpdate) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"status":     update.Status,
		"updated_at": time.Now().UTC(),
	}
	if update.Notes != "" {
		set["notes"] = update.Notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b domain.Booking
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"client_id": clientID})
}

func (r *BookingRepository) ListByPhotographer(ctx context.Context, photographerID string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"photographer_id": photographerID})
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"status": status})
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByStatus groups the collection by status for the admin dashboard.
func (r *BookingRepository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[domain.BookingStatus]int64)
	for cur.Next(ctx) {
		var row struct {
			Status domain.BookingStatus `bson:"_id"`
			Count  int64                `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.Status] = row.Count
	}
	return out, cur.Err()
}

// EnsureIndexes creates the indexes used by the list queries.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "photographer_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
