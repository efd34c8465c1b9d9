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

const collectionAlbums = "albums"

type AlbumRepository struct {
	col *mongo.Collection
}

func NewAlbumRepository(db *mongo.Database) *AlbumRepository {
	return &AlbumRepository{col: db.Collection(collectionAlbums)}
}

func (r *AlbumRepository) Create(ctx context.Context, a *domain.Album) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if a.ID == "" {
		a.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *AlbumRepository) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Album
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AlbumRepository) UpdateStatus(ctx context.Context, id string, status domain.AlbumStatus) (*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"status": status, "updated_at": time.Now().UTC()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a domain.Album
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AlbumRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Album, error) {
	return r.list(ctx, bson.M{"client_id": clientID})
}

// ListByPhotographer with an empty id returns every album.
func (r *AlbumRepository) ListByPhotographer(ctx context.Context, photographerID string) ([]*domain.Album, error) {
	filter := bson.M{}
	if photographerID != "" {
		filter["photographer_id"] = photographerID
	}
	return r.list(ctx, filter)
}

func (r *AlbumRepository) list(ctx context.Context, filter bson.M) ([]*domain.Album, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Album
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AlbumRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *AlbumRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "photographer_id", Value: 1}}},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
