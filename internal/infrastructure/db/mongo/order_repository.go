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

const collectionOrders = "orders"

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if o.ID == "" {
		o.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, o)
	return err
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Order
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"status": status, "updated_at": time.Now().UTC()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var o domain.Order
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Order, error) {
	return r.list(ctx, bson.M{"client_id": clientID})
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *OrderRepository) list(ctx context.Context, filter bson.M) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Order
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error) {
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

	out := make(map[domain.OrderStatus]int64)
	for cur.Next(ctx) {
		var row struct {
			Status domain.OrderStatus `bson:"_id"`
			Count  int64              `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.Status] = row.Count
	}
	return out, cur.Err()
}

func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "album_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
