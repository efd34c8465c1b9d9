package ports

import (
	"context"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

// OrderRepository defines persistence operations for print orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// UpdateStatus sets the order status, refreshes updated_at, and returns
	// the post-update document.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
	CountByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error)
}

// OrderItemInput is a single requested print line.
type OrderItemInput struct {
	PhotoURL string
	Format   string
	Quantity int
}

// PlaceOrderInput carries the data for a new print order.
type PlaceOrderInput struct {
	Actor   Actor
	AlbumID string
	Items   []OrderItemInput
}

// OrderStatusInput carries a single order status change. Clients may only
// cancel their own placed orders; admins advance fulfilment.
type OrderStatusInput struct {
	OrderID string
	Status  domain.OrderStatus
	Actor   Actor
}

// OrderService defines print order use cases.
type OrderService interface {
	Place(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, input OrderStatusInput) (*domain.Order, error)
	GetByID(ctx context.Context, orderID string, actor Actor) (*domain.Order, error)
	List(ctx context.Context, actor Actor) ([]*domain.Order, error)
}
