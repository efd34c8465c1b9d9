package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the fulfilment state of a print order.
type OrderStatus string

const (
	OrderPlaced     OrderStatus = "placed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPlaced:     {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

var ErrOrderNotFound = errors.New("order not found")

// CanTransitionTo reports whether the order may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a single print line in an order.
type OrderItem struct {
	PhotoURL string  `json:"photo_url" bson:"photo_url"`
	Format   string  `json:"format" bson:"format"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
}

// Order is a print order a client places against one of their approved albums.
type Order struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	ClientID  string      `json:"client_id" bson:"client_id"`
	AlbumID   string      `json:"album_id" bson:"album_id"`
	Items     []OrderItem `json:"items" bson:"items"`
	Status    OrderStatus `json:"status" bson:"status"`
	Total     float64     `json:"total" bson:"total"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}
