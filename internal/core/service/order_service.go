package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/ports"
)

// printPrices maps print formats to unit prices. Unknown formats fall back to
// the default price.
var printPrices = map[string]float64{
	"4x6":    0.49,
	"5x7":    1.99,
	"8x10":   4.99,
	"canvas": 24.99,
}

const defaultPrintPrice = 2.49

// OrderService implements print orders placed against approved albums.
type OrderService struct {
	orders   ports.OrderRepository
	albums   ports.AlbumRepository
	notifier *NotificationDispatcher
	activity ActivityRecorder
	log      zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	albums ports.AlbumRepository,
	notifier *NotificationDispatcher,
	activity ActivityRecorder,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		albums:   albums,
		notifier: notifier,
		activity: activity,
		log:      log,
	}
}

// Place creates an order for the client against one of their approved albums.
func (s *OrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	album, err := s.albums.GetByID(ctx, input.AlbumID)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	if input.Actor.Role != domain.RoleAdmin && input.Actor.ID != album.ClientID {
		return nil, fmt.Errorf("place order: %w", domain.ErrForbidden)
	}
	if album.Status != domain.AlbumApproved {
		return nil, fmt.Errorf("place order: %w (album is %s)", domain.ErrInvalidTransition, album.Status)
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("place order: no items")
	}

	var total float64
	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		price, ok := printPrices[it.Format]
		if !ok {
			price = defaultPrintPrice
		}
		items = append(items, domain.OrderItem{
			PhotoURL: it.PhotoURL,
			Format:   it.Format,
			Quantity: it.Quantity,
			Price:    price,
		})
		total += price * float64(it.Quantity)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ClientID:  album.ClientID,
		AlbumID:   album.ID,
		Items:     items,
		Status:    domain.OrderPlaced,
		Total:     total,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	s.activity.Record(ctx, domain.ActivityLog{
		ActorID:    input.Actor.ID,
		ActorRole:  input.Actor.Role,
		Action:     "order.placed",
		EntityType: "order",
		EntityID:   order.ID,
		Detail:     fmt.Sprintf("%d items, total %.2f", len(order.Items), order.Total),
	})
	s.log.Info().Str("order_id", order.ID).Str("client_id", order.ClientID).Float64("total", order.Total).Msg("order placed")

	return order, nil
}

// UpdateStatus applies an order status change. Clients may only cancel their
// own placed orders; admins advance fulfilment along the table. The client is
// notified of every applied change.
func (s *OrderService) UpdateStatus(ctx context.Context, input ports.OrderStatusInput) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	switch input.Actor.Role {
	case domain.RoleAdmin:
	case domain.RoleClient:
		if input.Actor.ID != order.ClientID || input.Status != domain.OrderCancelled {
			return nil, fmt.Errorf("update order status: %w", domain.ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("update order status: %w", domain.ErrForbidden)
	}

	if input.Status == order.Status {
		return order, nil
	}
	if !order.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("update order status: %w (from %s to %s)", domain.ErrInvalidTransition, order.Status, input.Status)
	}

	previous := order.Status
	updated, err := s.orders.UpdateStatus(ctx, order.ID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	message := fmt.Sprintf("Your print order is now %s.", input.Status)
	if input.Actor.Role == domain.RoleClient && input.Status == domain.OrderCancelled {
		message = "You cancelled your print order."
	}
	s.notifier.Notify(ctx, updated.ClientID, domain.NotificationOrder, "Print order update", message)

	s.activity.Record(ctx, domain.ActivityLog{
		ActorID:    input.Actor.ID,
		ActorRole:  input.Actor.Role,
		Action:     "order.status_changed",
		EntityType: "order",
		EntityID:   updated.ID,
		Detail:     fmt.Sprintf("%s -> %s", previous, input.Status),
	})
	s.log.Info().Str("order_id", updated.ID).Str("from", string(previous)).Str("to", string(input.Status)).Msg("order status changed")

	return updated, nil
}

func (s *OrderService) GetByID(ctx context.Context, orderID string, actor ports.Actor) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if actor.Role != domain.RoleAdmin && actor.ID != order.ClientID {
		return nil, fmt.Errorf("get order: %w", domain.ErrForbidden)
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, actor ports.Actor) ([]*domain.Order, error) {
	switch actor.Role {
	case domain.RoleClient:
		return s.orders.ListByClient(ctx, actor.ID)
	case domain.RoleAdmin:
		return s.orders.ListAll(ctx)
	default:
		return nil, fmt.Errorf("list orders: %w", domain.ErrForbidden)
	}
}
