package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shutterstudio/studio-api/internal/core/domain"
)

type captureDeliverer struct {
	delivered chan domain.Notification
}

func (d *captureDeliverer) Deliver(_ context.Context, n domain.Notification) error {
	d.delivered <- n
	return nil
}

func TestDispatcher_DeliversEnqueuedNotifications(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &captureDeliverer{delivered: make(chan domain.Notification, 8)}
	d := NewDispatcher(2, sink, zerolog.Nop())
	d.Start(ctx)

	want := domain.Notification{ID: "ntf_1", UserID: "client_1", Title: "Hello"}
	d.Enqueue(want)

	select {
	case got := <-sink.delivered:
		if got.ID != want.ID || got.UserID != want.UserID {
			t.Errorf("unexpected notification: %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not delivered")
	}
}

func TestDispatcher_SameRecipientKeepsOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &captureDeliverer{delivered: make(chan domain.Notification, 8)}
	d := NewDispatcher(4, sink, zerolog.Nop())
	d.Start(ctx)

	for i, id := range []string{"ntf_1", "ntf_2", "ntf_3"} {
		d.Enqueue(domain.Notification{ID: id, UserID: "client_1", Title: "n", Message: string(rune('a' + i))})
	}

	for _, wantID := range []string{"ntf_1", "ntf_2", "ntf_3"} {
		select {
		case got := <-sink.delivered:
			if got.ID != wantID {
				t.Fatalf("out of order: expected %s, got %s", wantID, got.ID)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("notification %s was not delivered", wantID)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &captureDeliverer{delivered: make(chan domain.Notification, 1)}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
