package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/shutterstudio/studio-api/internal/api/metrics"
	"github.com/shutterstudio/studio-api/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Deliverer pushes a persisted notification to its recipient over an external
// channel (email, push, websocket).
type Deliverer interface {
	Deliver(ctx context.Context, n domain.Notification) error
}

// LogDeliverer writes deliveries to the log. It stands in for a real channel
// in development and tests.
type LogDeliverer struct {
	log zerolog.Logger
}

func NewLogDeliverer(log zerolog.Logger) *LogDeliverer {
	return &LogDeliverer{log: log}
}

func (d *LogDeliverer) Deliver(_ context.Context, n domain.Notification) error {
	d.log.Info().
		Str("user_id", n.UserID).
		Str("type", string(n.Type)).
		Str("title", n.Title).
		Msg("notification delivered")
	return nil
}

// Dispatcher routes notifications to a fixed set of workers using consistent
// hashing on the recipient id, so one user's notifications are delivered in
// the order they were emitted.
type Dispatcher struct {
	workers   []chan domain.Notification
	deliverer Deliverer
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, deliverer Deliverer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan domain.Notification, numWorkers),
		deliverer: deliverer,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker responsible for its recipient.
// When the worker's buffer is full the notification is dropped with a warning
// rather than blocking the caller.
func (d *Dispatcher) Enqueue(n domain.Notification) {
	idx := d.shardIndex(n.UserID)
	select {
	case d.workers[idx] <- n:
		metrics.DeliveryQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		d.log.Warn().
			Str("user_id", n.UserID).
			Int("worker_id", idx).
			Msg("delivery queue full, notification dropped")
	}
}

// shardIndex maps a recipient id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Notification) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			metrics.DeliveryQueueDepth.WithLabelValues(worker).Dec()
			if err := d.deliverer.Deliver(ctx, n); err != nil {
				d.log.Error().Err(err).
					Str("user_id", n.UserID).
					Int("worker_id", id).
					Msg("notification delivery failed")
			}
		}
	}
}
