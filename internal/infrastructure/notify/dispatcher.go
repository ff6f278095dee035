package notify

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/yng-express/parcel-admin/internal/api/metrics"
	"github.com/yng-express/parcel-admin/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Sender delivers a single notification to the customer (email, SMS, ...).
type Sender interface {
	Send(ctx context.Context, n ports.Notification) error
}

// Dispatcher routes notifications to a fixed set of workers using consistent
// hashing on the tracking number, guaranteeing per-parcel delivery ordering.
type Dispatcher struct {
	workers []chan ports.Notification
	sender  Sender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender Sender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.Notification, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a notification to the worker responsible for its parcel.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(n ports.Notification) {
	d.workers[d.shardIndex(n.TrackingNumber)] <- n
}

// shardIndex maps a tracking number deterministically to a worker index.
func (d *Dispatcher) shardIndex(trackingNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackingNumber))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sender.Send(ctx, n); err != nil {
				metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "error").Inc()
				d.log.Error().Err(err).
					Str("tracking_number", n.TrackingNumber).
					Str("kind", string(n.Kind)).
					Int("worker_id", id).
					Msg("notification delivery failed")
				continue
			}
			metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "ok").Inc()
		}
	}
}
