package deliver

import (
	"context"

	"go.uber.org/zap"

	"github.com/StevenCC12/server-side-capi/internal/domain"
)

// AsyncSender runs the fire-and-forget delivery path: events are handed to a
// single worker goroutine and the triggering interaction returns
// immediately. There is no queueing beyond the in-flight buffer and no
// persistence. An event still buffered at shutdown is lost.
type AsyncSender struct {
	client *Client
	jobs   chan job
	log    *zap.Logger
}

type job struct {
	endpoint string
	event    *domain.ConversionEvent
}

// NewAsyncSender creates an async sender with the given in-flight buffer.
func NewAsyncSender(client *Client, buffer int, log *zap.Logger) *AsyncSender {
	if buffer < 1 {
		buffer = 1
	}
	return &AsyncSender{
		client: client,
		jobs:   make(chan job, buffer),
		log:    log,
	}
}

// Start runs the delivery worker until the context is canceled, then drains
// whatever is already buffered with a single attempt each.
func (s *AsyncSender) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.log.Info("Async sender shutting down")
			s.drain()
			return
		case j, ok := <-s.jobs:
			if !ok {
				return
			}
			s.client.Deliver(context.Background(), j.endpoint, j.event, FireAndForget)
		}
	}
}

// Dispatch hands an event to the worker. When the buffer is full the event
// is dropped rather than blocking the interaction that produced it.
func (s *AsyncSender) Dispatch(endpoint string, event *domain.ConversionEvent) {
	select {
	case s.jobs <- job{endpoint: endpoint, event: event}:
	default:
		s.log.Warn("Dropping event, delivery buffer full",
			zap.String("event_name", string(event.EventName)),
			zap.String("event_id", event.EventID))
	}
}

func (s *AsyncSender) drain() {
	for {
		select {
		case j := <-s.jobs:
			s.client.Deliver(context.Background(), j.endpoint, j.event, FireAndForget)
		default:
			return
		}
	}
}
