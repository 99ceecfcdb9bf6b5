package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrQueueFull is returned by QueuePublisher when the worker is not keeping up.
var ErrQueueFull = errors.New("audit queue full")

// Sink persists or forwards audit events.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Publisher captures structured audit events. It is append-only and uses a sink
// for persistence so tests can swap sinks easily.
type Publisher struct {
	sink Sink
}

func NewPublisher(sink Sink) *Publisher {
	return &Publisher{sink: sink}
}

func (p *Publisher) Emit(ctx context.Context, base Event) error {
	return p.sink.Append(ctx, prepare(base))
}

// QueuePublisher hands events to a Worker without blocking the caller.
type QueuePublisher struct {
	queue chan Event
}

// NewQueuePublisher returns a publisher and the channel its Worker should drain.
func NewQueuePublisher(size int) (*QueuePublisher, <-chan Event) {
	q := make(chan Event, size)
	return &QueuePublisher{queue: q}, q
}

func (p *QueuePublisher) Emit(ctx context.Context, base Event) error {
	select {
	case p.queue <- prepare(base):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

func prepare(e Event) Event {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	if e.Category == "" {
		e.Category = AuditEvent(e.Action).Category()
	}
	return e
}
