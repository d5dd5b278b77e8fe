// Package eventbus provides an in-process, best-effort event channel for
// accepted order transitions. Events are informational: consumers that need
// a complete picture rebuild it from the transition ledger, so a full
// buffer drops the event rather than slowing down or failing the operation
// that produced it.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"orderflow/internal/core/domain/model/order"
)

// DefaultBufferSize is the event buffer used by NewChannelPublisher when no
// explicit size is given.
const DefaultBufferSize = 256

// ChannelPublisher implements ports.EventPublisher over a buffered channel.
// Publish never blocks: when the buffer is full the event is dropped and a
// warning is logged.
type ChannelPublisher struct {
	events chan order.Event
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewChannelPublisher creates a publisher with the given buffer size.
// A non-positive size falls back to DefaultBufferSize.
func NewChannelPublisher(bufferSize int, logger *slog.Logger) *ChannelPublisher {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	return &ChannelPublisher{
		events: make(chan order.Event, bufferSize),
		logger: logger.With("component", "event_publisher"),
	}
}

// Publish enqueues the event for consumers. Drops the event when the buffer
// is full or the publisher is closed.
func (p *ChannelPublisher) Publish(ctx context.Context, event order.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		p.logger.WarnContext(ctx, "Event dropped: publisher closed",
			"order_id", event.OrderID.String(),
			"status", event.Status.String(),
		)
		return
	}

	select {
	case p.events <- event:
	default:
		p.logger.WarnContext(ctx, "Event dropped: buffer full",
			"order_id", event.OrderID.String(),
			"status", event.Status.String(),
			"tx_id", event.TxID.String(),
		)
	}
}

// Subscribe returns the consumer side of the event channel. The channel is
// closed when Close is called.
func (p *ChannelPublisher) Subscribe() <-chan order.Event {
	return p.events
}

// Close stops the publisher and closes the event channel. Publish calls
// after Close drop their events.
func (p *ChannelPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.closed = true
	close(p.events)
}
