package ports

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// EventPublisher hands accepted-transition events to downstream consumers.
// Publication is one-way and best-effort: the engine guarantees an event is
// produced per accepted mutating call, not that it is delivered. Publish
// must never block the caller and never fails the operation that produced
// the event; consumers requiring completeness reconstruct state from the
// transition history instead.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event)
}
