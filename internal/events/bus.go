// Package events fans engine events out to subscribers.
package events

import (
	"log/slog"

	"github.com/mcoot/blockfall/internal/model"
)

// Handler receives published events
type Handler func(model.Event)

// Publisher is what the engine publishes through
type Publisher interface {
	Publish(event model.Event)
}

// Bus delivers each event to every subscriber, in subscription order,
// on the publishing goroutine
type Bus struct {
	handlers []Handler
	logger   *slog.Logger
}

// NewBus creates an empty Bus
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		logger: logger.With(slog.String("component", "event-bus")),
	}
}

var _ Publisher = (*Bus)(nil)

// Subscribe registers a handler for all future events
func (b *Bus) Subscribe(h Handler) {
	b.handlers = append(b.handlers, h)
}

// Publish sends the event to all subscribers
func (b *Bus) Publish(event model.Event) {
	b.logger.Debug("publishing event",
		slog.String("type", string(event.Type)),
		slog.Int("subscribers", len(b.handlers)))
	for _, h := range b.handlers {
		h(event)
	}
}

// Discard is a Publisher that drops every event
type Discard struct{}

// Publish does nothing
func (Discard) Publish(model.Event) {}
