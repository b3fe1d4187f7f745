package websocket

import "github.com/rs/zerolog/log"

// EventPublisher defines the interface for publishing events about a user's data
type EventPublisher interface {
	// Publish delivers an event to everything listening for the given user
	Publish(userID string, event Event)
}

// Ensure Hub implements EventPublisher
var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting the event to the user's connections
func (h *Hub) Publish(userID string, event Event) {
	h.Broadcast(userID, event)
}

// NoOpPublisher is a publisher that does nothing (for testing or when realtime delivery is disabled)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(userID string, event Event) {}

// MultiPublisher fans an event out to several publishers in order
type MultiPublisher struct {
	publishers []EventPublisher
}

// NewMultiPublisher creates a MultiPublisher, skipping nil entries
func NewMultiPublisher(publishers ...EventPublisher) *MultiPublisher {
	filtered := make([]EventPublisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			filtered = append(filtered, p)
		}
	}
	return &MultiPublisher{publishers: filtered}
}

// Publish forwards the event to every publisher. A panicking publisher does
// not stop delivery to the rest.
func (m *MultiPublisher) Publish(userID string, event Event) {
	for _, p := range m.publishers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Interface("panic", r).
						Str("user_id", userID).
						Str("event_type", event.Type).
						Msg("Event publisher panicked")
				}
			}()
			p.Publish(userID, event)
		}()
	}
}
