package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeUpdated EventType = "updated"
	EventTypeReset   EventType = "reset"
	EventTypeCleared EventType = "cleared"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeExpense EntityType = "expense"
	EntityTypeBudget  EntityType = "budget"
	EntityTypeAccount EntityType = "account"
)

// Event represents a realtime event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "expense.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "expense"
	Payload   interface{} `json:"payload"`   // Entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ExpenseCreated creates an expense.created event
func ExpenseCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeExpense, payload)
}

// ExpenseUpdated creates an expense.updated event
func ExpenseUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeExpense, payload)
}

// BudgetUpdated creates a budget.updated event
func BudgetUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeBudget, payload)
}

// BudgetReset creates a budget.reset event
func BudgetReset(payload interface{}) Event {
	return NewEvent(EventTypeReset, EntityTypeBudget, payload)
}

// AccountCleared creates an account.cleared event
func AccountCleared(payload interface{}) Event {
	return NewEvent(EventTypeCleared, EntityTypeAccount, payload)
}
