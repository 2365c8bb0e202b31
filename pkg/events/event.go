package events

import "time"

// Event is the contract for activity events pushed onto the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain implementation for events that carry no behavior.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewEvent builds a BaseEvent stamped with the current time.
func NewEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
