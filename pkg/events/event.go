package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PLANT_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
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

// Activity event types emitted by the services.
const (
	TypePlantCreated  = "PLANT_CREATED"
	TypePlantDeleted  = "PLANT_DELETED"
	TypePhotoIngested = "PHOTO_INGESTED"
	TypePhotoDeleted  = "PHOTO_DELETED"
	TypeNoteCreated   = "NOTE_CREATED"
	TypeNoteUpdated   = "NOTE_UPDATED"
	TypeNoteDeleted   = "NOTE_DELETED"
	TypePumpActivated = "PUMP_ACTIVATED"
)

// NewActivity builds a BaseEvent stamped with the current time.
func NewActivity(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}
