package dto

import "time"

// ActivityMessage is the wire form of an activity-feed event.
type ActivityMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
