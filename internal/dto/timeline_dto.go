package dto

import "time"

const (
	TimelineKindPhoto = "photo"
	TimelineKindNote  = "note"
)

// TimelineItem is one entry of the merged reverse-chronological feed.
// Photo items group their attached notes; standalone notes appear on
// their own with PhotoHistory left null.
type TimelineItem struct {
	Kind         string                `json:"kind"`
	CreatedAt    time.Time             `json:"created_at"`
	PhotoHistory *PhotoHistoryResponse `json:"photo_history"`
	Notes        []NoteResponse        `json:"notes"`
	Note         *NoteResponse         `json:"note,omitempty"`
}

type TimelineQuery struct {
	PlantId     int64
	CreatedFrom string
	CreatedTo   string
}
