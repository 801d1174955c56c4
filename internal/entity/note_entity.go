package entity

import "time"

type Note struct {
	Id             int64
	PlantId        int64
	PhotoHistoryId *int64
	Content        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DueDate        *time.Time
	CompletedAt    *time.Time
}

// IsIncomplete reports whether the note still awaits completion.
func (n *Note) IsIncomplete() bool {
	return n.CompletedAt == nil
}
