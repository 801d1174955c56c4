package dto

import "time"

// CreateNoteRequest accepts either a JSON body or a multipart form.
// The multipart form may carry an inline image; the image becomes a new
// photo history which the note is then attached to.
type CreateNoteRequest struct {
	PlantId        int64
	Content        string `json:"content" form:"content" validate:"required"`
	DueDate        string `json:"due_date" form:"due_date"`
	PhotoHistoryId *int64 `json:"photo_history_id"`

	// multipart only
	ImageName string
	ImageData []byte
	ImageDate string
}

type UpdateNoteRequest struct {
	PlantId int64
	NoteId  int64

	Content          *string `json:"content"`
	DueDate          *string `json:"due_date"`
	PhotoHistoryId   *int64  `json:"photo_history_id"`
	ClearDueDate     bool    `json:"clear_due_date"`
	ClearPhoto       bool    `json:"clear_photo"`
	Complete         bool    `json:"complete"`
	ClearCompletedAt bool    `json:"clear_completed_at"`
}

type NoteResponse struct {
	Id             int64      `json:"id"`
	PlantId        int64      `json:"plant_id"`
	PhotoHistoryId *int64     `json:"photo_history_id"`
	Content        string     `json:"content"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DueDate        *time.Time `json:"due_date"`
	CompletedAt    *time.Time `json:"completed_at"`
}

// ListNotesQuery holds the optional listing filters, all ISO-8601 strings.
type ListNotesQuery struct {
	PlantId     *int64
	CreatedFrom string
	CreatedTo   string
	DueFrom     string
	DueTo       string
}
