package dto

import "time"

type CreatePlantRequest struct {
	Nickname string `json:"nickname" validate:"required,max=255"`
	Species  string `json:"species" validate:"required,max=255"`
}

type PlantResponse struct {
	Id        int64     `json:"id"`
	Nickname  string    `json:"nickname"`
	Species   string    `json:"species"`
	CreatedAt time.Time `json:"created_at"`
}

// ShowPlantResponse embeds the plant's photo histories for the detail view.
type ShowPlantResponse struct {
	PlantResponse
	PhotoHistories []PhotoHistoryResponse `json:"photo_histories"`
}

// RankedPlantResponse is a listing row annotated with the ordering keys.
type RankedPlantResponse struct {
	Id                 int64                  `json:"id"`
	Nickname           string                 `json:"nickname"`
	Species            string                 `json:"species"`
	CreatedAt          time.Time              `json:"created_at"`
	NextDueDate        *time.Time             `json:"next_due_date"`
	LastPhotoAt        *time.Time             `json:"last_photo_at"`
	HasIncompleteNotes bool                   `json:"has_incomplete_notes"`
	PhotoHistories     []PhotoHistoryResponse `json:"photo_histories"`
}
