package entity

import "time"

type Plant struct {
	Id        int64
	Nickname  string
	Species   string
	CreatedAt time.Time
}

// RankedPlant is a Plant annotated with the listing sort keys:
// soonest due date over incomplete notes and most recent photo capture.
type RankedPlant struct {
	Plant
	NextDueDate        *time.Time
	LastPhotoAt        *time.Time
	HasIncompleteNotes bool
}
