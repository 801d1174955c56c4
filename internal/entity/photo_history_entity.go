package entity

import "time"

type PhotoHistory struct {
	Id            int64
	PlantId       int64
	ImageLocation string
	CreatedAt     time.Time // capture time, not upload time
}
