package model

import "time"

type PhotoHistory struct {
	Id            int64     `gorm:"primaryKey;autoIncrement"`
	PlantId       int64     `gorm:"not null;index"`
	Plant         *Plant    `gorm:"foreignKey:PlantId;constraint:OnDelete:CASCADE"`
	ImageLocation string    `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time `gorm:"not null"` // capture time, set explicitly on insert
}

func (PhotoHistory) TableName() string {
	return "photo_histories"
}
