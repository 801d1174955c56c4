package model

import "time"

type Note struct {
	Id             int64         `gorm:"primaryKey;autoIncrement"`
	PlantId        int64         `gorm:"not null;index"`
	Plant          *Plant        `gorm:"foreignKey:PlantId;constraint:OnDelete:CASCADE"`
	PhotoHistoryId *int64        `gorm:"index"`
	PhotoHistory   *PhotoHistory `gorm:"foreignKey:PhotoHistoryId;constraint:OnDelete:SET NULL"`
	Content        string        `gorm:"type:text;not null"`
	CreatedAt      time.Time     `gorm:"autoCreateTime"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime"`
	DueDate        *time.Time    `gorm:"index"`
	CompletedAt    *time.Time
}

func (Note) TableName() string {
	return "notes"
}
