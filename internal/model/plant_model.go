package model

import "time"

type Plant struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Nickname  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Species   string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Plant) TableName() string {
	return "plants"
}
