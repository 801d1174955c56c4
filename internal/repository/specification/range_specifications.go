package specification

import (
	"time"

	"gorm.io/gorm"
)

// CreatedFrom bounds created_at from below (inclusive).
type CreatedFrom struct {
	Time time.Time
}

func (s CreatedFrom) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Time)
}

// CreatedTo bounds created_at from above (inclusive).
type CreatedTo struct {
	Time time.Time
}

func (s CreatedTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at <= ?", s.Time)
}

// DueFrom bounds due_date from below (inclusive).
type DueFrom struct {
	Time time.Time
}

func (s DueFrom) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("due_date >= ?", s.Time)
}

// DueTo bounds due_date from above (inclusive).
type DueTo struct {
	Time time.Time
}

func (s DueTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("due_date <= ?", s.Time)
}
