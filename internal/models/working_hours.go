package models

import "time"

// WorkingHours overrides the built-in weekly schedule when rows exist.
// Weekday follows ISO numbering: 1=Monday .. 7=Sunday.
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday  int `gorm:"index;not null" json:"weekday"`
	Position int `json:"position"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
