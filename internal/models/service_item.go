package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceItem is one catalog row: a service type applied to one zone.
type ServiceItem struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Type        string `gorm:"size:60;not null;uniqueIndex:idx_service_type_zone" json:"tipo"`
	Zone        string `gorm:"size:80;not null;uniqueIndex:idx_service_type_zone" json:"zona"`
	DurationMin int    `gorm:"not null;default:0" json:"duracion_min"`
	Price       int64  `gorm:"not null;default:0" json:"precio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ServiceItem) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
