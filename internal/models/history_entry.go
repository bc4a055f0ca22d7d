package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistoryEntry struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID string    `gorm:"type:uuid;index" json:"cliente_id"`
	Name     string    `gorm:"size:120" json:"nombre"`
	Date     time.Time `gorm:"index" json:"fecha"`
	Event    string    `gorm:"size:60;not null" json:"evento"`
	Details  string    `gorm:"type:text" json:"detalles"`
}

func (h *HistoryEntry) BeforeCreate(*gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.Date.IsZero() {
		h.Date = time.Now().UTC()
	}
	return nil
}
