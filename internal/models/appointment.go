package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment keeps date and times as text, the way the admin editor writes
// them. Rows with dirty times are tolerated by the availability code.
type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"turno_id"`

	ClientID string `gorm:"type:uuid;index" json:"cliente_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente,omitempty"`

	Date      string `gorm:"size:10;index;not null" json:"fecha"`
	StartTime string `gorm:"size:8;not null" json:"inicio"`
	EndTime   string `gorm:"size:8;not null" json:"fin"`

	ServiceType   string `gorm:"size:60" json:"tipo"`
	Zones         string `gorm:"size:255" json:"zonas"`
	TotalDuration int    `json:"duracion_total"`
	TotalPrice    int64  `json:"precio_total"`

	Status       string `gorm:"size:20;index;default:'Confirmado'" json:"estado"`
	Notes        string `gorm:"type:text" json:"notas"`
	ReminderSent bool   `gorm:"default:false" json:"recordatorio_enviado"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
