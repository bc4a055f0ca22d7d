package history

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

// Event names written to the history table.
const (
	EventAppointmentCreated   = "Turno creado"
	EventAppointmentCancelled = "Turno cancelado"
	EventAppointmentCompleted = "Turno realizado"
	EventAppointmentUpdated   = "Turno editado"
	EventAppointmentArchived  = "Turno finalizado"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	entry := models.HistoryEntry{
		ClientID: ev.ClientID,
		Name:     ev.Name,
		Date:     ev.At,
		Event:    ev.Event,
		Details:  ev.Details,
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}

	return l.db.WithContext(ctx).Create(&entry).Error
}
