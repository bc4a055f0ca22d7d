package appointment

import (
	"strings"

	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	return nil
}

func Complete(ap *models.Appointment) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCompleted)
	return nil
}

// AppendNotes joins extra to the existing notes with " | ".
func AppendNotes(current, extra string) string {
	current = strings.TrimSpace(current)
	extra = strings.TrimSpace(extra)
	switch {
	case extra == "":
		return current
	case current == "":
		return extra
	}
	return current + " | " + extra
}

// ToRecord is the view the slot generator consumes.
func ToRecord(ap models.Appointment) availability.Record {
	return availability.Record{
		Date:      ap.Date,
		StartTime: ap.StartTime,
		EndTime:   ap.EndTime,
		Cancelled: !Status(ap.Status).Occupies(),
	}
}

func ToRecords(aps []models.Appointment) []availability.Record {
	out := make([]availability.Record, 0, len(aps))
	for _, ap := range aps {
		out = append(out, ToRecord(ap))
	}
	return out
}
