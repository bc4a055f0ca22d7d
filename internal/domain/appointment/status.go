package appointment

import "github.com/BruksfildServices01/estetica-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed   Status = "Confirmado"
	StatusRescheduled Status = "Reprogramado"
	StatusCancelled   Status = "Cancelado"
	StatusNoShow      Status = "No-show"
	StatusCompleted   Status = "Realizado"
)

// Statuses lists every valid status in editor order.
var Statuses = []Status{
	StatusConfirmed,
	StatusRescheduled,
	StatusCancelled,
	StatusNoShow,
	StatusCompleted,
}

// DefaultAgendaStatuses is the agenda filter when none is given.
var DefaultAgendaStatuses = []Status{StatusConfirmed, StatusRescheduled}

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// Occupies reports whether an appointment in this status blocks its time
// range. Only a cancellation frees the slot; no-shows and completed
// appointments keep it.
func (s Status) Occupies() bool {
	return s != StatusCancelled
}

func (s Status) active() bool {
	return s == StatusConfirmed || s == StatusRescheduled
}

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	if !current.active() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if !current.active() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanArchive(current Status) error {
	if current != StatusCompleted {
		return httperr.ErrBusiness("not_completed")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
