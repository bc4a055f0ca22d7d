package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/catalog"
)

type Step string

const (
	StepPickService   Step = "pick_service"
	StepPickDate      Step = "pick_date"
	StepPickTime      Step = "pick_time"
	StepClientDetails Step = "client_details"
	StepConfirm       Step = "confirm"
)

var (
	ErrWrongStep          = errors.New("action not allowed at this step")
	ErrNoService          = errors.New("service has no duration")
	ErrPastDate           = errors.New("date is in the past")
	ErrSlotUnavailable    = errors.New("slot not available")
	ErrMissingClientData  = errors.New("name and whatsapp are required")
	ErrMissingAppointment = errors.New("appointment id is required")
)

// ReminderNotice is shown on confirmation. Nothing is actually sent.
const ReminderNotice = "Te vamos a recordar tu turno el día anterior."

// Draft is the in-progress booking of one visitor. Transitions never modify
// the receiver: each returns the next Draft.
type Draft struct {
	ID   string `json:"id"`
	Step Step   `json:"step"`

	ServiceType     string   `json:"service_tipo,omitempty"`
	Zones           []string `json:"service_zonas,omitempty"`
	DurationMinutes int      `json:"duracion"`
	TotalPrice      int64    `json:"precio_total"`

	Date string `json:"fecha,omitempty"`
	Slot string `json:"slot,omitempty"`

	ClientName string `json:"nombre,omitempty"`
	WhatsApp   string `json:"whatsapp,omitempty"`
	Email      string `json:"email,omitempty"`
	Notes      string `json:"notas,omitempty"`

	AppointmentID string `json:"turno_id,omitempty"`
}

func New(id string) Draft {
	return Draft{ID: id, Step: StepPickService}
}

// ChooseService stores the quoted service. Zones are normalised and checked
// against the exclusive groups.
func (d Draft) ChooseService(serviceType string, zones []string, minutes int, price int64) (Draft, error) {
	if d.Step != StepPickService {
		return d, ErrWrongStep
	}

	zones = catalog.NormalizeZones(zones)
	if err := catalog.ValidateZones(zones); err != nil {
		return d, err
	}
	if minutes <= 0 {
		return d, ErrNoService
	}

	next := d
	next.ServiceType = strings.TrimSpace(serviceType)
	next.Zones = zones
	next.DurationMinutes = minutes
	next.TotalPrice = price
	next.Step = StepPickDate
	return next, nil
}

// ChooseDate accepts today or any later day, judged in today's location.
func (d Draft) ChooseDate(date time.Time, now time.Time) (Draft, error) {
	if d.Step != StepPickDate {
		return d, ErrWrongStep
	}

	y, m, dd := now.Date()
	today := time.Date(y, m, dd, 0, 0, 0, 0, now.Location())
	y, m, dd = date.Date()
	day := time.Date(y, m, dd, 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return d, ErrPastDate
	}

	next := d
	next.Date = day.Format("2006-01-02")
	next.Slot = ""
	next.Step = StepPickTime
	return next, nil
}

// ChooseTime requires slot to be one of the currently available labels.
func (d Draft) ChooseTime(slot string, available []string) (Draft, error) {
	if d.Step != StepPickTime {
		return d, ErrWrongStep
	}

	slot = strings.TrimSpace(slot)
	found := false
	for _, a := range available {
		if a == slot {
			found = true
			break
		}
	}
	if !found {
		return d, ErrSlotUnavailable
	}

	next := d
	next.Slot = slot
	next.Step = StepClientDetails
	return next, nil
}

// WithClientDetails validates and stores contact data; the draft stays at
// client_details until the appointment is persisted and Confirm is called.
func (d Draft) WithClientDetails(name, whatsapp, email, notes string) (Draft, error) {
	if d.Step != StepClientDetails {
		return d, ErrWrongStep
	}

	name = strings.TrimSpace(name)
	whatsapp = strings.TrimSpace(whatsapp)
	if name == "" || whatsapp == "" || d.Slot == "" {
		return d, ErrMissingClientData
	}

	next := d
	next.ClientName = name
	next.WhatsApp = whatsapp
	next.Email = strings.TrimSpace(email)
	next.Notes = strings.TrimSpace(notes)
	return next, nil
}

func (d Draft) Confirm(appointmentID string) (Draft, error) {
	if d.Step != StepClientDetails {
		return d, ErrWrongStep
	}
	if d.ClientName == "" || d.WhatsApp == "" {
		return d, ErrMissingClientData
	}
	if appointmentID == "" {
		return d, ErrMissingAppointment
	}

	next := d
	next.AppointmentID = appointmentID
	next.Step = StepConfirm
	return next, nil
}

// Back returns to the previous step. Leaving pick_date discards the service
// choice; a confirmed draft starts over.
func (d Draft) Back() Draft {
	switch d.Step {
	case StepPickDate, StepConfirm:
		return New(d.ID)
	case StepPickTime:
		next := d
		next.Step = StepPickDate
		return next
	case StepClientDetails:
		next := d
		next.Step = StepPickTime
		return next
	}
	return d
}
