package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/estetica-scheduler/internal/history"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
	"github.com/BruksfildServices01/estetica-scheduler/internal/timezone"
	"github.com/BruksfildServices01/estetica-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceType string
	Zones       []string

	Date string // YYYY-MM-DD
	Time string // HH:MM

	ClientName string
	WhatsApp   string
	Email      string
	Notes      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo         domain.Repository
	quote        *Quote
	availability *GetAvailability
	history      history.Recorder
}

func NewCreateBooking(
	repo domain.Repository,
	quote *Quote,
	availability *GetAvailability,
	history history.Recorder,
) *CreateBooking {
	return &CreateBooking{
		repo:         repo,
		quote:        quote,
		availability: availability,
		history:      history,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Datos del cliente
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	phone := validators.NormalizePhone(in.WhatsApp)
	if name == "" || phone == "" {
		return nil, httperr.ErrBusiness("missing_client_data")
	}

	// --------------------------------------------------
	// 2️⃣ Servicio y zonas
	// --------------------------------------------------
	zones := catalog.NormalizeZones(in.Zones)
	if err := catalog.ValidateZones(zones); err != nil {
		return nil, httperr.ErrBusiness("invalid_zones")
	}

	q, err := uc.quote.Execute(ctx, in.ServiceType, zones)
	if err != nil {
		return nil, err
	}
	if q.DurationMinutes <= 0 {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 3️⃣ Fecha / hora en la zona del salón
	// --------------------------------------------------
	date, err := timezone.ParseDate(in.Date, uc.availability.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	tod, err := availability.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	start := tod.On(date)

	// --------------------------------------------------
	// 4️⃣ El horario tiene que seguir libre
	// --------------------------------------------------
	slots, err := uc.availability.Slots(ctx, date, q.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if !containsInstant(slots, start) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 5️⃣ Cliente nuevo (id independiente del teléfono)
	// --------------------------------------------------
	client := &models.Client{
		Name:     name,
		WhatsApp: phone,
		Email:    strings.TrimSpace(in.Email),
	}
	if err := uc.repo.UpsertClient(ctx, client); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Turno confirmado
	// --------------------------------------------------
	end := start.Add(time.Duration(q.DurationMinutes) * time.Minute)
	ap := &models.Appointment{
		ClientID:      client.ID,
		Date:          date.Format(availability.DateLayout),
		StartTime:     start.Format("15:04"),
		EndTime:       end.Format("15:04"),
		ServiceType:   q.ServiceType,
		Zones:         strings.Join(q.Zones, ", "),
		TotalDuration: q.DurationMinutes,
		TotalPrice:    q.Price,
		Status:        string(domain.InitialStatus()),
		Notes:         strings.TrimSpace(in.Notes),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Historial
	// --------------------------------------------------
	uc.history.Dispatch(history.Event{
		ClientID: client.ID,
		Name:     client.Name,
		Event:    history.EventAppointmentCreated,
		Details:  Details(*ap),
	})

	return ap, nil
}

// Details is the one-line summary stored in history entries.
func Details(ap models.Appointment) string {
	return ap.ServiceType + " | " + ap.Zones + " | " + ap.Date + " " + ap.StartTime + "-" + ap.EndTime
}

func containsInstant(slots []time.Time, t time.Time) bool {
	for _, s := range slots {
		if s.Equal(t) {
			return true
		}
	}
	return false
}
