package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/estetica-scheduler/internal/history"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

// UpdateAppointmentInput carries the admin editor fields. Nil means unchanged.
type UpdateAppointmentInput struct {
	Date         *string
	StartTime    *string
	EndTime      *string
	Status       *string
	Notes        *string
	ReminderSent *bool
}

type UpdateAppointment struct {
	repo    domain.Repository
	history history.Recorder
}

func NewUpdateAppointment(repo domain.Repository, history history.Recorder) *UpdateAppointment {
	return &UpdateAppointment{repo: repo, history: history}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := loadAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if in.Date != nil {
		d := strings.TrimSpace(*in.Date)
		if _, err := time.Parse(availability.DateLayout, d); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ap.Date = d
	}

	if in.StartTime != nil {
		ap.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		ap.EndTime = *in.EndTime
	}

	start, err := availability.ParseTimeOfDay(ap.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	end, err := availability.ParseTimeOfDay(ap.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if !start.Before(end) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}
	ap.StartTime = start.String()
	ap.EndTime = end.String()

	if in.Status != nil {
		st, err := domain.ParseStatus(strings.TrimSpace(*in.Status))
		if err != nil {
			return nil, err
		}
		ap.Status = string(st)
	}

	if in.Notes != nil {
		ap.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.ReminderSent != nil {
		ap.ReminderSent = *in.ReminderSent
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.history.Dispatch(history.Event{
		ClientID: ap.ClientID,
		Name:     ap.Client.Name,
		Event:    history.EventAppointmentUpdated,
		Details:  Details(*ap),
	})

	return ap, nil
}
