package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/history"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

type CancelAppointment struct {
	repo    domain.Repository
	history history.Recorder
}

func NewCancelAppointment(repo domain.Repository, history history.Recorder) *CancelAppointment {
	return &CancelAppointment{repo: repo, history: history}
}

func (uc *CancelAppointment) Execute(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return changeStatus(ctx, uc.repo, uc.history, appointmentID, domain.Cancel, history.EventAppointmentCancelled)
}

type CompleteAppointment struct {
	repo    domain.Repository
	history history.Recorder
}

func NewCompleteAppointment(repo domain.Repository, history history.Recorder) *CompleteAppointment {
	return &CompleteAppointment{repo: repo, history: history}
}

func (uc *CompleteAppointment) Execute(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return changeStatus(ctx, uc.repo, uc.history, appointmentID, domain.Complete, history.EventAppointmentCompleted)
}

func changeStatus(
	ctx context.Context,
	repo domain.Repository,
	rec history.Recorder,
	appointmentID string,
	action func(*models.Appointment) error,
	event string,
) (*models.Appointment, error) {

	ap, err := loadAppointment(ctx, repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := action(ap); err != nil {
		return nil, err
	}

	if err := repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	rec.Dispatch(history.Event{
		ClientID: ap.ClientID,
		Name:     ap.Client.Name,
		Event:    event,
		Details:  Details(*ap),
	})

	return ap, nil
}

func loadAppointment(ctx context.Context, repo domain.Repository, id string) (*models.Appointment, error) {
	ap, err := repo.GetAppointment(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}
	return ap, nil
}
