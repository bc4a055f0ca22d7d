package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/history"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
	"github.com/BruksfildServices01/estetica-scheduler/internal/validators"
)

type NewClientInput struct {
	Name     string
	WhatsApp string
	Email    string
}

// ArchiveInput closes a completed appointment, optionally handing it to a
// client created on the spot (walk-ins booked under someone else's name).
type ArchiveInput struct {
	AppointmentID string
	NewClient     *NewClientInput
	ExtraNotes    string
}

type ArchiveAppointment struct {
	repo    domain.Repository
	history history.Recorder
}

func NewArchiveAppointment(repo domain.Repository, history history.Recorder) *ArchiveAppointment {
	return &ArchiveAppointment{repo: repo, history: history}
}

func (uc *ArchiveAppointment) Execute(ctx context.Context, in ArchiveInput) (*models.Appointment, error) {

	ap, err := loadAppointment(ctx, uc.repo, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanArchive(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if in.NewClient != nil {
		name := strings.TrimSpace(in.NewClient.Name)
		phone := validators.NormalizePhone(in.NewClient.WhatsApp)
		if name == "" || phone == "" {
			return nil, httperr.ErrBusiness("missing_client_data")
		}

		client := &models.Client{
			Name:     name,
			WhatsApp: phone,
			Email:    strings.TrimSpace(in.NewClient.Email),
		}
		if err := uc.repo.UpsertClient(ctx, client); err != nil {
			return nil, err
		}

		ap.ClientID = client.ID
		ap.Client = *client
	}

	ap.Notes = domain.AppendNotes(ap.Notes, in.ExtraNotes)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.history.Dispatch(history.Event{
		ClientID: ap.ClientID,
		Name:     ap.Client.Name,
		Event:    history.EventAppointmentArchived,
		Details:  Details(*ap),
	})

	return ap, nil
}
