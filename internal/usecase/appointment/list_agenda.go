package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/estetica-scheduler/internal/dto"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
)

type ListAgenda struct {
	repo domain.Repository
}

func NewListAgenda(repo domain.Repository) *ListAgenda {
	return &ListAgenda{repo: repo}
}

// Execute lists the agenda between from and to, both days inclusive, ordered
// by date and start time. Without statuses only active appointments show.
func (uc *ListAgenda) Execute(
	ctx context.Context,
	from time.Time,
	to time.Time,
	statuses []domain.Status,
) ([]dto.AgendaItemDTO, error) {

	if to.Before(from) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}
	if len(statuses) == 0 {
		statuses = domain.DefaultAgendaStatuses
	}

	apps, err := uc.repo.ListAppointmentsForRange(
		ctx,
		from.Format(availability.DateLayout),
		to.Format(availability.DateLayout),
		statuses,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AgendaItemDTO, 0, len(apps))
	for _, ap := range apps {
		client := ap.Client
		if client.ID == "" {
			client.ID = ap.ClientID
		}

		out = append(out, dto.AgendaItemDTO{
			ID:            ap.ID,
			Date:          ap.Date,
			StartTime:     ap.StartTime,
			EndTime:       ap.EndTime,
			ClientID:      ap.ClientID,
			Client:        client.DisplayName(),
			ServiceType:   ap.ServiceType,
			Zones:         ap.Zones,
			TotalDuration: ap.TotalDuration,
			Status:        ap.Status,
			Notes:         ap.Notes,
		})
	}

	return out, nil
}
