package appointment

import (
	"context"

	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	ListServices(ctx context.Context) ([]models.ServiceItem, error)

	// -------- Client --------
	GetClient(ctx context.Context, id string) (*models.Client, error)

	UpsertClient(ctx context.Context, client *models.Client) error

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Availability / agenda --------
	ListAppointmentsForDate(ctx context.Context, date string) ([]models.Appointment, error)

	ListAppointmentsForRange(
		ctx context.Context,
		from string,
		to string,
		statuses []Status,
	) ([]models.Appointment, error)
}
