package mocks

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/history"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) ListServices(ctx context.Context) ([]models.ServiceItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.ServiceItem)
	return items, args.Error(1)
}

func (m *Repository) GetClient(ctx context.Context, id string) (*models.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Client)
	return c, args.Error(1)
}

// UpsertClient assigns an id to new clients the way the BeforeCreate hook does.
func (m *Repository) UpsertClient(ctx context.Context, client *models.Client) error {
	args := m.Called(ctx, client)
	if client.ID == "" {
		client.ID = "client-new"
	}
	return args.Error(0)
}

func (m *Repository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	if ap.ID == "" {
		ap.ID = "turno-new"
	}
	return args.Error(0)
}

func (m *Repository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	ap, _ := args.Get(0).(*models.Appointment)
	return ap, args.Error(1)
}

func (m *Repository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *Repository) ListAppointmentsForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, date)
	aps, _ := args.Get(0).([]models.Appointment)
	return aps, args.Error(1)
}

func (m *Repository) ListAppointmentsForRange(
	ctx context.Context,
	from string,
	to string,
	statuses []domain.Status,
) ([]models.Appointment, error) {
	args := m.Called(ctx, from, to, statuses)
	aps, _ := args.Get(0).([]models.Appointment)
	return aps, args.Error(1)
}

var _ domain.Repository = (*Repository)(nil)

// Recorder keeps dispatched history events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []history.Event
}

func (r *Recorder) Dispatch(ev history.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *Recorder) Events() []history.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]history.Event(nil), r.events...)
}
