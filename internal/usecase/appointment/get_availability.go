package appointment

import (
	"context"
	"sync/atomic"
	"time"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/estetica-scheduler/internal/timezone"
)

// SlotSettings are the salon-wide slot parameters.
type SlotSettings struct {
	StepMinutes   int
	BufferMinutes int
}

type GetAvailability struct {
	repo      domain.Repository
	generator atomic.Pointer[availability.Generator]
	settings  SlotSettings
	now       timezone.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	generator *availability.Generator,
	settings SlotSettings,
	now timezone.Clock,
) *GetAvailability {
	uc := &GetAvailability{
		repo:     repo,
		settings: settings,
		now:      now,
	}
	uc.generator.Store(generator)
	return uc
}

// UseCalendar swaps the business hours used by later requests.
func (uc *GetAvailability) UseCalendar(cal *availability.Calendar) {
	uc.generator.Store(availability.NewGenerator(cal))
}

func (uc *GetAvailability) Calendar() *availability.Calendar {
	return uc.generator.Load().Calendar()
}

// Execute lists the bookable start times of date as "HH:MM", already without
// the times that passed when date is today.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
	durationMinutes int,
) ([]string, error) {

	slots, err := uc.Slots(ctx, date, durationMinutes)
	if err != nil {
		return nil, err
	}
	return availability.FormatClock(slots), nil
}

func (uc *GetAvailability) Slots(
	ctx context.Context,
	date time.Time,
	durationMinutes int,
) ([]time.Time, error) {

	if durationMinutes <= 0 {
		return nil, nil
	}

	// --------------------------------------------------
	// Turnos del día (lectura fresca)
	// --------------------------------------------------
	appointments, err := uc.repo.ListAppointmentsForDate(ctx, date.Format(availability.DateLayout))
	if err != nil {
		return nil, err
	}

	busy := availability.OccupyingIntervals(date, domain.ToRecords(appointments))

	all := uc.generator.Load().Generate(availability.SlotRequest{
		Date:            date,
		DurationMinutes: durationMinutes,
		StepMinutes:     uc.settings.StepMinutes,
		BufferMinutes:   uc.settings.BufferMinutes,
	}, busy)

	return availability.RestrictToFuture(date, all, uc.now()), nil
}

func (uc *GetAvailability) Location() *time.Location {
	return uc.now().Location()
}

func (uc *GetAvailability) Now() time.Time {
	return uc.now()
}
