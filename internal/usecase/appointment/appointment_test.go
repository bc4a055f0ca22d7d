package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment/mocks"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/estetica-scheduler/internal/history"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

// Sunday 2026-10-18, 10:00.
var fixedNow = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

var catalogRows = []models.ServiceItem{
	{Type: "Láser", Zone: "Axilas", DurationMin: 15, Price: 8000},
	{Type: "Láser", Zone: "Piernas completas", DurationMin: 45, Price: 25000},
	{Type: "Descartable", Zone: "Cara", DurationMin: 20, Price: 6000},
}

func fixedClock() time.Time { return fixedNow }

func newAvailability(t *testing.T, repo domain.Repository) *GetAvailability {
	t.Helper()
	cal, err := availability.NewCalendar(availability.DefaultSchedule())
	require.NoError(t, err)

	return NewGetAvailability(
		repo,
		availability.NewGenerator(cal),
		SlotSettings{StepMinutes: 10, BufferMinutes: 5},
		fixedClock,
	)
}

func tuesdayBooked() []models.Appointment {
	return []models.Appointment{
		{ID: "a1", Date: "2026-10-20", StartTime: "10:00", EndTime: "10:30", Status: "Confirmado"},
		{ID: "a2", Date: "2026-10-20", StartTime: "12:00", EndTime: "13:00", Status: "Cancelado"},
	}
}

// ======================================================
// GET AVAILABILITY
// ======================================================

func TestGetAvailability_ExcludesBookedAndBuffer(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("ListAppointmentsForDate", mock.Anything, "2026-10-20").Return(tuesdayBooked(), nil)

	uc := newAvailability(t, repo)
	tuesday := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	slots, err := uc.Execute(context.Background(), tuesday, 30)
	require.NoError(t, err)

	assert.Len(t, slots, 35)
	assert.Contains(t, slots, "09:20")
	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "10:40")
	// cancelled appointments free their time
	assert.Contains(t, slots, "12:00")
	repo.AssertExpectations(t)
}

func TestGetAvailability_TodayDropsPastSlots(t *testing.T) {
	repo := new(mocks.Repository)
	uc := newAvailability(t, repo)

	// Sunday has no windows at all.
	repo.On("ListAppointmentsForDate", mock.Anything, "2026-10-18").Return(nil, nil)
	slots, err := uc.Execute(context.Background(), fixedNow, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)

	// A past day is never bookable.
	repo.On("ListAppointmentsForDate", mock.Anything, "2026-10-16").Return(nil, nil)
	slots, err = uc.Execute(context.Background(), fixedNow.AddDate(0, 0, -2), 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_NonPositiveDurationSkipsRepo(t *testing.T) {
	repo := new(mocks.Repository)
	uc := newAvailability(t, repo)

	slots, err := uc.Execute(context.Background(), fixedNow.AddDate(0, 0, 2), 0)
	require.NoError(t, err)
	assert.Empty(t, slots)
	repo.AssertNotCalled(t, "ListAppointmentsForDate", mock.Anything, mock.Anything)
}

func TestGetAvailability_RepoError(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("ListAppointmentsForDate", mock.Anything, "2026-10-20").Return(nil, errors.New("db down"))

	uc := newAvailability(t, repo)
	_, err := uc.Execute(context.Background(), fixedNow.AddDate(0, 0, 2), 30)
	assert.EqualError(t, err, "db down")
}

// ======================================================
// QUOTE
// ======================================================

func TestQuote(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("ListServices", mock.Anything).Return(catalogRows, nil)

	q, err := NewQuote(repo).Execute(context.Background(), "Láser", []string{"Axilas", " Piernas completas", "Axilas"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Axilas", "Piernas completas"}, q.Zones)
	assert.Equal(t, 60, q.DurationMinutes)
	assert.Equal(t, int64(33000), q.Price)
	assert.Equal(t, "AR$ 33.000", q.PriceLabel)

	q, err = NewQuote(repo).Execute(context.Background(), "Masajes", []string{"Axilas"})
	require.NoError(t, err)
	assert.Zero(t, q.DurationMinutes)
	assert.Zero(t, q.Price)
}

// ======================================================
// CREATE BOOKING
// ======================================================

func newCreateBooking(t *testing.T, repo *mocks.Repository, rec history.Recorder) *CreateBooking {
	return NewCreateBooking(repo, NewQuote(repo), newAvailability(t, repo), rec)
}

func validBooking() CreateBookingInput {
	return CreateBookingInput{
		ServiceType: "Láser",
		Zones:       []string{"Axilas", "Piernas completas"},
		Date:        "2026-10-20",
		Time:        "10:40",
		ClientName:  " Ana Pérez ",
		WhatsApp:    "+54 9 11 5555-6666",
		Email:       "ana@example.com",
		Notes:       "primera vez",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := new(mocks.Repository)
	rec := &mocks.Recorder{}

	repo.On("ListServices", mock.Anything).Return(catalogRows, nil)
	repo.On("ListAppointmentsForDate", mock.Anything, "2026-10-20").Return(tuesdayBooked(), nil)
	repo.On("UpsertClient", mock.Anything, mock.MatchedBy(func(c *models.Client) bool {
		return c.ID == "" && c.Name == "Ana Pérez" && c.WhatsApp == "5491155556666"
	})).Return(nil)
	repo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	ap, err := newCreateBooking(t, repo, rec).Execute(context.Background(), validBooking())
	require.NoError(t, err)

	assert.Equal(t, "turno-new", ap.ID)
	assert.Equal(t, "client-new", ap.ClientID)
	assert.Equal(t, "2026-10-20", ap.Date)
	assert.Equal(t, "10:40", ap.StartTime)
	assert.Equal(t, "11:40", ap.EndTime)
	assert.Equal(t, "Axilas, Piernas completas", ap.Zones)
	assert.Equal(t, 60, ap.TotalDuration)
	assert.Equal(t, int64(33000), ap.TotalPrice)
	assert.Equal(t, "Confirmado", ap.Status)
	assert.False(t, ap.ReminderSent)

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, history.EventAppointmentCreated, events[0].Event)
	assert.Equal(t, "client-new", events[0].ClientID)
	assert.Equal(t, "Láser | Axilas, Piernas completas | 2026-10-20 10:40-11:40", events[0].Details)

	repo.AssertExpectations(t)
}

func TestCreateBooking_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *CreateBookingInput)
		code   string
	}{
		{"missing name", func(in *CreateBookingInput) { in.ClientName = "  " }, "missing_client_data"},
		{"phone without digits", func(in *CreateBookingInput) { in.WhatsApp = "n/a" }, "missing_client_data"},
		{"no zones", func(in *CreateBookingInput) { in.Zones = []string{" "} }, "invalid_zones"},
		{"exclusive zones", func(in *CreateBookingInput) { in.Zones = []string{"Medias piernas", "Piernas completas"} }, "invalid_zones"},
		{"unknown service", func(in *CreateBookingInput) { in.ServiceType = "Masajes" }, "service_not_found"},
		{"bad date", func(in *CreateBookingInput) { in.Date = "20/10/2026" }, "invalid_date"},
		{"bad time", func(in *CreateBookingInput) { in.Time = "diez" }, "invalid_time"},
		{"inside buffer", func(in *CreateBookingInput) { in.Time = "10:30" }, "slot_unavailable"},
		{"off grid", func(in *CreateBookingInput) { in.Time = "10:45" }, "slot_unavailable"},
		{"sunday", func(in *CreateBookingInput) { in.Date = "2026-10-25" }, "slot_unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.Repository)
			rec := &mocks.Recorder{}
			repo.On("ListServices", mock.Anything).Return(catalogRows, nil).Maybe()
			repo.On("ListAppointmentsForDate", mock.Anything, mock.Anything).Return(tuesdayBooked(), nil).Maybe()

			in := validBooking()
			tc.mutate(&in)

			_, err := newCreateBooking(t, repo, rec).Execute(context.Background(), in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)

			repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
			assert.Empty(t, rec.Events())
		})
	}
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func TestCancelAppointment(t *testing.T) {
	repo := new(mocks.Repository)
	rec := &mocks.Recorder{}

	ap := &models.Appointment{ID: "t1", ClientID: "c1", Client: models.Client{ID: "c1", Name: "Ana"}, Status: "Confirmado"}
	repo.On("GetAppointment", mock.Anything, "t1").Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	got, err := NewCancelAppointment(repo, rec).Execute(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Cancelado", got.Status)

	require.Len(t, rec.Events(), 1)
	assert.Equal(t, history.EventAppointmentCancelled, rec.Events()[0].Event)
	assert.Equal(t, "Ana", rec.Events()[0].Name)

	// a second cancel is rejected
	_, err = NewCancelAppointment(repo, rec).Execute(context.Background(), "t1")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	repo.AssertNumberOfCalls(t, "UpdateAppointment", 1)
}

func TestCompleteAppointment(t *testing.T) {
	repo := new(mocks.Repository)
	rec := &mocks.Recorder{}

	ap := &models.Appointment{ID: "t1", ClientID: "c1", Status: "Reprogramado"}
	repo.On("GetAppointment", mock.Anything, "t1").Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	got, err := NewCompleteAppointment(repo, rec).Execute(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Realizado", got.Status)
	assert.Equal(t, history.EventAppointmentCompleted, rec.Events()[0].Event)
}

func TestStatusChange_NotFound(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("GetAppointment", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	_, err := NewCompleteAppointment(repo, &mocks.Recorder{}).Execute(context.Background(), "nope")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

// ======================================================
// UPDATE
// ======================================================

func strPtr(s string) *string { return &s }

func TestUpdateAppointment(t *testing.T) {
	repo := new(mocks.Repository)
	rec := &mocks.Recorder{}

	ap := &models.Appointment{ID: "t1", Date: "2026-10-20", StartTime: "10:00", EndTime: "10:30", Status: "Confirmado"}
	repo.On("GetAppointment", mock.Anything, "t1").Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	sent := true
	got, err := NewUpdateAppointment(repo, rec).Execute(context.Background(), "t1", UpdateAppointmentInput{
		Date:         strPtr("2026-10-21"),
		StartTime:    strPtr("11:00:00"),
		EndTime:      strPtr("11:30"),
		Status:       strPtr("Reprogramado"),
		Notes:        strPtr(" llega tarde "),
		ReminderSent: &sent,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-10-21", got.Date)
	assert.Equal(t, "11:00", got.StartTime)
	assert.Equal(t, "11:30", got.EndTime)
	assert.Equal(t, "Reprogramado", got.Status)
	assert.Equal(t, "llega tarde", got.Notes)
	assert.True(t, got.ReminderSent)
	assert.Equal(t, history.EventAppointmentUpdated, rec.Events()[0].Event)
}

func TestUpdateAppointment_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   UpdateAppointmentInput
		code string
	}{
		{"bad date", UpdateAppointmentInput{Date: strPtr("mañana")}, "invalid_date"},
		{"bad time", UpdateAppointmentInput{StartTime: strPtr("25:00")}, "invalid_time"},
		{"inverted range", UpdateAppointmentInput{StartTime: strPtr("10:30"), EndTime: strPtr("10:00")}, "invalid_time_range"},
		{"bad status", UpdateAppointmentInput{Status: strPtr("Perdido")}, "invalid_status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.Repository)
			ap := &models.Appointment{ID: "t1", Date: "2026-10-20", StartTime: "10:00", EndTime: "10:30", Status: "Confirmado"}
			repo.On("GetAppointment", mock.Anything, "t1").Return(ap, nil)

			_, err := NewUpdateAppointment(repo, &mocks.Recorder{}).Execute(context.Background(), "t1", tc.in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
			repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
		})
	}
}

// ======================================================
// AGENDA
// ======================================================

func TestListAgenda(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("ListAppointmentsForRange", mock.Anything, "2026-10-19", "2026-10-24", domain.DefaultAgendaStatuses).
		Return([]models.Appointment{
			{ID: "t1", Date: "2026-10-20", StartTime: "10:00", EndTime: "10:30", ClientID: "c1",
				Client: models.Client{ID: "c1", Name: "Ana", Email: "ana@example.com"}, Status: "Confirmado"},
			{ID: "t2", Date: "2026-10-21", StartTime: "09:00", EndTime: "09:20", ClientID: "c2", Status: "Reprogramado"},
		}, nil)

	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	items, err := NewListAgenda(repo).Execute(context.Background(), from, from.AddDate(0, 0, 5), nil)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Ana – ana@example.com", items[0].Client)
	assert.Equal(t, "c2", items[1].Client)
	repo.AssertExpectations(t)
}

func TestListAgenda_InvertedRange(t *testing.T) {
	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	_, err := NewListAgenda(new(mocks.Repository)).Execute(context.Background(), from, from.AddDate(0, 0, -1), nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_range"))
}

// ======================================================
// ARCHIVE
// ======================================================

func TestArchiveAppointment_ReassignsClient(t *testing.T) {
	repo := new(mocks.Repository)
	rec := &mocks.Recorder{}

	ap := &models.Appointment{ID: "t1", ClientID: "c1", ServiceType: "Láser", Zones: "Axilas",
		Date: "2026-10-20", StartTime: "10:00", EndTime: "10:15", Status: "Realizado", Notes: "ok"}
	repo.On("GetAppointment", mock.Anything, "t1").Return(ap, nil)
	repo.On("UpsertClient", mock.Anything, mock.AnythingOfType("*models.Client")).Return(nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	got, err := NewArchiveAppointment(repo, rec).Execute(context.Background(), ArchiveInput{
		AppointmentID: "t1",
		NewClient:     &NewClientInput{Name: "Lucía", WhatsApp: "11 4444-3333"},
		ExtraNotes:    "vino la hermana",
	})
	require.NoError(t, err)

	assert.Equal(t, "client-new", got.ClientID)
	assert.Equal(t, "ok | vino la hermana", got.Notes)

	ev := rec.Events()[0]
	assert.Equal(t, history.EventAppointmentArchived, ev.Event)
	assert.Equal(t, "Lucía", ev.Name)
	assert.Equal(t, "Láser | Axilas | 2026-10-20 10:00-10:15", ev.Details)
}

func TestArchiveAppointment_Guards(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("GetAppointment", mock.Anything, "open").
		Return(&models.Appointment{ID: "open", Status: "Confirmado"}, nil)
	repo.On("GetAppointment", mock.Anything, "done").
		Return(&models.Appointment{ID: "done", Status: "Realizado"}, nil)

	uc := NewArchiveAppointment(repo, &mocks.Recorder{})

	_, err := uc.Execute(context.Background(), ArchiveInput{AppointmentID: "open"})
	assert.True(t, httperr.IsBusiness(err, "not_completed"))

	_, err = uc.Execute(context.Background(), ArchiveInput{
		AppointmentID: "done",
		NewClient:     &NewClientInput{Name: "Sin teléfono"},
	})
	assert.True(t, httperr.IsBusiness(err, "missing_client_data"))

	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestGetAvailability_UseCalendar(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("ListAppointmentsForDate", mock.Anything, "2026-10-25").Return(nil, nil)
	uc := newAvailability(t, repo)
	sunday := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)

	slots, err := uc.Execute(context.Background(), sunday, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)

	cal, err := availability.NewCalendar(availability.WeeklySchedule{
		7: {{Start: availability.MustTimeOfDay("10:00"), End: availability.MustTimeOfDay("11:00")}},
	})
	require.NoError(t, err)
	uc.UseCalendar(cal)

	slots, err = uc.Execute(context.Background(), sunday, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:10", "10:20", "10:30"}, slots)
	assert.Same(t, cal, uc.Calendar())
}
