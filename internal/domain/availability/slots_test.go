package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday   = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)
)

func defaultGenerator(t *testing.T) *Generator {
	t.Helper()
	cal, err := NewCalendar(DefaultSchedule())
	require.NoError(t, err)
	return NewGenerator(cal)
}

func at(day time.Time, hhmm string) time.Time {
	return MustTimeOfDay(hhmm).On(day)
}

func req(day time.Time, duration int) SlotRequest {
	return SlotRequest{Date: day, DurationMinutes: duration, StepMinutes: 10, BufferMinutes: 5}
}

func TestGenerate_EmptyTuesday(t *testing.T) {
	g := defaultGenerator(t)

	slots := g.Generate(req(tuesday, 30), nil)

	require.Len(t, slots, 46)
	assert.Equal(t, at(tuesday, "09:00"), slots[0])
	assert.Equal(t, at(tuesday, "09:10"), slots[1])
	assert.Equal(t, at(tuesday, "16:30"), slots[len(slots)-1])
}

func TestGenerate_ConfirmedAppointmentWithBuffer(t *testing.T) {
	g := defaultGenerator(t)
	busy := OccupyingIntervals(tuesday, []Record{
		{Date: "2026-10-20", StartTime: "10:00", EndTime: "10:30"},
	})

	labels := FormatClock(g.Generate(req(tuesday, 30), busy))

	assert.Subset(t, labels, []string{"09:00", "09:10", "09:20", "10:40", "10:50", "16:30"})
	for _, excluded := range []string{"09:30", "09:40", "09:50", "10:00", "10:10", "10:20", "10:30"} {
		assert.NotContains(t, labels, excluded)
	}
	assert.Len(t, labels, 35)
}

func TestGenerate_CancelledAppointmentIsIgnored(t *testing.T) {
	g := defaultGenerator(t)
	busy := OccupyingIntervals(tuesday, []Record{
		{Date: "2026-10-20", StartTime: "10:00", EndTime: "10:30", Cancelled: true},
	})

	slots := g.Generate(req(tuesday, 30), busy)

	assert.Empty(t, busy)
	assert.Len(t, slots, 46)
}

func TestGenerate_MalformedAppointmentIsSkipped(t *testing.T) {
	g := defaultGenerator(t)
	busy := OccupyingIntervals(tuesday, []Record{
		{Date: "2026-10-20", StartTime: "abc", EndTime: "10:30"},
		{Date: "2026-10-20", StartTime: "10:00", EndTime: ""},
		{Date: "2026-10-20", StartTime: "11:00", EndTime: "10:00"},
		{Date: "2026-10-20", StartTime: "10:00:zz", EndTime: "10:30:??"},
		{Date: "2026-10-20", StartTime: "+11:00", EndTime: "11:30:00:00"},
	})

	assert.Empty(t, busy)
	assert.Len(t, g.Generate(req(tuesday, 30), busy), 46)
}

func TestGenerate_NegativeBufferCountsAsZero(t *testing.T) {
	g := defaultGenerator(t)
	busy := OccupyingIntervals(tuesday, []Record{
		{Date: "2026-10-20", StartTime: "10:00", EndTime: "10:30"},
	})

	r := req(tuesday, 30)
	r.BufferMinutes = -20
	labels := FormatClock(g.Generate(r, busy))

	assert.NotContains(t, labels, "10:00")
	assert.NotContains(t, labels, "09:40")
	assert.Contains(t, labels, "09:30")
	assert.Contains(t, labels, "10:30")
}

func TestGenerate_OtherDatesDoNotOccupy(t *testing.T) {
	busy := OccupyingIntervals(tuesday, []Record{
		{Date: "2026-10-21", StartTime: "10:00", EndTime: "10:30"},
		{Date: "2026-10-20T00:00:00Z", StartTime: "12:00", EndTime: "12:30"},
	})

	require.Len(t, busy, 1)
	assert.Equal(t, at(tuesday, "12:00"), busy[0].Start)
}

func TestGenerate_ClosedDay(t *testing.T) {
	g := defaultGenerator(t)
	busy := []Interval{{Start: at(sunday, "10:00"), End: at(sunday, "11:00")}}

	for _, d := range []int{1, 30, 90, 600} {
		assert.Empty(t, g.Generate(req(sunday, d), nil))
		assert.Empty(t, g.Generate(req(sunday, d), busy))
	}
}

func TestGenerate_DurationGuard(t *testing.T) {
	g := defaultGenerator(t)

	assert.Empty(t, g.Generate(req(tuesday, 0), nil))
	assert.Empty(t, g.Generate(req(tuesday, -15), nil))
	assert.Empty(t, g.Generate(SlotRequest{Date: tuesday, DurationMinutes: 30, StepMinutes: 0}, nil))
}

func TestGenerate_SlotsNeverSpanWindows(t *testing.T) {
	g := defaultGenerator(t)

	labels := FormatClock(g.Generate(req(monday, 240), nil))
	assert.Equal(t, []string{"09:00"}, labels)

	labels = FormatClock(g.Generate(req(monday, 30), nil))
	assert.Len(t, labels, 38)
	assert.Contains(t, labels, "12:30")
	assert.NotContains(t, labels, "12:40")
	assert.NotContains(t, labels, "13:30")
	assert.Contains(t, labels, "14:00")
}

func TestGenerate_ContiguousWindowsEvaluatedIndependently(t *testing.T) {
	cal, err := NewCalendar(WeeklySchedule{
		2: {
			{Start: MustTimeOfDay("10:00"), End: MustTimeOfDay("11:00")},
			{Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("10:00")},
		},
	})
	require.NoError(t, err)

	slots := NewGenerator(cal).Generate(SlotRequest{Date: tuesday, DurationMinutes: 60, StepMinutes: 30}, nil)

	assert.Equal(t, []string{"09:00", "10:00"}, FormatClock(slots))
}

func TestGenerate_BufferDoesNotApplyToWindowEdges(t *testing.T) {
	g := defaultGenerator(t)

	slots := g.Generate(SlotRequest{Date: saturday, DurationMinutes: 60, StepMinutes: 60, BufferMinutes: 30}, nil)

	labels := FormatClock(slots)
	assert.Equal(t, "09:00", labels[0])
	assert.Equal(t, "14:00", labels[len(labels)-1])
}

func TestGenerate_Properties(t *testing.T) {
	g := defaultGenerator(t)

	records := []Record{
		{Date: "2026-10-20", StartTime: "09:15", EndTime: "09:45"},
		{Date: "2026-10-20", StartTime: "11:00", EndTime: "12:10"},
		{Date: "2026-10-20", StartTime: "15:30", EndTime: "16:00"},
	}

	for _, duration := range []int{10, 25, 30, 45, 60, 90} {
		for _, buffer := range []int{0, 5, 15} {
			r := SlotRequest{Date: tuesday, DurationMinutes: duration, StepMinutes: 10, BufferMinutes: buffer}
			busy := OccupyingIntervals(tuesday, records)
			slots := g.Generate(r, busy)

			for i, s := range slots {
				if i > 0 {
					assert.True(t, slots[i-1].Before(s), "slots must be strictly ascending")
				}
				end := s.Add(time.Duration(duration) * time.Minute)
				for _, b := range busy {
					bufferD := time.Duration(buffer) * time.Minute
					assert.False(t, Overlaps(s, end, b.Start.Add(-bufferD), b.End.Add(bufferD)),
						"slot %s overlaps busy %s", s.Format("15:04"), b.Start.Format("15:04"))
				}
			}

			for i := range records {
				freed := append([]Record(nil), records...)
				freed[i].Cancelled = true
				more := g.Generate(r, OccupyingIntervals(tuesday, freed))
				assert.Subset(t, FormatClock(more), FormatClock(slots), "cancelling must never remove slots")
			}
		}
	}
}

func TestRestrictToFuture(t *testing.T) {
	g := defaultGenerator(t)
	all := g.Generate(req(tuesday, 30), nil)

	t.Run("today drops started slots", func(t *testing.T) {
		now := at(tuesday, "14:05")
		got := RestrictToFuture(tuesday, all, now)

		require.NotEmpty(t, got)
		assert.Equal(t, at(tuesday, "14:10"), got[0])
		for _, s := range got {
			assert.True(t, s.After(now))
		}
	})

	t.Run("slot starting exactly now is dropped", func(t *testing.T) {
		got := RestrictToFuture(tuesday, all, at(tuesday, "14:00"))
		assert.Equal(t, at(tuesday, "14:10"), got[0])
	})

	t.Run("future date is untouched", func(t *testing.T) {
		now := at(monday, "18:00")
		assert.Equal(t, all, RestrictToFuture(tuesday, all, now))
	})

	t.Run("date keeps its own calendar day", func(t *testing.T) {
		now := time.Date(2026, 10, 20, 10, 0, 0, 0, time.FixedZone("UTC-3", -3*60*60))
		got := RestrictToFuture(tuesday, all, now)

		assert.Contains(t, FormatClock(got), "16:00")
		assert.Equal(t, at(tuesday, "13:10"), got[0])
	})

	t.Run("past date yields nothing", func(t *testing.T) {
		now := at(saturday, "08:00")
		assert.Empty(t, RestrictToFuture(tuesday, all, now))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, RestrictToFuture(tuesday, nil, at(tuesday, "08:00")))
	})
}

func TestDedupePreservesFirstSeenOrder(t *testing.T) {
	in := []time.Time{at(tuesday, "09:00"), at(tuesday, "09:10"), at(tuesday, "09:00"), at(tuesday, "09:20")}

	assert.Equal(t, []string{"09:00", "09:10", "09:20"}, FormatClock(dedupe(in)))
}
