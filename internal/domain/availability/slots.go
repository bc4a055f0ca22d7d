package availability

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// SlotRequest describes one availability query.
type SlotRequest struct {
	Date            time.Time
	DurationMinutes int
	StepMinutes     int
	BufferMinutes   int
}

// Generator produces bookable start times from a Calendar.
type Generator struct {
	calendar *Calendar
}

func NewGenerator(calendar *Calendar) *Generator {
	return &Generator{calendar: calendar}
}

func (g *Generator) Calendar() *Calendar {
	return g.calendar
}

// Generate returns the start instants on req.Date where a booking of
// req.DurationMinutes fits inside one business window and does not overlap any
// occupying interval widened by req.BufferMinutes on both sides.
//
// The buffer applies to the occupying side only. Slots never span two windows,
// even contiguous ones. Output is ascending and free of duplicates.
func (g *Generator) Generate(req SlotRequest, occupying []Interval) []time.Time {
	if req.DurationMinutes <= 0 || req.StepMinutes <= 0 {
		return nil
	}

	windows, err := g.calendar.WindowsFor(ISOWeekday(req.Date))
	if err != nil || len(windows) == 0 {
		return nil
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	step := time.Duration(req.StepMinutes) * time.Minute
	buffer := time.Duration(max(req.BufferMinutes, 0)) * time.Minute

	busy := make([]Interval, 0, len(occupying))
	for _, o := range occupying {
		busy = append(busy, Interval{Start: o.Start.Add(-buffer), End: o.End.Add(buffer)})
	}

	var slots []time.Time
	for _, win := range windows {
		windowStart := win.Start.On(req.Date)
		windowEnd := win.End.On(req.Date)

		for t := windowStart; !t.Add(duration).After(windowEnd); t = t.Add(step) {
			if !overlapsAny(t, t.Add(duration), busy) {
				slots = append(slots, t)
			}
		}
	}

	return dedupe(slots)
}

// RestrictToFuture drops slots that already started when date is today.
// Future dates pass through; a past date yields nothing.
func RestrictToFuture(date time.Time, slots []time.Time, now time.Time) []time.Time {
	if len(slots) == 0 {
		return nil
	}

	day := civilDay(date)
	today := civilDay(now)

	switch {
	case day.Before(today):
		return nil
	case day.After(today):
		return slots
	}

	out := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		if s.After(now) {
			out = append(out, s)
		}
	}
	return out
}

// FormatClock renders slots as "HH:MM" labels.
func FormatClock(slots []time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format("15:04"))
	}
	return out
}

// Overlaps reports whether [aStart,aEnd) and [bStart,bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

func dedupe(slots []time.Time) []time.Time {
	if len(slots) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(slots))
	out := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		key := s.UnixNano()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// civilDay is the calendar date of t in its own location, as a UTC midnight
// so dates from different zones compare by year, month and day.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
