package availability

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrInvalidWeekday = errors.New("invalid weekday")
	ErrInvalidWindow  = errors.New("invalid time window")
)

// TimeWindow is an open-for-business range [Start, End) within a day.
type TimeWindow struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// WeeklySchedule maps ISO weekdays (1=Monday .. 7=Sunday) to ordered windows.
// A missing weekday is a closed day.
type WeeklySchedule map[int][]TimeWindow

// DefaultSchedule is the salon's reference opening hours.
func DefaultSchedule() WeeklySchedule {
	w := func(start, end string) TimeWindow {
		return TimeWindow{Start: MustTimeOfDay(start), End: MustTimeOfDay(end)}
	}
	return WeeklySchedule{
		1: {w("09:00", "13:00"), w("14:00", "17:00")},
		2: {w("09:00", "17:00")},
		3: {w("09:00", "17:00")},
		4: {w("09:00", "17:00")},
		5: {w("09:00", "15:00")},
		6: {w("09:00", "15:00")},
	}
}

// Calendar answers which windows are open on a weekday. It never mutates the
// schedule it was built from.
type Calendar struct {
	schedule WeeklySchedule
}

func NewCalendar(schedule WeeklySchedule) (*Calendar, error) {
	copied := make(WeeklySchedule, len(schedule))

	for weekday, windows := range schedule {
		if weekday < 1 || weekday > 7 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, weekday)
		}

		ws := append([]TimeWindow(nil), windows...)
		sort.SliceStable(ws, func(i, j int) bool { return ws[i].Start.Before(ws[j].Start) })

		for i, win := range ws {
			if !win.Start.Before(win.End) {
				return nil, fmt.Errorf("%w: weekday %d %s-%s", ErrInvalidWindow, weekday, win.Start, win.End)
			}
			if i > 0 && win.Start.Before(ws[i-1].End) {
				return nil, fmt.Errorf("%w: weekday %d windows overlap at %s", ErrInvalidWindow, weekday, win.Start)
			}
		}

		if len(ws) > 0 {
			copied[weekday] = ws
		}
	}

	return &Calendar{schedule: copied}, nil
}

// WindowsFor returns the windows configured for an ISO weekday, or an empty
// slice on a closed day.
func (c *Calendar) WindowsFor(weekday int) ([]TimeWindow, error) {
	if weekday < 1 || weekday > 7 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, weekday)
	}
	return append([]TimeWindow{}, c.schedule[weekday]...), nil
}

// Schedule returns a copy of the configured table.
func (c *Calendar) Schedule() WeeklySchedule {
	out := make(WeeklySchedule, len(c.schedule))
	for k, v := range c.schedule {
		out[k] = append([]TimeWindow(nil), v...)
	}
	return out
}

// ISOWeekday maps time.Weekday (Sunday=0) to 1=Monday .. 7=Sunday.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
