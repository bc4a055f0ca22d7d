package availability

import (
	"strings"
	"time"
)

// DateLayout is the storage format of appointment dates.
const DateLayout = "2006-01-02"

// Record is the minimal view of a stored appointment the generator needs.
type Record struct {
	Date      string
	StartTime string
	EndTime   string
	Cancelled bool
}

// OccupyingIntervals turns the non-cancelled records of date into busy
// intervals. Records with unparseable times, or with start not before end, are
// skipped instead of failing the whole day.
func OccupyingIntervals(date time.Time, records []Record) []Interval {
	day := date.Format(DateLayout)

	out := make([]Interval, 0, len(records))
	for _, r := range records {
		if r.Cancelled {
			continue
		}
		if !sameDay(r.Date, day) {
			continue
		}

		start, err := ParseTimeOfDay(r.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseTimeOfDay(r.EndTime)
		if err != nil {
			continue
		}
		if !start.Before(end) {
			continue
		}

		out = append(out, Interval{Start: start.On(date), End: end.On(date)})
	}
	return out
}

// sameDay accepts both "2006-01-02" and timestamps that start with it.
func sameDay(stored, day string) bool {
	stored = strings.TrimSpace(stored)
	return stored == day || (len(stored) > len(day) && strings.HasPrefix(stored, day) && (stored[len(day)] == 'T' || stored[len(day)] == ' '))
}
