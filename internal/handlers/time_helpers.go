package handlers

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/estetica-scheduler/internal/timezone"
)

// parseSalonDate reads "YYYY-MM-DD" as midnight in the salon's zone.
func parseSalonDate(loc *time.Location, s string) (time.Time, error) {
	return timezone.ParseDate(strings.TrimSpace(s), loc)
}

// parseDateRange defaults a missing from to today and a missing to to a
// week after from.
func parseDateRange(now time.Time, fromStr, toStr string) (time.Time, time.Time, error) {
	y, m, d := now.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	if fromStr != "" {
		f, err := parseSalonDate(now.Location(), fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = f
	}

	to := from.AddDate(0, 0, 7)
	if toStr != "" {
		t, err := parseSalonDate(now.Location(), toStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = t
	}

	return from, to, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
