package appointment

import (
	"fmt"
	"sort"

	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

// ScheduleFromWorkingHours builds a weekly schedule from stored rows. No rows
// means the built-in default table.
func ScheduleFromWorkingHours(rows []models.WorkingHours) (availability.WeeklySchedule, error) {
	if len(rows) == 0 {
		return availability.DefaultSchedule(), nil
	}

	sorted := append([]models.WorkingHours(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Weekday != sorted[j].Weekday {
			return sorted[i].Weekday < sorted[j].Weekday
		}
		return sorted[i].Position < sorted[j].Position
	})

	schedule := availability.WeeklySchedule{}
	for _, wh := range sorted {
		start, err := availability.ParseTimeOfDay(wh.StartTime)
		if err != nil {
			return nil, fmt.Errorf("working hours weekday %d: %w", wh.Weekday, err)
		}
		end, err := availability.ParseTimeOfDay(wh.EndTime)
		if err != nil {
			return nil, fmt.Errorf("working hours weekday %d: %w", wh.Weekday, err)
		}
		schedule[wh.Weekday] = append(schedule[wh.Weekday], availability.TimeWindow{Start: start, End: end})
	}

	return schedule, nil
}

// CalendarFromWorkingHours validates rows into a calendar.
func CalendarFromWorkingHours(rows []models.WorkingHours) (*availability.Calendar, error) {
	schedule, err := ScheduleFromWorkingHours(rows)
	if err != nil {
		return nil, err
	}
	return availability.NewCalendar(schedule)
}
