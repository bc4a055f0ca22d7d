package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

// CalendarUser receives the schedule after it is saved.
type CalendarUser interface {
	UseCalendar(cal *availability.Calendar)
	Calendar() *availability.Calendar
}

type WorkingHoursHandler struct {
	db       *gorm.DB
	calendar CalendarUser
}

func NewWorkingHoursHandler(db *gorm.DB, calendar CalendarUser) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, calendar: calendar}
}

type WorkingWindowConfig struct {
	Weekday   int    `json:"weekday" binding:"required,min=1,max=7"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// An empty list restores the built-in schedule.
type WorkingHoursUpdateRequest struct {
	Windows []WorkingWindowConfig `json:"windows" binding:"dive"`
}

// Get returns the schedule in effect, weekday → windows.
func (h *WorkingHoursHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schedule": h.calendar.Calendar().Schedule()})
}

// Update replaces every stored window and applies the result right away.
// A schedule with overlapping or inverted windows is rejected untouched.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	rows := make([]models.WorkingHours, 0, len(req.Windows))
	position := map[int]int{}
	for _, w := range req.Windows {
		start, err1 := availability.ParseTimeOfDay(w.StartTime)
		end, err2 := availability.ParseTimeOfDay(w.EndTime)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time"})
			return
		}

		rows = append(rows, models.WorkingHours{
			Weekday:   w.Weekday,
			Position:  position[w.Weekday],
			StartTime: start.String(),
			EndTime:   end.String(),
		})
		position[w.Weekday]++
	}

	cal, err := domain.CalendarFromWorkingHours(rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_schedule",
			"details": err.Error(),
		})
		return
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			return tx.Create(&rows).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
		return
	}

	h.calendar.UseCalendar(cal)

	c.JSON(http.StatusOK, gin.H{"schedule": cal.Schedule()})
}
