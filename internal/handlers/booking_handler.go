package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/estetica-scheduler/internal/middleware"
	"github.com/BruksfildServices01/estetica-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler drives the step-by-step booking of the public site. Every
// call loads the draft, applies one transition and saves the result.
type BookingHandler struct {
	store        booking.Store
	quote        *appointment.Quote
	availability *appointment.GetAvailability
	create       *appointment.CreateBooking
}

func NewBookingHandler(
	store booking.Store,
	quote *appointment.Quote,
	availability *appointment.GetAvailability,
	create *appointment.CreateBooking,
) *BookingHandler {
	return &BookingHandler{
		store:        store,
		quote:        quote,
		availability: availability,
		create:       create,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingServiceRequest struct {
	ServiceType string   `json:"tipo" binding:"required"`
	Zones       []string `json:"zonas" binding:"required,min=1"`
}

type BookingDateRequest struct {
	Date string `json:"fecha" binding:"required"`
}

type BookingTimeRequest struct {
	Time string `json:"hora" binding:"required"`
}

type BookingClientRequest struct {
	ClientName string `json:"nombre" binding:"required"`
	WhatsApp   string `json:"whatsapp" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	Notes      string `json:"notas"`
}

// ======================================================
// START / GET
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	d := booking.New(uuid.NewString())
	if err := h.store.Save(c.Request.Context(), d); err != nil {
		writeDraftError(c, err)
		return
	}
	httpresp.Created(c, d)
}

func (h *BookingHandler) Get(c *gin.Context) {
	d, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, d)
}

// ======================================================
// STEPS
// ======================================================

func (h *BookingHandler) ChooseService(c *gin.Context) {
	var req BookingServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	d, ok := h.load(c)
	if !ok {
		return
	}

	q, err := h.quote.Execute(c.Request.Context(), req.ServiceType, req.Zones)
	if err != nil {
		writeUseCaseError(c, err, "quote_failed")
		return
	}

	next, err := d.ChooseService(q.ServiceType, q.Zones, q.DurationMinutes, q.Price)
	h.respond(c, next, err)
}

func (h *BookingHandler) ChooseDate(c *gin.Context) {
	var req BookingDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	d, ok := h.load(c)
	if !ok {
		return
	}

	date, err := parseSalonDate(h.availability.Location(), req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	next, err := d.ChooseDate(date, h.availability.Now())
	h.respond(c, next, err)
}

// Slots lists the open start times for the draft's date and duration.
func (h *BookingHandler) Slots(c *gin.Context) {
	d, ok := h.load(c)
	if !ok {
		return
	}

	slots, ok := h.slotsFor(c, d)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fecha":    d.Date,
		"duracion": d.DurationMinutes,
		"slots":    slots,
	})
}

func (h *BookingHandler) ChooseTime(c *gin.Context) {
	var req BookingTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	d, ok := h.load(c)
	if !ok {
		return
	}

	slots, ok := h.slotsFor(c, d)
	if !ok {
		return
	}

	next, err := d.ChooseTime(req.Time, slots)
	h.respond(c, next, err)
}

// ClientDetails stores the contact data and books the appointment. A slot
// taken meanwhile sends the draft back to pick_time.
func (h *BookingHandler) ClientDetails(c *gin.Context) {
	var req BookingClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	d, ok := h.load(c)
	if !ok {
		return
	}

	withClient, err := d.WithClientDetails(req.ClientName, req.WhatsApp, req.Email, req.Notes)
	if err != nil {
		writeDraftError(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateBookingInput{
		ServiceType: withClient.ServiceType,
		Zones:       withClient.Zones,
		Date:        withClient.Date,
		Time:        withClient.Slot,
		ClientName:  withClient.ClientName,
		WhatsApp:    withClient.WhatsApp,
		Email:       withClient.Email,
		Notes:       withClient.Notes,
	})
	if err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			back := withClient.Back()
			back.Slot = ""
			if err := h.store.Save(c.Request.Context(), back); err != nil {
				middleware.Logger(c).Warn("failed to rewind draft",
					zap.String("draft_id", back.ID), zap.Error(err))
			}
		}
		writeUseCaseError(c, err, "failed_to_create_appointment")
		return
	}

	confirmed, err := withClient.Confirm(ap.ID)
	if err != nil {
		writeDraftError(c, err)
		return
	}
	if err := h.store.Save(c.Request.Context(), confirmed); err != nil {
		writeDraftError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"draft":        confirmed,
		"turno":        ap,
		"recordatorio": booking.ReminderNotice,
	})
}

func (h *BookingHandler) Back(c *gin.Context) {
	d, ok := h.load(c)
	if !ok {
		return
	}
	h.respond(c, d.Back(), nil)
}

// ======================================================
// HELPERS
// ======================================================

func (h *BookingHandler) load(c *gin.Context) (booking.Draft, bool) {
	d, err := h.store.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDraftError(c, err)
		return booking.Draft{}, false
	}
	return d, true
}

func (h *BookingHandler) respond(c *gin.Context, next booking.Draft, err error) {
	if err != nil {
		writeDraftError(c, err)
		return
	}
	if err := h.store.Save(c.Request.Context(), next); err != nil {
		writeDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, next)
}

func (h *BookingHandler) slotsFor(c *gin.Context, d booking.Draft) ([]string, bool) {
	if d.Date == "" || d.DurationMinutes <= 0 {
		writeDraftError(c, booking.ErrWrongStep)
		return nil, false
	}

	date, err := parseSalonDate(h.availability.Location(), d.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return nil, false
	}

	slots, err := h.availability.Execute(c.Request.Context(), date, d.DurationMinutes)
	if err != nil {
		writeUseCaseError(c, err, "availability_failed")
		return nil, false
	}
	return slots, true
}
