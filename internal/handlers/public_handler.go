package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/estetica-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo         domain.Repository
	quote        *appointment.Quote
	availability *appointment.GetAvailability
	create       *appointment.CreateBooking
}

func NewPublicHandler(
	repo domain.Repository,
	quote *appointment.Quote,
	availability *appointment.GetAvailability,
	create *appointment.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		quote:        quote,
		availability: availability,
		create:       create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ServiceType string   `json:"tipo" binding:"required"`
	Zones       []string `json:"zonas" binding:"required,min=1"`
	Date        string   `json:"fecha" binding:"required"` // YYYY-MM-DD
	Time        string   `json:"hora" binding:"required"`  // HH:MM
	ClientName  string   `json:"nombre" binding:"required"`
	WhatsApp    string   `json:"whatsapp" binding:"required"`
	Email       string   `json:"email" binding:"omitempty,email"`
	Notes       string   `json:"notas"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	items, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		writeUseCaseError(c, err, "failed_to_list_services")
		return
	}

	entries := appointment.ToEntries(items)
	types := catalog.ServiceTypes(entries)

	zones := make(map[string][]string, len(types))
	for _, t := range types {
		zones[t] = catalog.ZonesFor(entries, t)
	}

	c.JSON(http.StatusOK, gin.H{
		"tipos":     types,
		"zonas":     zones,
		"grupos":    catalog.ExclusiveGroups,
		"servicios": items,
	})
}

////////////////////////////////////////////////////////
// QUOTE
////////////////////////////////////////////////////////

func (h *PublicHandler) Quote(c *gin.Context) {
	serviceType := c.Query("type")
	zones := splitList(c.Query("zones"))

	if serviceType == "" || len(zones) == 0 {
		httperr.BadRequest(c, "missing_params", "Tipo y zonas obligatorios.")
		return
	}

	q, err := h.quote.Execute(c.Request.Context(), serviceType, zones)
	if err != nil {
		writeUseCaseError(c, err, "quote_failed")
		return
	}

	c.JSON(http.StatusOK, q)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

// Availability takes either an explicit duration or a type+zones pair to
// quote it from.
func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Fecha obligatoria.")
		return
	}

	date, err := parseSalonDate(h.availability.Location(), dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	duration, ok := h.requestedDuration(c)
	if !ok {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), date, duration)
	if err != nil {
		writeUseCaseError(c, err, "availability_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fecha":    dateStr,
		"duracion": duration,
		"slots":    slots,
	})
}

func (h *PublicHandler) requestedDuration(c *gin.Context) (int, bool) {
	if s := c.Query("duration"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			httperr.BadRequest(c, "invalid_duration", "Duración inválida.")
			return 0, false
		}
		return n, true
	}

	serviceType := c.Query("type")
	zones := splitList(c.Query("zones"))
	if serviceType == "" || len(zones) == 0 {
		httperr.BadRequest(c, "missing_params", "Duración o servicio obligatorios.")
		return 0, false
	}

	q, err := h.quote.Execute(c.Request.Context(), serviceType, zones)
	if err != nil {
		writeUseCaseError(c, err, "quote_failed")
		return 0, false
	}
	return q.DurationMinutes, true
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		appointment.CreateBookingInput{
			ServiceType: req.ServiceType,
			Zones:       req.Zones,
			Date:        req.Date,
			Time:        req.Time,
			ClientName:  req.ClientName,
			WhatsApp:    req.WhatsApp,
			Email:       req.Email,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		writeUseCaseError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, gin.H{
		"turno":        ap,
		"precio_label": catalog.FormatARS(ap.TotalPrice),
		"recordatorio": booking.ReminderNotice,
	})
}
