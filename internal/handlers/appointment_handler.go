package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/estetica-scheduler/internal/timezone"
	"github.com/BruksfildServices01/estetica-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	agenda   *appointment.ListAgenda
	update   *appointment.UpdateAppointment
	cancel   *appointment.CancelAppointment
	complete *appointment.CompleteAppointment
	archive  *appointment.ArchiveAppointment
	now      timezone.Clock
}

func NewAppointmentHandler(
	agenda *appointment.ListAgenda,
	update *appointment.UpdateAppointment,
	cancel *appointment.CancelAppointment,
	complete *appointment.CompleteAppointment,
	archive *appointment.ArchiveAppointment,
	now timezone.Clock,
) *AppointmentHandler {
	return &AppointmentHandler{
		agenda:   agenda,
		update:   update,
		cancel:   cancel,
		complete: complete,
		archive:  archive,
		now:      now,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAppointmentRequest struct {
	Date         *string `json:"fecha"`
	StartTime    *string `json:"inicio"`
	EndTime      *string `json:"fin"`
	Status       *string `json:"estado"`
	Notes        *string `json:"notas"`
	ReminderSent *bool   `json:"recordatorio_enviado"`
}

type ArchiveClientRequest struct {
	Name     string `json:"nombre"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type ArchiveAppointmentRequest struct {
	NewClient  *ArchiveClientRequest `json:"nuevo_cliente"`
	ExtraNotes string                `json:"notas"`
}

// ======================================================
// LIST (AGENDA)
// ======================================================

// List answers GET /appointments?from=&to=&estado=Confirmado,Reprogramado.
func (h *AppointmentHandler) List(c *gin.Context) {
	from, to, err := parseDateRange(h.now(), c.Query("from"), c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	var statuses []domain.Status
	for _, s := range splitList(c.Query("estado")) {
		st, err := domain.ParseStatus(s)
		if err != nil {
			writeUseCaseError(c, err, "invalid_status")
			return
		}
		statuses = append(statuses, st)
	}

	items, err := h.agenda.Execute(c.Request.Context(), from, to, statuses)
	if err != nil {
		writeUseCaseError(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), c.Param("id"), appointment.UpdateAppointmentInput{
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       req.Status,
		Notes:        req.Notes,
		ReminderSent: req.ReminderSent,
	})
	if err != nil {
		writeUseCaseError(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS CHANGES
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeUseCaseError(c, err, "failed_to_cancel_appointment")
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.complete.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeUseCaseError(c, err, "failed_to_complete_appointment")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// ARCHIVE
// ======================================================

func (h *AppointmentHandler) Archive(c *gin.Context) {
	var req ArchiveAppointmentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
			return
		}
	}

	in := appointment.ArchiveInput{
		AppointmentID: c.Param("id"),
		ExtraNotes:    req.ExtraNotes,
	}
	if req.NewClient != nil {
		in.NewClient = &appointment.NewClientInput{
			Name:     req.NewClient.Name,
			WhatsApp: req.NewClient.WhatsApp,
			Email:    req.NewClient.Email,
		}
	}

	ap, err := h.archive.Execute(c.Request.Context(), in)
	if err != nil {
		writeUseCaseError(c, err, "failed_to_archive_appointment")
		return
	}

	c.JSON(http.StatusOK, ap)
}
