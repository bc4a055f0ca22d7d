package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/middleware"
)

type businessMessage struct {
	status  int
	message string
}

var businessMessages = map[string]businessMessage{
	"missing_client_data":   {http.StatusBadRequest, "Completá nombre y WhatsApp."},
	"invalid_zones":         {http.StatusBadRequest, "Elegí al menos una zona y solo una por grupo."},
	"service_not_found":     {http.StatusBadRequest, "Servicio o zonas inexistentes."},
	"invalid_date":          {http.StatusBadRequest, "Fecha inválida."},
	"invalid_date_range":    {http.StatusBadRequest, "Rango de fechas inválido."},
	"invalid_time":          {http.StatusBadRequest, "Hora inválida."},
	"invalid_time_range":    {http.StatusBadRequest, "La hora de fin debe ser posterior al inicio."},
	"invalid_status":        {http.StatusBadRequest, "Estado inválido."},
	"slot_unavailable":      {http.StatusConflict, "Ese horario ya no está disponible."},
	"appointment_not_found": {http.StatusNotFound, "Turno no encontrado."},
	"invalid_state":         {http.StatusConflict, "El turno no admite ese cambio de estado."},
	"not_completed":         {http.StatusConflict, "Solo se pueden finalizar turnos realizados."},
}

// writeUseCaseError maps business codes to their HTTP answer. Anything else
// is logged and reported as internal with fallbackCode.
func writeUseCaseError(c *gin.Context, err error, fallbackCode string) {
	if code, ok := httperr.BusinessCode(err); ok {
		if m, ok := businessMessages[code]; ok {
			httperr.Write(c, m.status, code, m.message)
			return
		}
		httperr.BadRequest(c, code, "Solicitud inválida.")
		return
	}

	if httperr.IsUniqueViolation(err) {
		httperr.Conflict(c, "duplicate", "El registro ya existe.")
		return
	}

	middleware.Logger(c).Error("request failed", zap.String("code", fallbackCode), zap.Error(err))
	httperr.Internal(c, fallbackCode, "Error interno.")
}

func writeDraftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrDraftNotFound):
		httperr.NotFound(c, "draft_not_found", "La reserva expiró. Empezá de nuevo.")
	case errors.Is(err, booking.ErrWrongStep):
		httperr.Conflict(c, "wrong_step", "Ese paso no corresponde ahora.")
	case errors.Is(err, booking.ErrNoService):
		httperr.BadRequest(c, "service_not_found", "Servicio o zonas inexistentes.")
	case errors.Is(err, catalog.ErrNoZones), errors.Is(err, catalog.ErrExclusiveZones):
		httperr.BadRequest(c, "invalid_zones", "Elegí al menos una zona y solo una por grupo.")
	case errors.Is(err, booking.ErrPastDate):
		httperr.BadRequest(c, "past_date", "La fecha ya pasó.")
	case errors.Is(err, booking.ErrSlotUnavailable):
		httperr.Conflict(c, "slot_unavailable", "Ese horario ya no está disponible.")
	case errors.Is(err, booking.ErrMissingClientData):
		httperr.BadRequest(c, "missing_client_data", "Completá nombre y WhatsApp.")
	default:
		writeUseCaseError(c, err, "booking_failed")
	}
}
