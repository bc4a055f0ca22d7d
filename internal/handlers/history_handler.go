package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/estetica-scheduler/internal/history"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/estetica-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// HistoryHandler is read-only; entries are written by the appointment use
// cases. uploader may be nil when no bucket is configured.
type HistoryHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
}

func NewHistoryHandler(db *gorm.DB, uploader storage.Uploader) *HistoryHandler {
	return &HistoryHandler{db: db, uploader: uploader}
}

// List is the global history, newest first.
func (h *HistoryHandler) List(c *gin.Context) {
	event := c.Query("evento")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.WithContext(c.Request.Context()).Model(&models.HistoryEntry{})

	// --------------------------------------------------
	// Filtros opcionales
	// --------------------------------------------------

	if event != "" {
		q = q.Where("event = ?", event)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("date >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("date < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "history_count_failed", "Error al contar el historial.")
		return
	}

	var entries []models.HistoryEntry
	if err := q.
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {

		httperr.Internal(c, "history_list_failed", "Error al listar el historial.")
		return
	}

	httpresp.Page(c, entries, page, limit, total)
}

// ListByClient returns the client with their history, newest first.
func (h *HistoryHandler) ListByClient(c *gin.Context) {
	client, entries, ok := h.clientHistory(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cliente":   client,
		"historial": entries,
	})
}

// ======================================================
// CSV EXPORT
// ======================================================

// ExportClientCSV downloads the client's history. With ?upload=true the file
// is stored in the export bucket instead and its location returned.
func (h *HistoryHandler) ExportClientCSV(c *gin.Context) {
	client, entries, ok := h.clientHistory(c)
	if !ok {
		return
	}

	body, err := history.CSV(entries)
	if err != nil {
		writeUseCaseError(c, err, "history_export_failed")
		return
	}

	name := history.CSVFileName(client.ID)

	if c.Query("upload") == "true" {
		if h.uploader == nil {
			httperr.BadRequest(c, "export_storage_disabled", "No hay almacenamiento configurado.")
			return
		}

		key := "exports/" + time.Now().UTC().Format("20060102T150405") + "_" + name
		location, err := h.uploader.Upload(c.Request.Context(), key, "text/csv", body)
		if err != nil {
			writeUseCaseError(c, err, "history_upload_failed")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"location": location})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

func (h *HistoryHandler) clientHistory(c *gin.Context) (models.Client, []models.HistoryEntry, bool) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var client models.Client
	if err := h.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
			return client, nil, false
		}
		writeUseCaseError(c, err, "history_list_failed")
		return client, nil, false
	}

	var entries []models.HistoryEntry
	if err := h.db.WithContext(ctx).
		Where("client_id = ?", id).
		Order("date DESC").
		Find(&entries).Error; err != nil {

		writeUseCaseError(c, err, "history_list_failed")
		return client, nil, false
	}

	return client, entries, true
}
