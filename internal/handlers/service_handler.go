package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

// ServiceHandler edits the price list.
type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceItemRequest struct {
	Type        string `json:"tipo" binding:"required"`
	Zone        string `json:"zona" binding:"required"`
	DurationMin int    `json:"duracion_min" binding:"min=0"`
	Price       int64  `json:"precio" binding:"min=0"`
}

type UpsertServicesRequest struct {
	Items []ServiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context())

	if t := strings.TrimSpace(c.Query("tipo")); t != "" {
		q = q.Where("type = ?", t)
	}

	var items []models.ServiceItem
	if err := q.Order("type ASC, zone ASC").Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	c.JSON(http.StatusOK, items)
}

// Upsert writes every row keyed by (tipo, zona): existing pairs get the new
// duration and price.
func (h *ServiceHandler) Upsert(c *gin.Context) {
	var req UpsertServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	items := make([]models.ServiceItem, 0, len(req.Items))
	seen := make(map[[2]string]int, len(req.Items))
	for _, it := range req.Items {
		item := models.ServiceItem{
			Type:        strings.TrimSpace(it.Type),
			Zone:        strings.TrimSpace(it.Zone),
			DurationMin: it.DurationMin,
			Price:       it.Price,
		}
		key := [2]string{item.Type, item.Zone}
		// last row for a pair wins; postgres rejects a batch touching one key twice
		if i, ok := seen[key]; ok {
			items[i] = item
			continue
		}
		seen[key] = len(items)
		items = append(items, item)
	}

	if err := h.db.WithContext(c.Request.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "type"}, {Name: "zone"}},
			DoUpdates: clause.AssignmentColumns([]string{"duration_min", "price", "updated_at"}),
		}).
		Create(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_save_services", "Error al guardar servicios.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": len(items)})
}
