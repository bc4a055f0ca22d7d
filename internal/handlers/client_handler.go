package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/estetica-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
	"github.com/BruksfildServices01/estetica-scheduler/internal/validators"
)

type ClientHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewClientHandler(db *gorm.DB, repo domain.Repository) *ClientHandler {
	return &ClientHandler{db: db, repo: repo}
}

type UpsertClientRequest struct {
	ID       string `json:"cliente_id"`
	Name     string `json:"nombre" binding:"required"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email" binding:"omitempty,email"`
	Notes    string `json:"notas"`
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR whatsapp LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("name ASC").
		Find(&clients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_clients",
		})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// ======================================================
// UPSERT CLIENT
// ======================================================

// Upsert creates a client when cliente_id is blank and overwrites it
// otherwise.
func (h *ClientHandler) Upsert(c *gin.Context) {
	var req UpsertClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	client := models.Client{
		ID:       strings.TrimSpace(req.ID),
		Name:     strings.TrimSpace(req.Name),
		WhatsApp: validators.NormalizePhone(req.WhatsApp),
		Email:    strings.TrimSpace(req.Email),
		Notes:    strings.TrimSpace(req.Notes),
	}

	if err := h.repo.UpsertClient(c.Request.Context(), &client); err != nil {
		writeUseCaseError(c, err, "failed_to_save_client")
		return
	}

	c.JSON(http.StatusOK, client)
}
