package recipe

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ----------------------------------------------------------------------
// Recipe HTTP handlers
// ----------------------------------------------------------------------

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListPublished handles GET /recipes
func (h *Handler) ListPublished(c *gin.Context) {
	recipes, err := h.service.ListByStatus(c.Request.Context(), StatusPublished)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetBySlug handles GET /recipes/:slug?units=metric
func (h *Handler) GetBySlug(c *gin.Context) {
	rec, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipe"})
		return
	}

	view := *rec
	view.IngredientGroups = DisplayGroups(rec.IngredientGroups, c.Query("units") == "metric")
	c.JSON(http.StatusOK, &view)
}

// ListByStatus handles GET /admin/recipes?status=draft
func (h *Handler) ListByStatus(c *gin.Context) {
	status := Status(c.DefaultQuery("status", string(StatusDraft)))
	switch status {
	case StatusDraft, StatusPublished, StatusArchived:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	recipes, err := h.service.ListByStatus(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// UpdateStatus handles PATCH /admin/recipes/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
