package ingest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"easytocook/internal/llm"
	"easytocook/internal/recipe"
	"easytocook/internal/scrape"
)

// ----------------------------------------------------------------------
// Ingestion HTTP handlers (operator-facing)
// ----------------------------------------------------------------------

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// operatorID comes from the auth middleware.
func operatorID(c *gin.Context) string {
	return c.GetString("userID")
}

// ImportURL handles POST /ingest/url
func (h *Handler) ImportURL(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	draft, err := h.service.ImportFromURL(c.Request.Context(), operatorID(c), req.URL)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// PasteText handles POST /ingest/text
func (h *Handler) PasteText(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	draft, err := h.service.PasteText(c.Request.Context(), operatorID(c), req.Text)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ImportCaption handles POST /ingest/caption
func (h *Handler) ImportCaption(c *gin.Context) {
	var req struct {
		URL     string `json:"url"`
		Caption string `json:"caption" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caption is required"})
		return
	}

	draft, err := h.service.ImportCaption(c.Request.Context(), operatorID(c), req.URL, req.Caption)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Preview handles GET /ingest/pending
func (h *Handler) Preview(c *gin.Context) {
	draft, err := h.service.Preview(operatorID(c))
	if errors.Is(err, ErrNoPendingDraft) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Confirm handles POST /ingest/confirm
func (h *Handler) Confirm(c *gin.Context) {
	rec, err := h.service.Confirm(c.Request.Context(), operatorID(c))
	if errors.Is(err, ErrNoPendingDraft) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "recipe saved as draft",
		"id":      rec.ID,
		"slug":    rec.Slug,
	})
}

// Cancel handles POST /ingest/cancel
func (h *Handler) Cancel(c *gin.Context) {
	h.service.Cancel(operatorID(c))
	c.JSON(http.StatusOK, gin.H{"message": "import cancelled"})
}

// respondPipelineError maps pipeline failures to statuses the operator UI
// can act on: upstream fetch problems are 502, a garbled model answer is
// 502, everything else is 500.
func respondPipelineError(c *gin.Context, err error) {
	var fetchErr *scrape.FetchError
	switch {
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": fetchErr.Error()})
	case errors.Is(err, scrape.ErrCaptionUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, llm.ErrMalformedRewrite):
		c.JSON(http.StatusBadGateway, gin.H{"error": "the rewrite came back unusable, try again"})
	case errors.Is(err, recipe.ErrSlugExhausted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
