package catalog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Publisher pushes the reference sheet to object storage so the
// offline web client can cache it.
type Publisher interface {
	PutJSON(ctx context.Context, key string, v interface{}) (string, error)
}

type Handler struct {
	catalog   *Catalog
	publisher Publisher
}

func NewHandler(catalog *Catalog, publisher Publisher) *Handler {
	return &Handler{catalog: catalog, publisher: publisher}
}

// GET /reference
func (h *Handler) GetReference(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rows": h.catalog.ReferenceSheet(),
	})
}

// POST /admin/reference/publish
func (h *Handler) PublishReference(c *gin.Context) {
	url, err := h.publisher.PutJSON(
		c.Request.Context(),
		"reference/portion-charts.json",
		gin.H{"rows": h.catalog.ReferenceSheet()},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "published",
		"url":    url,
	})
}
