package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praisepoint/site-api/internal/locale"
	"github.com/praisepoint/site-api/internal/system/error/serviceerror"
	"github.com/praisepoint/site-api/internal/system/utils"
)

type Handler struct {
	store *Store
}

// NewHandler creates the content handler
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// GetContent handles GET /api/content/:kind
func (h *Handler) GetContent(c *gin.Context) {
	l, _ := locale.Parse(c.Query("locale"))

	switch c.Param("kind") {
	case "brands":
		c.JSON(http.StatusOK, gin.H{"brands": h.store.Brands()})
	case "testimonials":
		c.JSON(http.StatusOK, gin.H{"testimonials": h.store.Testimonials(l)})
	case "team":
		c.JSON(http.StatusOK, gin.H{"team": h.store.Team(l)})
	case "pricing":
		c.JSON(http.StatusOK, gin.H{"pricing": h.store.Pricing(l)})
	default:
		utils.SendError(c, serviceerror.CustomServiceError(serviceerror.ResourceNotFoundError, "Unknown content kind"))
	}
}
