package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praisepoint/site-api/internal/contact/model"
)

type Handler struct {
	service ContactService
}

// NewHandler creates the contact handler
func NewHandler(service ContactService) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /api/contact
func (h *Handler) Submit(c *gin.Context) {
	var submission model.ContactSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, model.SubmitResult{
			OK:    false,
			Error: "invalid_request_body",
		})
		return
	}

	if errors := h.service.Submit(c.Request.Context(), &submission); len(errors) > 0 {
		c.JSON(http.StatusBadRequest, model.SubmitResult{
			OK:     false,
			Error:  "validation_failed",
			Errors: errors,
		})
		return
	}

	c.JSON(http.StatusOK, model.SubmitResult{OK: true})
}

// Preflight handles OPTIONS /api/contact for CORS preflight requests
// arriving without an Origin header
func (h *Handler) Preflight(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}
