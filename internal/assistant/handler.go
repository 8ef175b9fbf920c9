package assistant

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/praisepoint/site-api/internal/locale"
	"github.com/praisepoint/site-api/internal/system/error/serviceerror"
	"github.com/praisepoint/site-api/internal/system/utils"
)

// Request is the assistant endpoint payload
type Request struct {
	Prompt string `json:"prompt"`
	Locale string `json:"locale"`
}

type Handler struct{}

// NewHandler creates the assistant handler
func NewHandler() *Handler {
	return &Handler{}
}

// Ask handles POST /api/assistant
func (h *Handler) Ask(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, "Invalid request body"))
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		utils.SendError(c, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, "Prompt is required"))
		return
	}

	l, _ := locale.Parse(req.Locale)
	c.JSON(http.StatusOK, BuildReply(req.Prompt, l))
}
