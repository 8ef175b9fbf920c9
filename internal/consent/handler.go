package consent

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praisepoint/site-api/internal/consent/model"
	"github.com/praisepoint/site-api/internal/system/config"
	"github.com/praisepoint/site-api/internal/system/error/serviceerror"
	"github.com/praisepoint/site-api/internal/system/utils"
)

type Handler struct {
	service ConsentService
	cfg     *config.Config
}

// NewHandler creates the consent handler
func NewHandler(service ConsentService, cfg *config.Config) *Handler {
	return &Handler{service: service, cfg: cfg}
}

// GetConsent handles GET /api/consent
func (h *Handler) GetConsent(c *gin.Context) {
	c.JSON(http.StatusOK, h.stateFromCookie(c))
}

// UpdateConsent handles POST /api/consent
func (h *Handler) UpdateConsent(c *gin.Context) {
	var req model.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, "Invalid request body"))
		return
	}

	state := h.service.Update(req)
	h.writeCookie(c, state)
	c.JSON(http.StatusOK, state)
}

// GetScripts handles GET /api/consent/scripts
func (h *Handler) GetScripts(c *gin.Context) {
	state := h.stateFromCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"scripts":     GatedScripts(state, h.cfg),
		"consentMode": ConsentMode(state),
	})
}

func (h *Handler) stateFromCookie(c *gin.Context) model.State {
	cookieValue, err := c.Cookie(h.cfg.Consent.CookieName)
	if err != nil {
		return h.service.Default()
	}
	return h.service.Decode(cookieValue)
}

func (h *Handler) writeCookie(c *gin.Context, state model.State) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cfg.Consent.CookieName,
		h.service.Encode(state),
		h.cfg.Consent.CookieMaxAge,
		"/",
		"",
		!h.cfg.Site.Development,
		false,
	)
}
