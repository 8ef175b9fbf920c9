package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Hostname)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)

	assert.Equal(t, "https://www.praisepoint.com", cfg.Site.URL)
	assert.Equal(t, "PraisePoint", cfg.Site.Name)

	assert.Equal(t, "pp_consent", cfg.Consent.CookieName)
	assert.Equal(t, "2024-06", cfg.Consent.PolicyVersion)

	assert.False(t, cfg.HubSpot.IsConfigured())
	assert.False(t, cfg.Mail.IsConfigured())
	assert.True(t, cfg.CORS.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SITE_SERVER_PORT", "9090")
	t.Setenv("SITE_SITE_URL", "https://staging.praisepoint.com/")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://staging.praisepoint.com", cfg.Site.Origin())
}

// Integration keys carry no defaults; they must still be settable from
// the environment alone, with no config file present.
func TestLoad_IntegrationKeysFromEnvOnly(t *testing.T) {
	t.Setenv("SITE_HUBSPOT_PORTAL_ID", "12345")
	t.Setenv("SITE_HUBSPOT_FORM_ID", "form-1")
	t.Setenv("SITE_MAIL_RESEND_API_KEY", "re_test_key")
	t.Setenv("SITE_MAIL_FROM_ADDRESS", "noreply@praisepoint.com")
	t.Setenv("SITE_MAIL_RECIPIENTS", "sales@praisepoint.com,founders@praisepoint.com")
	t.Setenv("SITE_ANALYTICS_GA_MEASUREMENT_ID", "G-TEST123")
	t.Setenv("SITE_ANALYTICS_CLARITY_ID", "clr123")
	t.Setenv("SITE_SITE_VERIFICATION_GOOGLE", "google-token")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.HubSpot.IsConfigured())
	assert.Equal(t, "12345", cfg.HubSpot.PortalID)
	assert.Equal(t, "form-1", cfg.HubSpot.FormID)

	assert.True(t, cfg.Mail.IsConfigured())
	assert.Equal(t, "re_test_key", cfg.Mail.ResendAPIKey)
	assert.Equal(t, []string{"sales@praisepoint.com", "founders@praisepoint.com"}, cfg.Mail.Recipients)

	assert.Equal(t, "G-TEST123", cfg.Analytics.GAMeasurementID)
	assert.Equal(t, "clr123", cfg.Analytics.ClarityID)
	assert.Equal(t, "google-token", cfg.Site.Verification.Google)
}

func TestLoad_InvalidSiteURL(t *testing.T) {
	t.Setenv("SITE_SITE_URL", "not a url")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site URL must be absolute")
}

func TestLoad_PartialHubSpotConfigRejected(t *testing.T) {
	t.Setenv("SITE_HUBSPOT_PORTAL_ID", "12345")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configured together")
}

func TestLoad_MailKeyWithoutRecipientsRejected(t *testing.T) {
	t.Setenv("SITE_MAIL_RESEND_API_KEY", "re_test_key")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mail recipients")
}

func TestServerConfig_GetServerAddress(t *testing.T) {
	s := ServerConfig{Hostname: "127.0.0.1", Port: 8081}
	assert.Equal(t, "127.0.0.1:8081", s.GetServerAddress())
}

func TestHubSpotConfig_SubmitURL(t *testing.T) {
	h := HubSpotConfig{
		PortalID: "12345",
		FormID:   "abc-def",
		BaseURL:  "https://api.hsforms.com/",
	}
	assert.True(t, h.IsConfigured())
	assert.Equal(t,
		"https://api.hsforms.com/submissions/v3/integration/submit/12345/abc-def",
		h.SubmitURL())
}
