package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/praisepoint/site-api/internal/system/utils"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Site      SiteConfig      `mapstructure:"site"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	HubSpot   HubSpotConfig   `mapstructure:"hubspot"`
	Mail      MailConfig      `mapstructure:"mail"`
	Consent   ConsentConfig   `mapstructure:"consent"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Hostname     string        `mapstructure:"hostname"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// SiteConfig holds the public site identity used for canonical URLs,
// metadata and structured data
type SiteConfig struct {
	URL           string             `mapstructure:"url"`
	Name          string             `mapstructure:"name"`
	DefaultImage  string             `mapstructure:"default_image"`
	TwitterHandle string             `mapstructure:"twitter_handle"`
	Verification  VerificationConfig `mapstructure:"verification"`
	ContactEmail  string             `mapstructure:"contact_email"`
	FoundingYear  int                `mapstructure:"founding_year"`
	LinkedInURL   string             `mapstructure:"linkedin_url"`
	Development   bool               `mapstructure:"development"`
}

// VerificationConfig holds search-engine site verification tokens.
// An empty token means the corresponding meta tag is not emitted.
type VerificationConfig struct {
	Google string `mapstructure:"google"`
	Yandex string `mapstructure:"yandex"`
	Yahoo  string `mapstructure:"yahoo"`
}

// AnalyticsConfig holds analytics vendor identifiers. Empty values
// disable the corresponding script entirely.
type AnalyticsConfig struct {
	GAMeasurementID string `mapstructure:"ga_measurement_id"`
	ClarityID       string `mapstructure:"clarity_id"`
}

// HubSpotConfig holds the CRM form-ingestion endpoint configuration
type HubSpotConfig struct {
	PortalID string        `mapstructure:"portal_id"`
	FormID   string        `mapstructure:"form_id"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// MailConfig holds the transactional mail relay configuration
type MailConfig struct {
	ResendAPIKey string        `mapstructure:"resend_api_key"`
	FromAddress  string        `mapstructure:"from_address"`
	Recipients   []string      `mapstructure:"recipients"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// ConsentConfig holds the consent policy configuration
type ConsentConfig struct {
	PolicyVersion string `mapstructure:"policy_version"`
	CookieName    string `mapstructure:"cookie_name"`
	CookieMaxAge  int    `mapstructure:"cookie_max_age"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("deployment")
		v.SetConfigType("yaml")
		v.AddConfigPath("./repository/conf")
		v.AddConfigPath("./cmd/server/repository/conf")
		v.AddConfigPath(".")
	}

	// Read from environment variables: SITE_SERVER_PORT, SITE_SITE_URL, ...
	v.AutomaticEnv()
	v.SetEnvPrefix("SITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Integration keys deliberately carry no default: absence disables the
	// integration. AutomaticEnv alone does not surface unknown keys to
	// Unmarshal, so they must be bound explicitly to stay settable from the
	// environment without a config file.
	for _, key := range []string{
		"site.verification.google",
		"site.verification.yandex",
		"site.verification.yahoo",
		"site.linkedin_url",
		"site.development",
		"analytics.ga_measurement_id",
		"analytics.clarity_id",
		"hubspot.portal_id",
		"hubspot.form_id",
		"mail.resend_api_key",
		"mail.from_address",
		"mail.recipients",
		"cors.allow_credentials",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment key %s: %w", key, err)
		}
	}

	// The config file is optional; everything can come from the environment
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.hostname", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)

	v.SetDefault("site.url", "https://www.praisepoint.com")
	v.SetDefault("site.name", "PraisePoint")
	v.SetDefault("site.default_image", "/images/og-default.png")
	v.SetDefault("site.twitter_handle", "@praisepointhq")
	v.SetDefault("site.contact_email", "hello@praisepoint.com")
	v.SetDefault("site.founding_year", 2021)

	v.SetDefault("hubspot.base_url", "https://api.hsforms.com")
	v.SetDefault("hubspot.timeout", 10*time.Second)

	v.SetDefault("mail.timeout", 10*time.Second)

	v.SetDefault("consent.policy_version", "2024-06")
	v.SetDefault("consent.cookie_name", "pp_consent")
	v.SetDefault("consent.cookie_max_age", 180*24*60*60)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("cors.enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "X-Correlation-ID"})
	v.SetDefault("cors.max_age", 3600)
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Site.URL == "" {
		return fmt.Errorf("site URL is required")
	}
	if !utils.IsValidURI(config.Site.URL) {
		return fmt.Errorf("site URL must be absolute: %q", config.Site.URL)
	}

	if config.Site.Name == "" {
		return fmt.Errorf("site name is required")
	}

	if config.Consent.PolicyVersion == "" {
		return fmt.Errorf("consent policy version is required")
	}

	// Partial HubSpot configuration is a deployment mistake rather than a
	// disabled integration
	if (config.HubSpot.PortalID == "") != (config.HubSpot.FormID == "") {
		return fmt.Errorf("hubspot portal ID and form ID must be configured together")
	}

	if config.Mail.ResendAPIKey != "" && len(config.Mail.Recipients) == 0 {
		return fmt.Errorf("mail recipients are required when the mail relay is configured")
	}

	return nil
}

// GetServerAddress returns the server address in host:port format
func (s *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", s.Hostname, s.Port)
}

// Origin returns the site URL without a trailing slash
func (s *SiteConfig) Origin() string {
	return strings.TrimRight(s.URL, "/")
}

// IsConfigured reports whether the CRM form-ingestion endpoint is usable
func (h *HubSpotConfig) IsConfigured() bool {
	return h.PortalID != "" && h.FormID != ""
}

// SubmitURL returns the full form-submission endpoint URL
func (h *HubSpotConfig) SubmitURL() string {
	return fmt.Sprintf("%s/submissions/v3/integration/submit/%s/%s",
		strings.TrimRight(h.BaseURL, "/"), h.PortalID, h.FormID)
}

// IsConfigured reports whether the transactional mail relay is usable
func (m *MailConfig) IsConfigured() bool {
	return m.ResendAPIKey != "" && m.FromAddress != "" && len(m.Recipients) > 0
}
