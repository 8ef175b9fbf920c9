package consent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/praisepoint/site-api/internal/consent/model"
	"github.com/praisepoint/site-api/internal/system/config"
)

func testConsentConfig() *config.ConsentConfig {
	return &config.ConsentConfig{
		PolicyVersion: "2024-06",
		CookieName:    "pp_consent",
		CookieMaxAge:  180 * 24 * 60 * 60,
	}
}

func TestDefault_AllOptionalCategoriesFalse(t *testing.T) {
	svc := NewService(testConsentConfig())

	state := svc.Default()
	assert.True(t, state.Necessary)
	assert.False(t, state.Analytics)
	assert.False(t, state.Marketing)
	assert.False(t, state.Functional)
	assert.Equal(t, "2024-06", state.Version)
	assert.Greater(t, state.Timestamp, int64(0))
}

func TestUpdate_ThenHasConsentFor(t *testing.T) {
	svc := NewService(testConsentConfig())

	state := svc.Update(model.UpdateRequest{Analytics: true})

	assert.True(t, svc.HasConsentFor(state, model.CategoryAnalytics))
	assert.False(t, svc.HasConsentFor(state, model.CategoryMarketing))
	assert.True(t, svc.HasConsentFor(state, model.CategoryNecessary), "necessary is always granted")
}

// A persisted value survives a simulated reload
func TestEncodeDecode_RoundTrip(t *testing.T) {
	svc := NewService(testConsentConfig())

	original := svc.Update(model.UpdateRequest{Analytics: true, Functional: true})
	restored := svc.Decode(svc.Encode(original))

	assert.Equal(t, original, restored)
}

func TestDecode_GarbageYieldsDefault(t *testing.T) {
	svc := NewService(testConsentConfig())

	for _, value := range []string{"", "not-base64!!", "bm90IGpzb24"} {
		state := svc.Decode(value)
		assert.False(t, state.Analytics)
		assert.False(t, state.Marketing)
		assert.True(t, state.Necessary)
	}
}

func TestDecode_VersionMismatchResets(t *testing.T) {
	oldSvc := NewService(&config.ConsentConfig{PolicyVersion: "2023-01"})
	stored := oldSvc.Encode(oldSvc.Update(model.UpdateRequest{Analytics: true, Marketing: true}))

	// The code's expected version moved on; the stored state is invalidated
	svc := NewService(testConsentConfig())
	state := svc.Decode(stored)

	assert.False(t, state.Analytics)
	assert.False(t, state.Marketing)
	assert.Equal(t, "2024-06", state.Version)
}

func TestGatedScripts(t *testing.T) {
	cfg := &config.Config{
		Analytics: config.AnalyticsConfig{GAMeasurementID: "G-TEST123", ClarityID: "clr123"},
		HubSpot:   config.HubSpotConfig{PortalID: "12345", FormID: "form-1"},
	}
	svc := NewService(testConsentConfig())

	// No consent: nothing loads
	scripts := GatedScripts(svc.Default(), cfg)
	assert.Empty(t, scripts)

	// Analytics only: GA4 and Clarity load, HubSpot does not
	scripts = GatedScripts(svc.Update(model.UpdateRequest{Analytics: true}), cfg)
	names := scriptNames(scripts)
	assert.ElementsMatch(t, []string{"ga4", "clarity"}, names)

	// Marketing only: just HubSpot
	scripts = GatedScripts(svc.Update(model.UpdateRequest{Marketing: true}), cfg)
	assert.ElementsMatch(t, []string{"hubspot"}, scriptNames(scripts))
}

func TestGatedScripts_UnconfiguredVendorsAreSkipped(t *testing.T) {
	cfg := &config.Config{
		Analytics: config.AnalyticsConfig{GAMeasurementID: "G-TEST123"},
	}
	svc := NewService(testConsentConfig())

	scripts := GatedScripts(svc.Update(model.UpdateRequest{Analytics: true, Marketing: true}), cfg)
	assert.ElementsMatch(t, []string{"ga4"}, scriptNames(scripts),
		"consent alone must not load scripts whose vendor ID is absent")
}

func TestConsentMode(t *testing.T) {
	svc := NewService(testConsentConfig())

	mode := ConsentMode(svc.Update(model.UpdateRequest{Analytics: true}))
	assert.Equal(t, "granted", mode["analytics_storage"])
	assert.Equal(t, "denied", mode["ad_storage"])
	assert.Equal(t, "denied", mode["ad_personalization"])
	assert.Equal(t, "granted", mode["security_storage"])

	mode = ConsentMode(svc.Default())
	assert.Equal(t, "denied", mode["analytics_storage"])
}

func scriptNames(scripts []Script) []string {
	names := make([]string, 0, len(scripts))
	for _, s := range scripts {
		names = append(names, s.Name)
	}
	return names
}
