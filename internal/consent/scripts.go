package consent

import (
	"github.com/praisepoint/site-api/internal/consent/model"
	"github.com/praisepoint/site-api/internal/system/config"
)

// Script describes one third-party script whose loading is gated by a
// consent category
type Script struct {
	Name     string         `json:"name"`
	Category model.Category `json:"category"`
	Src      string         `json:"src,omitempty"`
	VendorID string         `json:"vendorId"`
}

// scriptTable is the declarative category -> loader table. Each entry's
// resolve function returns the vendor ID from config; an empty ID leaves
// the script out entirely.
var scriptTable = []struct {
	name     string
	category model.Category
	src      string
	resolve  func(*config.Config) string
}{
	{
		name:     "ga4",
		category: model.CategoryAnalytics,
		src:      "https://www.googletagmanager.com/gtag/js",
		resolve:  func(c *config.Config) string { return c.Analytics.GAMeasurementID },
	},
	{
		name:     "clarity",
		category: model.CategoryAnalytics,
		src:      "https://www.clarity.ms/tag",
		resolve:  func(c *config.Config) string { return c.Analytics.ClarityID },
	},
	{
		name:     "hubspot",
		category: model.CategoryMarketing,
		src:      "https://js.hs-scripts.com",
		resolve:  func(c *config.Config) string { return c.HubSpot.PortalID },
	},
}

// GatedScripts returns the scripts the client may load under the given
// state: the category must be granted and the vendor must be configured.
// Already-loaded scripts are never retroactively unloaded; only future
// loads are gated.
func GatedScripts(state model.State, cfg *config.Config) []Script {
	scripts := []Script{}
	for _, entry := range scriptTable {
		id := entry.resolve(cfg)
		if id == "" || !state.Granted(entry.category) {
			continue
		}
		scripts = append(scripts, Script{
			Name:     entry.name,
			Category: entry.category,
			Src:      entry.src,
			VendorID: id,
		})
	}
	return scripts
}

// ConsentMode maps the state category-by-category onto the analytics
// vendor's consent-mode flag names
func ConsentMode(state model.State) map[string]string {
	grant := func(granted bool) string {
		if granted {
			return "granted"
		}
		return "denied"
	}
	return map[string]string{
		"analytics_storage":       grant(state.Analytics),
		"ad_storage":              grant(state.Marketing),
		"ad_user_data":            grant(state.Marketing),
		"ad_personalization":      grant(state.Marketing),
		"functionality_storage":   grant(state.Functional),
		"personalization_storage": grant(state.Functional),
		"security_storage":        "granted",
	}
}
