// Package content loads the static site content tables (brands,
// testimonials, team, pricing) embedded at build time. The tables are seed
// data, not a subsystem: they are parsed once at startup and served as
// localized projections.
package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/praisepoint/site-api/internal/locale"
)

//go:embed data/*.json
var dataFS embed.FS

// LocalizedText is a per-locale string table; Resolve falls back to the
// default locale when a translation is missing
type LocalizedText map[string]string

// Resolve returns the text for the locale, falling back to the default
func (t LocalizedText) Resolve(l locale.Locale) string {
	if v, ok := t[l.String()]; ok {
		return v
	}
	return t[locale.Default.String()]
}

// Brand is one logo in the brand showcase
type Brand struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Testimonial is one customer quote
type Testimonial struct {
	Author  string        `json:"author"`
	Company string        `json:"company"`
	Role    LocalizedText `json:"role"`
	Quote   LocalizedText `json:"quote"`
	Avatar  string        `json:"avatar"`
}

// TeamMember is one entry of the team page
type TeamMember struct {
	Name     string        `json:"name"`
	Role     LocalizedText `json:"role"`
	Photo    string        `json:"photo"`
	LinkedIn string        `json:"linkedin,omitempty"`
}

// PricingTier is one pricing plan
type PricingTier struct {
	ID           string          `json:"id"`
	Name         LocalizedText   `json:"name"`
	PricePerSeat float64         `json:"price_per_seat"`
	Currency     string          `json:"currency"`
	Billing      string          `json:"billing"`
	Highlighted  bool            `json:"highlighted"`
	Features     []LocalizedText `json:"features"`
}

// Store holds the parsed content tables
type Store struct {
	brands       []Brand
	testimonials []Testimonial
	team         []TeamMember
	pricing      []PricingTier
}

// NewStore parses all embedded content tables
func NewStore() (*Store, error) {
	s := &Store{}

	if err := load(&s.brands, "data/brands.json"); err != nil {
		return nil, err
	}
	if err := load(&s.testimonials, "data/testimonials.json"); err != nil {
		return nil, err
	}
	if err := load(&s.team, "data/team.json"); err != nil {
		return nil, err
	}
	if err := load(&s.pricing, "data/pricing.json"); err != nil {
		return nil, err
	}

	return s, nil
}

func load(target interface{}, path string) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Brands returns the brand showcase entries
func (s *Store) Brands() []Brand {
	return s.brands
}

// Testimonials returns the testimonials localized for the given locale
func (s *Store) Testimonials(l locale.Locale) []LocalizedTestimonial {
	out := make([]LocalizedTestimonial, 0, len(s.testimonials))
	for _, t := range s.testimonials {
		out = append(out, LocalizedTestimonial{
			Author:  t.Author,
			Company: t.Company,
			Role:    t.Role.Resolve(l),
			Quote:   t.Quote.Resolve(l),
			Avatar:  t.Avatar,
		})
	}
	return out
}

// Team returns the team entries localized for the given locale
func (s *Store) Team(l locale.Locale) []LocalizedTeamMember {
	out := make([]LocalizedTeamMember, 0, len(s.team))
	for _, m := range s.team {
		out = append(out, LocalizedTeamMember{
			Name:     m.Name,
			Role:     m.Role.Resolve(l),
			Photo:    m.Photo,
			LinkedIn: m.LinkedIn,
		})
	}
	return out
}

// Pricing returns the pricing tiers localized for the given locale
func (s *Store) Pricing(l locale.Locale) []LocalizedPricingTier {
	out := make([]LocalizedPricingTier, 0, len(s.pricing))
	for _, tier := range s.pricing {
		features := make([]string, 0, len(tier.Features))
		for _, f := range tier.Features {
			features = append(features, f.Resolve(l))
		}
		out = append(out, LocalizedPricingTier{
			ID:           tier.ID,
			Name:         tier.Name.Resolve(l),
			PricePerSeat: tier.PricePerSeat,
			Currency:     tier.Currency,
			Billing:      tier.Billing,
			Highlighted:  tier.Highlighted,
			Features:     features,
		})
	}
	return out
}

// LocalizedTestimonial is a testimonial with its text resolved to one locale
type LocalizedTestimonial struct {
	Author  string `json:"author"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Quote   string `json:"quote"`
	Avatar  string `json:"avatar"`
}

// LocalizedTeamMember is a team entry with its text resolved to one locale
type LocalizedTeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Photo    string `json:"photo"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// LocalizedPricingTier is a pricing tier with its text resolved to one locale
type LocalizedPricingTier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PricePerSeat float64  `json:"pricePerSeat"`
	Currency     string   `json:"currency"`
	Billing      string   `json:"billing"`
	Highlighted  bool     `json:"highlighted"`
	Features     []string `json:"features"`
}
