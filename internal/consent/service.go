package consent

import (
	"encoding/base64"
	"encoding/json"

	"github.com/praisepoint/site-api/internal/consent/model"
	"github.com/praisepoint/site-api/internal/system/config"
	"github.com/praisepoint/site-api/internal/system/utils"
)

// ConsentService defines the exported service interface
type ConsentService interface {
	Default() model.State
	Decode(cookieValue string) model.State
	Encode(state model.State) string
	Update(req model.UpdateRequest) model.State
	HasConsentFor(state model.State, category model.Category) bool
}

// consentService implements the ConsentService interface
type consentService struct {
	policyVersion string
}

// NewService creates a new consent service bound to the current policy version
func NewService(cfg *config.ConsentConfig) ConsentService {
	return &consentService{policyVersion: cfg.PolicyVersion}
}

// Default returns the first-visit state: all optional categories false
func (s *consentService) Default() model.State {
	return model.State{
		Necessary: true,
		Timestamp: utils.GetCurrentTimeMillis(),
		Version:   s.policyVersion,
	}
}

// Decode parses a stored cookie value. Garbage, a missing value or a
// version stamp differing from the current policy version all yield the
// default state, which re-prompts the consent UI.
func (s *consentService) Decode(cookieValue string) model.State {
	if cookieValue == "" {
		return s.Default()
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookieValue)
	if err != nil {
		return s.Default()
	}

	var state model.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return s.Default()
	}

	if state.Version != s.policyVersion {
		return s.Default()
	}

	// Necessary is not negotiable regardless of what was stored
	state.Necessary = true
	return state
}

// Encode serializes a state for cookie storage
func (s *consentService) Encode(state model.State) string {
	raw, err := json.Marshal(state)
	if err != nil {
		// State is a flat struct of scalars; marshal cannot fail
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Update produces a fresh state from an explicit user action, stamped
// with the current time and policy version
func (s *consentService) Update(req model.UpdateRequest) model.State {
	return model.State{
		Necessary:  true,
		Analytics:  req.Analytics,
		Marketing:  req.Marketing,
		Functional: req.Functional,
		Timestamp:  utils.GetCurrentTimeMillis(),
		Version:    s.policyVersion,
	}
}

// HasConsentFor reports whether the category is granted in the given state
func (s *consentService) HasConsentFor(state model.State, category model.Category) bool {
	return state.Granted(category)
}
