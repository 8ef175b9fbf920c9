package model

// Category is one consent category gating script loading
type Category string

const (
	CategoryNecessary  Category = "necessary"
	CategoryAnalytics  Category = "analytics"
	CategoryMarketing  Category = "marketing"
	CategoryFunctional Category = "functional"
)

// Categories lists all consent categories in stable order
var Categories = []Category{
	CategoryNecessary,
	CategoryAnalytics,
	CategoryMarketing,
	CategoryFunctional,
}

// State is the consent record mirrored in a client-side cookie. Necessary
// is always true; the optional categories start false and change only by
// explicit user action.
type State struct {
	Necessary  bool   `json:"necessary"`
	Analytics  bool   `json:"analytics"`
	Marketing  bool   `json:"marketing"`
	Functional bool   `json:"functional"`
	Timestamp  int64  `json:"timestamp"`
	Version    string `json:"version"`
}

// UpdateRequest is the payload of a consent update. Only the optional
// categories are settable.
type UpdateRequest struct {
	Analytics  bool `json:"analytics"`
	Marketing  bool `json:"marketing"`
	Functional bool `json:"functional"`
}

// Granted reports whether the given category is granted
func (s *State) Granted(category Category) bool {
	switch category {
	case CategoryNecessary:
		return true
	case CategoryAnalytics:
		return s.Analytics
	case CategoryMarketing:
		return s.Marketing
	case CategoryFunctional:
		return s.Functional
	}
	return false
}
