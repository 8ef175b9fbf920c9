package model

// CompanySizes enumerates the allowed employee-count buckets
var CompanySizes = []string{"1-10", "11-50", "51-200", "201-500", "500+"}

// ContactSubmission is a transient contact-form payload. It is never
// persisted by this system; ownership passes to the downstream sinks
// immediately after validation.
type ContactSubmission struct {
	Name      string `json:"name"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Employees string `json:"employees"`
	Message   string `json:"message"`
	Agree     bool   `json:"agree"`

	UTMSource   string `json:"utm_source,omitempty"`
	UTMMedium   string `json:"utm_medium,omitempty"`
	UTMCampaign string `json:"utm_campaign,omitempty"`
	UTMTerm     string `json:"utm_term,omitempty"`
	UTMContent  string `json:"utm_content,omitempty"`
}

// UTMFields returns the non-empty UTM parameters keyed by field name
func (s *ContactSubmission) UTMFields() map[string]string {
	fields := map[string]string{}
	for key, value := range map[string]string{
		"utm_source":   s.UTMSource,
		"utm_medium":   s.UTMMedium,
		"utm_campaign": s.UTMCampaign,
		"utm_term":     s.UTMTerm,
		"utm_content":  s.UTMContent,
	} {
		if value != "" {
			fields[key] = value
		}
	}
	return fields
}

// SubmitResult is the API response envelope of the contact endpoint
type SubmitResult struct {
	OK     bool              `json:"ok"`
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}
