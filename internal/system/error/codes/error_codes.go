package codes

// Error codes for the marketing-site backend
const (
	InternalServerError = "SSE-5000"
	InvalidRequest      = "CSE-4000"
	ResourceNotFound    = "CSE-4004"
	UnsupportedLocale   = "CSE-4010"
)
