package utils

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// ValidateRequired validates a field is not empty
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateMinLength validates a field has a minimum rune length
func ValidateMinLength(fieldName, value string, min int) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		return fmt.Errorf("%s must be at least %d characters", fieldName, min)
	}
	return nil
}

// ValidateMaxLength validates a field does not exceed a maximum rune length
func ValidateMaxLength(fieldName, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%s too long (max %d chars)", fieldName, max)
	}
	return nil
}

// ValidateEmail validates an email address format
func ValidateEmail(value string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(value))
	if err != nil || addr.Name != "" {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidateOneOf validates a value against an allowed set
func ValidateOneOf(fieldName, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of: %s", fieldName, strings.Join(allowed, ", "))
}
