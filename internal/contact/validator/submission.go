package validator

import (
	"github.com/praisepoint/site-api/internal/contact/model"
	"github.com/praisepoint/site-api/internal/system/utils"
)

// ValidateSubmission checks a contact-form payload against the fixed
// schema and returns a field-keyed error map. An empty map means the
// payload is valid.
func ValidateSubmission(s *model.ContactSubmission) map[string]string {
	errors := map[string]string{}

	if err := utils.ValidateMinLength("name", s.Name, 2); err != nil {
		errors["name"] = err.Error()
	} else if err := utils.ValidateMaxLength("name", s.Name, 100); err != nil {
		errors["name"] = err.Error()
	}

	if err := utils.ValidateRequired("company", s.Company); err != nil {
		errors["company"] = err.Error()
	} else if err := utils.ValidateMaxLength("company", s.Company, 200); err != nil {
		errors["company"] = err.Error()
	}

	if err := utils.ValidateRequired("email", s.Email); err != nil {
		errors["email"] = err.Error()
	} else if err := utils.ValidateEmail(s.Email); err != nil {
		errors["email"] = err.Error()
	}

	if err := utils.ValidateOneOf("employees", s.Employees, model.CompanySizes); err != nil {
		errors["employees"] = err.Error()
	}

	if err := utils.ValidateMinLength("message", s.Message, 10); err != nil {
		errors["message"] = err.Error()
	} else if err := utils.ValidateMaxLength("message", s.Message, 4000); err != nil {
		errors["message"] = err.Error()
	}

	if !s.Agree {
		errors["agree"] = "agreement is required"
	}

	return errors
}
