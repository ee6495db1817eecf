package inquiry

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

// ErrorMap maps a field name to its current validation message. Entries exist
// only for invalid fields.
type ErrorMap map[string]string

// ValidateField checks a single field value and returns a human-readable
// message, or "" when the value is acceptable. preferredContact and state have
// no rule in this version.
func ValidateField(name, value string) string {
	switch name {
	case FieldFirstName, FieldLastName:
		if strings.TrimSpace(value) == "" {
			return "This field is required"
		}
	case FieldEmail:
		if value == "" {
			return "Email is required"
		}
		if !emailPattern.MatchString(value) {
			return "Please enter a valid email"
		}
	case FieldPhoneNumber:
		if value != "" && !phonePattern.MatchString(value) {
			return "Please enter a valid phone number (xxx-xxx-xxxx)"
		}
	case FieldMessage:
		if strings.TrimSpace(value) == "" {
			return "Please include a message"
		}
	}
	return ""
}

// ValidateAll applies ValidateField to every declared field and collects the
// non-empty results.
func ValidateAll(d FormData) ErrorMap {
	errs := ErrorMap{}
	for _, name := range fieldNames {
		if msg := ValidateField(name, d.Field(name)); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}
