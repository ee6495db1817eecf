package inquiry

import (
	"encoding/json"
	"fmt"
)

// Preferred contact methods
const (
	ContactEmail = "email"
	ContactPhone = "phone"
)

// Supported jurisdictions
const (
	StatePA = "PA"
	StateNJ = "NJ"
)

// Field names as they appear on the wire and in error maps
const (
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldEmail            = "email"
	FieldPhoneNumber      = "phoneNumber"
	FieldMessage          = "message"
	FieldPreferredContact = "preferredContact"
	FieldState            = "state"
)

// fieldNames lists every declared form field. ValidateAll iterates this set;
// ordering does not affect the resulting error map.
var fieldNames = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhoneNumber,
	FieldMessage,
	FieldPreferredContact,
	FieldState,
}

// FormData holds the mutable inquiry form fields. It is created with empty
// defaults when the form mounts, mutated field by field on input, submitted
// once, and discarded.
type FormData struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber"`
	Message          string `json:"message"`
	PreferredContact string `json:"preferredContact"`
	State            string `json:"state"`
}

// NewFormData returns form data with the mount-time defaults.
func NewFormData() FormData {
	return FormData{PreferredContact: ContactEmail}
}

// Field returns the current value of the named field.
func (d FormData) Field(name string) string {
	switch name {
	case FieldFirstName:
		return d.FirstName
	case FieldLastName:
		return d.LastName
	case FieldEmail:
		return d.Email
	case FieldPhoneNumber:
		return d.PhoneNumber
	case FieldMessage:
		return d.Message
	case FieldPreferredContact:
		return d.PreferredContact
	case FieldState:
		return d.State
	}
	return ""
}

func (d *FormData) setField(name, value string) {
	switch name {
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldEmail:
		d.Email = value
	case FieldPhoneNumber:
		d.PhoneNumber = value
	case FieldMessage:
		d.Message = value
	case FieldPreferredContact:
		d.PreferredContact = value
	case FieldState:
		d.State = value
	}
}

// ProductSnapshot is the selected product handed off from the listing view.
// Read-only for the inquiry flow.
type ProductSnapshot struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// ParseProduct decodes a serialized ProductSnapshot from the hand-off store.
func ParseProduct(raw string) (*ProductSnapshot, error) {
	var p ProductSnapshot
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("failed to parse product data: %w", err)
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("product price must be non-negative, got %v", p.Price)
	}
	return &p, nil
}

// Payload is the wire entity sent to the mail relay: the form fields plus a
// snapshot of the selected product, when one exists. Immutable once built; it
// exists only for the duration of one HTTP request and is never persisted.
type Payload struct {
	FormData
	Product *ProductSnapshot `json:"product,omitempty"`
}
