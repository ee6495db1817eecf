package inquiry

import "testing"

func TestValidateField_Email(t *testing.T) {
	valid := []string{
		"ann@x.com",
		"Ann.Lee@example.co.uk",
		"a+b@sub.domain.org",
		"USER@EXAMPLE.COM",
	}
	for _, v := range valid {
		if msg := ValidateField(FieldEmail, v); msg != "" {
			t.Errorf("ValidateField(email, %q) = %q, want valid", v, msg)
		}
	}

	if msg := ValidateField(FieldEmail, ""); msg != "Email is required" {
		t.Errorf("empty email: got %q", msg)
	}

	invalid := []string{
		"plainaddress",
		"no-at.example.com",
		"missing@tld",
		"two@@example.com",
		"spaces in@example.com",
		"trailing@example.com ",
		"@example.com",
		"user@.com",
	}
	for _, v := range invalid {
		if msg := ValidateField(FieldEmail, v); msg != "Please enter a valid email" {
			t.Errorf("ValidateField(email, %q) = %q, want invalid-email message", v, msg)
		}
	}
}

func TestValidateField_Names(t *testing.T) {
	for _, f := range []string{FieldFirstName, FieldLastName} {
		if msg := ValidateField(f, ""); msg != "This field is required" {
			t.Errorf("ValidateField(%s, \"\") = %q", f, msg)
		}
		if msg := ValidateField(f, "   "); msg != "This field is required" {
			t.Errorf("ValidateField(%s, whitespace) = %q", f, msg)
		}
		if msg := ValidateField(f, "Ann"); msg != "" {
			t.Errorf("ValidateField(%s, \"Ann\") = %q, want valid", f, msg)
		}
	}
}

func TestValidateField_Phone(t *testing.T) {
	// Optional: empty is fine
	if msg := ValidateField(FieldPhoneNumber, ""); msg != "" {
		t.Errorf("empty phone: got %q", msg)
	}
	if msg := ValidateField(FieldPhoneNumber, "215-555-1234"); msg != "" {
		t.Errorf("masked phone: got %q", msg)
	}

	want := "Please enter a valid phone number (xxx-xxx-xxxx)"
	for _, v := range []string{"2155551234", "215-555-123", "215-5551-234", "abc-def-ghij", "215 555 1234"} {
		if msg := ValidateField(FieldPhoneNumber, v); msg != want {
			t.Errorf("ValidateField(phoneNumber, %q) = %q, want %q", v, msg, want)
		}
	}
}

func TestValidateField_Message(t *testing.T) {
	if msg := ValidateField(FieldMessage, "  "); msg != "Please include a message" {
		t.Errorf("blank message: got %q", msg)
	}
	if msg := ValidateField(FieldMessage, "Hi"); msg != "" {
		t.Errorf("non-empty message: got %q", msg)
	}
}

func TestValidateField_UnruledFields(t *testing.T) {
	// preferredContact and state carry no rule in this version
	if msg := ValidateField(FieldPreferredContact, ""); msg != "" {
		t.Errorf("preferredContact: got %q", msg)
	}
	if msg := ValidateField(FieldState, "XX"); msg != "" {
		t.Errorf("state: got %q", msg)
	}
}

func TestValidateAll_IsExactUnionOfFieldResults(t *testing.T) {
	data := FormData{
		FirstName:        "",
		LastName:         "Lee",
		Email:            "not-an-email",
		PhoneNumber:      "123",
		Message:          "",
		PreferredContact: ContactEmail,
		State:            StatePA,
	}

	got := ValidateAll(data)

	want := ErrorMap{}
	for _, name := range fieldNames {
		if msg := ValidateField(name, data.Field(name)); msg != "" {
			want[name] = msg
		}
	}

	if len(got) != len(want) {
		t.Fatalf("ValidateAll returned %d errors, want %d: %v", len(got), len(want), got)
	}
	for name, msg := range want {
		if got[name] != msg {
			t.Errorf("ValidateAll[%s] = %q, want %q", name, got[name], msg)
		}
	}
}

func TestValidateAll_CleanForm(t *testing.T) {
	data := FormData{
		FirstName:        "Ann",
		LastName:         "Lee",
		Email:            "ann@x.com",
		PhoneNumber:      "",
		Message:          "Hi",
		PreferredContact: ContactEmail,
		State:            "",
	}
	if errs := ValidateAll(data); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}
