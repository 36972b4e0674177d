package validation

import (
	"testing"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=2"`
	Score int    `validate:"gte=0,lte=100"`
}

func TestValidateStruct(t *testing.T) {
	v := NewValidator()

	valid := sampleRequest{Email: "user@example.com", Name: "Priya", Score: 85}
	if err := v.ValidateStruct(valid); err != nil {
		t.Errorf("expected valid struct to pass, got %v", err)
	}

	cases := []struct {
		name string
		req  sampleRequest
	}{
		{"missing email", sampleRequest{Name: "Priya", Score: 50}},
		{"bad email", sampleRequest{Email: "not-an-email", Name: "Priya", Score: 50}},
		{"short name", sampleRequest{Email: "user@example.com", Name: "P", Score: 50}},
		{"score above range", sampleRequest{Email: "user@example.com", Name: "Priya", Score: 101}},
	}

	for _, tc := range cases {
		if err := v.ValidateStruct(tc.req); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "no-at-sign", "@missing.local", "user@", "a@b"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello \x00world  "); got != "hello world" {
		t.Errorf("SanitizeString = %q, want %q", got, "hello world")
	}
}
