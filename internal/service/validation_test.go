package service

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInvalidName},
		{"whitespace_only", "   ", ErrInvalidName},
		{"too_long", strings.Repeat("a", 257), ErrInvalidName},
		{"max_length", strings.Repeat("a", 256), nil},
		{"control_character", "ursula\x00le guin", ErrInvalidName},
		{"newline", "ursula\nle guin", ErrInvalidName},
		{"forward_slash", "ursula/le guin", ErrInvalidName},
		{"angle_brackets", "<script>", ErrInvalidName},
		{"braces", "{name}", ErrInvalidName},
		{"quote", `ursula "k" le guin`, ErrInvalidName},
		{"valid", "le guin", nil},
		{"valid_unicode", "Ursula Le Guín", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validateName(test.input)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInvalidEmail},
		{"missing_at", "ursula_le_guin.gmail.com", ErrInvalidEmail},
		{"missing_local_part", "@gmail.com", ErrInvalidEmail},
		{"missing_domain", "ursula_le_guin@", ErrInvalidEmail},
		{"missing_domain_dot", "ursula_le_guin@gmail", ErrInvalidEmail},
		{"contains_space", "ursula le guin@gmail.com", ErrInvalidEmail},
		{"too_long", strings.Repeat("a", 250) + "@example.com", ErrInvalidEmail},
		{"valid", "ursula_le_guin@gmail.com", nil},
		{"valid_subdomain", "ursula@mail.gmail.com", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validateEmail(test.input)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}
