package service

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validation errors.
var (
	ErrInvalidName  = errors.New("invalid subscriber name")
	ErrInvalidEmail = errors.New("invalid subscriber email")
)

// maxNameLength bounds subscriber display names.
const maxNameLength = 256

// emailRegex requires a local part, an @ separator, and a dotted domain.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// forbiddenNameChars are rejected in display names to keep them safe for
// embedding in emails and queries.
const forbiddenNameChars = `/()"<>\{}`

// validateName checks a subscriber display name.
// Rejects empty or whitespace-only names, names over the length bound,
// and names containing control or forbidden characters.
func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrInvalidName
	}

	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrInvalidName
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return ErrInvalidName
		}
		if strings.ContainsRune(forbiddenNameChars, r) {
			return ErrInvalidName
		}
	}

	return nil
}

// validateEmail checks that an address is syntactically plausible.
func validateEmail(email string) error {
	if email == "" || utf8.RuneCountInString(email) > maxNameLength {
		return ErrInvalidEmail
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
