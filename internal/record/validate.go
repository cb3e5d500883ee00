package record

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidationError describes a field value rejected before it reaches the catalog.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// IsValidISBN reports whether s is non-empty, made only of digits and
// hyphens, and contains at least one digit. No checksum is verified.
func IsValidISBN(s string) bool {
	if s == "" {
		return false
	}
	hasDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '-':
		default:
			return false
		}
	}
	return hasDigit
}

// IsValidName reports whether s is non-empty and made only of letters,
// whitespace and the punctuation . & - '
func IsValidName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '.', '&', '-', '\'':
			continue
		}
		return false
	}
	return true
}

// ValidateISBN is IsValidISBN with a descriptive error.
func ValidateISBN(s string) error {
	if IsValidISBN(s) {
		return nil
	}
	return &ValidationError{Field: "isbn", Value: s, Reason: "use digits and dashes only, with at least one digit"}
}

// ValidateName is IsValidName with a descriptive error. field names the
// prompt ("author", "name") for the message.
func ValidateName(field, s string) error {
	if !IsValidName(s) {
		return &ValidationError{Field: field, Value: s, Reason: "use letters, spaces and . & - ' only"}
	}
	return ValidateText(field, s)
}

// ValidateText accepts any free text that can be stored on a single line
// without breaking the field layout.
func ValidateText(field, s string) error {
	if strings.ContainsAny(s, fieldSep+"\n\r") {
		return &ValidationError{Field: field, Value: s, Reason: "must not contain '|' or line breaks"}
	}
	return nil
}
