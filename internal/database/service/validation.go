package service

import (
	"strings"
	"unicode"
)

// ValidationError reports malformed input with per-field detail.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validatePassword enforces the account password policy: at least 8
// characters with a digit, a lowercase letter, an uppercase letter and a
// symbol.
func validatePassword(password string) *ValidationError {
	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSymbol = true
		}
	}

	fields := map[string]string{}
	if len(password) < 8 {
		fields["password"] = "must be at least 8 characters"
	} else if !hasDigit {
		fields["password"] = "must contain a digit"
	} else if !hasLower {
		fields["password"] = "must contain a lowercase letter"
	} else if !hasUpper {
		fields["password"] = "must contain an uppercase letter"
	} else if !hasSymbol {
		fields["password"] = "must contain a symbol"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
