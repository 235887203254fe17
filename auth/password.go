package auth

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// ValidatePasswordComplexity enforces the password policy: at least
// MinPasswordLength characters with one digit, one lowercase, one uppercase
// and one non-alphanumeric character. It is a validation.RuleFunc so request
// payloads can plug it in with validation.By.
func ValidatePasswordComplexity(value any) error {
	password, _ := value.(string)

	// count characters, not bytes; multibyte runes count once
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return errors.New("must be at least 8 characters long")
	}

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

	switch {
	case !hasDigit:
		return errors.New("must contain at least one digit")
	case !hasLower:
		return errors.New("must contain at least one lowercase letter")
	case !hasUpper:
		return errors.New("must contain at least one uppercase letter")
	case !hasSymbol:
		return errors.New("must contain at least one non-alphanumeric character")
	}

	return nil
}
