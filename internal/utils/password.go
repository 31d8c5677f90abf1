package utils

import (
	"errors"
	"regexp"
	"unicode"
)

var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong    = errors.New("password must be at most 50 characters long")
	ErrPasswordTooWeak    = errors.New("password must contain uppercase, lowercase and number or special character")
	ErrUsernameBadLength  = errors.New("username must be between 3 and 20 characters long")
	ErrUsernameBadCharset = errors.New("username can only contain letters, numbers, underscores and hyphens")
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidatePasswordStrength checks that a password is 8-50 characters and
// contains an uppercase letter, a lowercase letter, and a digit or symbol.
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if len(password) > 50 {
		return ErrPasswordTooLong
	}

	var (
		hasUpper bool
		hasLower bool
		hasOther bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char), unicode.IsPunct(char), unicode.IsSymbol(char):
			hasOther = true
		}
	}

	if !hasUpper || !hasLower || !hasOther {
		return ErrPasswordTooWeak
	}

	return nil
}

// ValidateUsername checks the username shape: 3-20 characters drawn from
// letters, digits, underscore and hyphen.
func ValidateUsername(username string) error {
	if len(username) < 3 || len(username) > 20 {
		return ErrUsernameBadLength
	}
	if !usernameRegex.MatchString(username) {
		return ErrUsernameBadCharset
	}
	return nil
}
