package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		want     error
	}{
		{"Password1", nil},
		{"Pass-word", nil},
		{"Sh0rt!", ErrPasswordTooShort},
		{strings.Repeat("Aa1", 20), ErrPasswordTooLong},
		{"alllowercase1", ErrPasswordTooWeak},
		{"ALLUPPERCASE1", ErrPasswordTooWeak},
		{"NoDigitsHere", ErrPasswordTooWeak},
	}

	for _, tc := range cases {
		if got := ValidatePasswordStrength(tc.password); !errors.Is(got, tc.want) {
			t.Errorf("ValidatePasswordStrength(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		username string
		want     error
	}{
		{"dev_one", nil},
		{"Dev-123", nil},
		{"ab", ErrUsernameBadLength},
		{strings.Repeat("a", 21), ErrUsernameBadLength},
		{"dev one", ErrUsernameBadCharset},
		{"dev@one", ErrUsernameBadCharset},
	}

	for _, tc := range cases {
		if got := ValidateUsername(tc.username); !errors.Is(got, tc.want) {
			t.Errorf("ValidateUsername(%q) = %v, want %v", tc.username, got, tc.want)
		}
	}
}
