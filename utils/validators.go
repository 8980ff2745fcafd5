package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateName accepts letters, spaces, hyphens and apostrophes.
func ValidateName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 50 {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}

// ValidatePassword requires at least 8 characters with at least one
// letter and one digit.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// ValidateNumericString checks a string holds a number within
// [min, max]. Pass min > max to skip the range check.
func ValidateNumericString(s string, min, max float64) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return false
	}
	if min > max {
		return true
	}
	return f >= min && f <= max
}
