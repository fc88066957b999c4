package util

import (
	"regexp"

	"fraudwatch-server/src/models"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	lowerPattern = regexp.MustCompile("[a-z]")
	upperPattern = regexp.MustCompile("[A-Z]")
	digitPattern = regexp.MustCompile("[0-9]")
	otherPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidateUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30
}

func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return lowerPattern.MatchString(password) &&
		upperPattern.MatchString(password) &&
		digitPattern.MatchString(password) &&
		otherPattern.MatchString(password)
}

// ValidateAnalyst returns a user-facing message for the first invalid field,
// or "" when the request is acceptable.
func ValidateAnalyst(req models.CreateAnalystRequest) string {
	switch {
	case !ValidateEmail(req.Email):
		return "invalid email format"
	case !ValidateUsername(req.Username):
		return "username must be between 3 and 30 characters"
	case !ValidatePassword(req.Password):
		return "password must be at least 8 characters with uppercase, lowercase, digit, and special character"
	}
	return ""
}
