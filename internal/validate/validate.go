package validate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RequireBounded trims and ensures length bounds.
func RequireBounded(name, s string, min, max int) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < min || utf8.RuneCountInString(s) > max {
		return "", errors.New(name + " must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max) + " characters")
	}
	return s, nil
}

// RequireEmail trims and applies a permissive shape check.
func RequireEmail(s string) (string, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || !emailRe.MatchString(s) || utf8.RuneCountInString(s) > 254 {
		return "", errors.New("a valid email is required")
	}
	return s, nil
}

// RequireUUID rejects malformed ids before they reach the store.
func RequireUUID(name, s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := uuid.Validate(s); err != nil {
		return "", errors.New(name + " must be a valid uuid")
	}
	return s, nil
}

// RequireQuantity parses a non-negative unit count.
func RequireQuantity(n int) (int, error) {
	if n < 0 {
		return 0, errors.New("quantity must not be negative")
	}
	return n, nil
}

// RequireRating bounds a 0-5 star rating.
func RequireRating(f float64) (float64, error) {
	if f < 0 || f > 5 {
		return 0, errors.New("rating must be between 0 and 5")
	}
	return f, nil
}

// RequireFutureDate parses YYYY-MM-DD and rejects dates before today.
func RequireFutureDate(name, s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.New(name + " must be a date in YYYY-MM-DD form")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if t.Before(today) {
		return time.Time{}, errors.New(name + " must not be in the past")
	}
	return t, nil
}
