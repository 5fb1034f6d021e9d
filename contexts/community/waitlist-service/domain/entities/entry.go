package entities

import (
	"regexp"
	"strings"
	"time"
)

// Entry is one waitlist signup.
type Entry struct {
	EntryID   string
	Email     string
	CreatedAt time.Time
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
