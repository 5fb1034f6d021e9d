package entities

import (
	"regexp"
	"strings"
	"time"
)

type UserType string

const (
	UserTypeClipper UserType = "clipper"
	UserTypeCreator UserType = "creator"
	UserTypeAdmin   UserType = "admin"
)

// IsOnboardableType reports whether a user may pick the type during
// onboarding. Admin is assigned out of band, never self-selected.
func IsOnboardableType(t UserType) bool {
	return t == UserTypeClipper || t == UserTypeCreator
}

// User is the profile record keyed by the external auth subject id.
type User struct {
	UserID    string
	Type      UserType
	Name      string
	Username  string
	Region    string
	Interests []string
	Twitter   string
	Instagram string
	YouTube   string
	TikTok    string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,28}[a-z0-9]$`)

// ValidUsername accepts lowercase alphanumerics and inner hyphens,
// 3 to 30 characters.
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(strings.TrimSpace(username))
}
