package ports

import "context"

const (
	RoleClipper = "clipper"
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)

// RoleResolver looks up the stored user type for an auth subject.
type RoleResolver interface {
	ResolveRole(ctx context.Context, subjectID string) (string, error)
}
