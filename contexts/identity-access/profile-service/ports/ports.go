package ports

import (
	"context"
	"time"

	"clout/contexts/identity-access/profile-service/domain/entities"
)

type ProfileRepository interface {
	CreateProfile(ctx context.Context, user entities.User) error
	UpdateProfile(ctx context.Context, user entities.User) error
	GetProfile(ctx context.Context, userID string) (entities.User, error)
	ListProfilesByIDs(ctx context.Context, userIDs []string) ([]entities.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type Clock interface {
	Now() time.Time
}

// RandomSource feeds the username suggester. Tests plug a deterministic
// implementation.
type RandomSource interface {
	Intn(n int) int
}
