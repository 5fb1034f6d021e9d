package profilesadapter

import (
	"context"
	"errors"

	autherrors "clout/contexts/identity-access/authorization-service/domain/errors"
	profileerrors "clout/contexts/identity-access/profile-service/domain/errors"
	profileports "clout/contexts/identity-access/profile-service/ports"
)

// Resolver answers role lookups from the profile store. A subject without a
// profile row is treated as unauthenticated, not forbidden: the platform
// has never seen them.
type Resolver struct {
	Profiles profileports.ProfileRepository
}

func (r Resolver) ResolveRole(ctx context.Context, subjectID string) (string, error) {
	profile, err := r.Profiles.GetProfile(ctx, subjectID)
	if err != nil {
		if errors.Is(err, profileerrors.ErrProfileNotFound) {
			return "", autherrors.ErrUnauthenticated
		}
		return "", err
	}
	return string(profile.Type), nil
}
