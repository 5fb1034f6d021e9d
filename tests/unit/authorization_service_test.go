package unit

import (
	"context"
	"errors"
	"testing"

	authorizationservice "clout/contexts/identity-access/authorization-service"
	profilesadapter "clout/contexts/identity-access/authorization-service/adapters/profiles"
	autherrors "clout/contexts/identity-access/authorization-service/domain/errors"
	authports "clout/contexts/identity-access/authorization-service/ports"
	profilememory "clout/contexts/identity-access/profile-service/adapters/memory"
	profileentities "clout/contexts/identity-access/profile-service/domain/entities"
)

func TestGuardAuthorize(t *testing.T) {
	store := profilememory.NewStore([]profileentities.User{
		{UserID: "user-admin", Type: profileentities.UserTypeAdmin, Name: "Admin", Username: "the-admin"},
		{UserID: "user-clipper", Type: profileentities.UserTypeClipper, Name: "Clipper", Username: "the-clipper"},
	})
	module := authorizationservice.NewModule(authorizationservice.Dependencies{
		Roles: profilesadapter.Resolver{Profiles: store},
	})

	if err := module.Guard.Authorize(context.Background(), "user-admin", authports.RoleAdmin); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}

	err := module.Guard.Authorize(context.Background(), "user-clipper", authports.RoleAdmin)
	if !errors.Is(err, autherrors.ErrForbidden) {
		t.Fatalf("expected forbidden for clipper, got %v", err)
	}

	err = module.Guard.Authorize(context.Background(), "", authports.RoleAdmin)
	if !errors.Is(err, autherrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for blank subject, got %v", err)
	}

	// A subject with no profile row is unknown, not merely underprivileged.
	err = module.Guard.Authorize(context.Background(), "user-ghost", authports.RoleAdmin)
	if !errors.Is(err, autherrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for unknown subject, got %v", err)
	}
}
