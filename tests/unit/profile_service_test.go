package unit

import (
	"context"
	"errors"
	"testing"

	profileservice "clout/contexts/identity-access/profile-service"
	"clout/contexts/identity-access/profile-service/domain/entities"
	domainerrors "clout/contexts/identity-access/profile-service/domain/errors"
	httptransport "clout/contexts/identity-access/profile-service/transport/http"
)

func TestProfileOnboarding(t *testing.T) {
	module := profileservice.NewInMemoryModule(nil, nil)

	created, err := module.Handler.CreateProfileHandler(context.Background(), "user-1", httptransport.CreateProfileRequest{
		Type:      "clipper",
		Name:      "Clip Master",
		Username:  "Clip-Master",
		Region:    "EU",
		Interests: []string{"Gaming", ""},
		TikTok:    "@clipmaster",
	})
	if err != nil {
		t.Fatalf("create profile failed: %v", err)
	}
	if created.Profile.Username != "clip-master" {
		t.Fatalf("expected lowercased username, got %s", created.Profile.Username)
	}
	if len(created.Profile.Interests) != 1 {
		t.Fatalf("expected blank interests dropped, got %v", created.Profile.Interests)
	}

	_, err = module.Handler.CreateProfileHandler(context.Background(), "user-2", httptransport.CreateProfileRequest{
		Type:     "creator",
		Name:     "Copycat",
		Username: "clip-master",
	})
	if !errors.Is(err, domainerrors.ErrUsernameTaken) {
		t.Fatalf("expected username taken, got %v", err)
	}

	// Admin is never self-selected during onboarding.
	_, err = module.Handler.CreateProfileHandler(context.Background(), "user-3", httptransport.CreateProfileRequest{
		Type:     "admin",
		Name:     "Sneaky",
		Username: "sneaky-one",
	})
	if !errors.Is(err, domainerrors.ErrInvalidProfileInput) {
		t.Fatalf("expected invalid input for admin type, got %v", err)
	}

	_, err = module.Handler.CreateProfileHandler(context.Background(), "user-4", httptransport.CreateProfileRequest{
		Type:     "clipper",
		Name:     "Shorty",
		Username: "ab",
	})
	if !errors.Is(err, domainerrors.ErrInvalidProfileInput) {
		t.Fatalf("expected invalid input for short username, got %v", err)
	}
}

func TestProfileUpdateKeepsTypeAndIdentity(t *testing.T) {
	module := profileservice.NewInMemoryModule([]entities.User{
		{UserID: "user-1", Type: entities.UserTypeCreator, Name: "Original", Username: "original-name"},
	}, nil)

	updated, err := module.Handler.UpdateProfileHandler(context.Background(), "user-1", httptransport.UpdateProfileRequest{
		Name:     "Renamed",
		Username: "renamed-handle",
		Region:   "US",
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Profile.Type != string(entities.UserTypeCreator) {
		t.Fatalf("expected type to survive update, got %s", updated.Profile.Type)
	}
	if updated.Profile.UserID != "user-1" {
		t.Fatalf("expected identity to survive update, got %s", updated.Profile.UserID)
	}
	if updated.Profile.Username != "renamed-handle" {
		t.Fatalf("expected new username, got %s", updated.Profile.Username)
	}

	_, err = module.Handler.UpdateProfileHandler(context.Background(), "user-missing", httptransport.UpdateProfileRequest{
		Name:     "Nobody",
		Username: "nobody-here",
	})
	if !errors.Is(err, domainerrors.ErrProfileNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUsernameAvailabilitySuggestsWhenTaken(t *testing.T) {
	module := profileservice.NewInMemoryModule([]entities.User{
		{UserID: "user-1", Type: entities.UserTypeClipper, Name: "Taken", Username: "taken-handle"},
	}, nil)

	free, err := module.Handler.CheckUsernameHandler(context.Background(), "fresh-handle")
	if err != nil {
		t.Fatalf("check username failed: %v", err)
	}
	if !free.Available || free.Suggested != "" {
		t.Fatalf("expected plain availability, got %+v", free)
	}

	taken, err := module.Handler.CheckUsernameHandler(context.Background(), "taken-handle")
	if err != nil {
		t.Fatalf("check username failed: %v", err)
	}
	if taken.Available {
		t.Fatalf("expected taken handle to be unavailable")
	}
	if taken.Suggested == "" {
		t.Fatalf("expected a suggestion for a taken handle")
	}
	if !entities.ValidUsername(taken.Suggested) {
		t.Fatalf("expected a valid suggested handle, got %s", taken.Suggested)
	}
}
