package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"clout/contexts/identity-access/profile-service/domain/entities"
	domainerrors "clout/contexts/identity-access/profile-service/domain/errors"
	"clout/contexts/identity-access/profile-service/ports"
)

type Service struct {
	Repo   ports.ProfileRepository
	Clock  ports.Clock
	Random ports.RandomSource
	Logger *slog.Logger
}

func (s Service) CreateProfile(ctx context.Context, user entities.User) (entities.User, error) {
	logger := s.logger()

	user = normalizeProfile(user)
	if strings.TrimSpace(user.UserID) == "" || strings.TrimSpace(user.Name) == "" {
		return entities.User{}, domainerrors.ErrInvalidProfileInput
	}
	if !entities.IsOnboardableType(user.Type) {
		return entities.User{}, domainerrors.ErrInvalidProfileInput
	}
	if !entities.ValidUsername(user.Username) {
		return entities.User{}, domainerrors.ErrInvalidProfileInput
	}

	taken, err := s.Repo.UsernameExists(ctx, user.Username)
	if err != nil {
		return entities.User{}, err
	}
	if taken {
		return entities.User{}, domainerrors.ErrUsernameTaken
	}

	now := s.Clock.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := s.Repo.CreateProfile(ctx, user); err != nil {
		return entities.User{}, err
	}

	logger.Info("profile created",
		"event", "profile_created",
		"module", "identity-access/profile-service",
		"layer", "application",
		"user_id", user.UserID,
		"user_type", string(user.Type),
	)
	return user, nil
}

func (s Service) GetProfile(ctx context.Context, userID string) (entities.User, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.User{}, domainerrors.ErrProfileNotFound
	}
	return s.Repo.GetProfile(ctx, strings.TrimSpace(userID))
}

// UpdateProfile replaces the editable profile fields. The user type and the
// identity key never change here.
func (s Service) UpdateProfile(ctx context.Context, user entities.User) (entities.User, error) {
	logger := s.logger()

	user = normalizeProfile(user)
	existing, err := s.Repo.GetProfile(ctx, user.UserID)
	if err != nil {
		return entities.User{}, err
	}
	if strings.TrimSpace(user.Name) == "" || !entities.ValidUsername(user.Username) {
		return entities.User{}, domainerrors.ErrInvalidProfileInput
	}
	if user.Username != existing.Username {
		taken, err := s.Repo.UsernameExists(ctx, user.Username)
		if err != nil {
			return entities.User{}, err
		}
		if taken {
			return entities.User{}, domainerrors.ErrUsernameTaken
		}
	}

	existing.Name = user.Name
	existing.Username = user.Username
	existing.Region = user.Region
	existing.Interests = user.Interests
	existing.Twitter = user.Twitter
	existing.Instagram = user.Instagram
	existing.YouTube = user.YouTube
	existing.TikTok = user.TikTok
	existing.AvatarURL = user.AvatarURL
	existing.UpdatedAt = s.Clock.Now().UTC()
	if err := s.Repo.UpdateProfile(ctx, existing); err != nil {
		return entities.User{}, err
	}

	logger.Info("profile updated",
		"event", "profile_updated",
		"module", "identity-access/profile-service",
		"layer", "application",
		"user_id", existing.UserID,
	)
	return existing, nil
}

func (s Service) CheckUsername(ctx context.Context, username string) (bool, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if !entities.ValidUsername(username) {
		return false, domainerrors.ErrInvalidProfileInput
	}
	taken, err := s.Repo.UsernameExists(ctx, username)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

var (
	suggestionAdjectives = []string{
		"black", "bright", "calm", "clever", "cosmic", "golden",
		"hidden", "lucky", "quiet", "rapid", "silver", "wild",
	}
	suggestionNouns = []string{
		"contemporary", "falcon", "harbor", "meadow", "nebula",
		"orbit", "pioneer", "river", "signal", "summit",
	}
)

// SuggestUsername produces an adjective-noun-number handle that is free at
// the time of the call.
func (s Service) SuggestUsername(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		candidate := fmt.Sprintf("%s-%s-%d",
			suggestionAdjectives[s.Random.Intn(len(suggestionAdjectives))],
			suggestionNouns[s.Random.Intn(len(suggestionNouns))],
			s.Random.Intn(90)+10,
		)
		taken, err := s.Repo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", domainerrors.ErrUsernameTaken
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func normalizeProfile(user entities.User) entities.User {
	user.UserID = strings.TrimSpace(user.UserID)
	user.Type = entities.UserType(strings.ToLower(strings.TrimSpace(string(user.Type))))
	user.Name = strings.TrimSpace(user.Name)
	user.Username = strings.ToLower(strings.TrimSpace(user.Username))
	user.Region = strings.TrimSpace(user.Region)
	user.Twitter = strings.TrimSpace(user.Twitter)
	user.Instagram = strings.TrimSpace(user.Instagram)
	user.YouTube = strings.TrimSpace(user.YouTube)
	user.TikTok = strings.TrimSpace(user.TikTok)
	user.AvatarURL = strings.TrimSpace(user.AvatarURL)

	interests := make([]string, 0, len(user.Interests))
	for _, interest := range user.Interests {
		if strings.TrimSpace(interest) != "" {
			interests = append(interests, strings.TrimSpace(interest))
		}
	}
	user.Interests = interests
	return user
}
