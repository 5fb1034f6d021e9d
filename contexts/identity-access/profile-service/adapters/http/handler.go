package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clout/contexts/identity-access/profile-service/application"
	"clout/contexts/identity-access/profile-service/domain/entities"
	domainerrors "clout/contexts/identity-access/profile-service/domain/errors"
	httptransport "clout/contexts/identity-access/profile-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateProfileHandler(
	ctx context.Context,
	userID string,
	req httptransport.CreateProfileRequest,
) (httptransport.ProfileResponse, error) {
	profile, err := h.Service.CreateProfile(ctx, entities.User{
		UserID:    userID,
		Type:      entities.UserType(req.Type),
		Name:      req.Name,
		Username:  req.Username,
		Region:    req.Region,
		Interests: append([]string(nil), req.Interests...),
		Twitter:   req.Twitter,
		Instagram: req.Instagram,
		YouTube:   req.YouTube,
		TikTok:    req.TikTok,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	return httptransport.ProfileResponse{Profile: mapProfile(profile)}, nil
}

func (h Handler) GetProfileHandler(ctx context.Context, userID string) (httptransport.ProfileResponse, error) {
	profile, err := h.Service.GetProfile(ctx, userID)
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	return httptransport.ProfileResponse{Profile: mapProfile(profile)}, nil
}

func (h Handler) UpdateProfileHandler(
	ctx context.Context,
	userID string,
	req httptransport.UpdateProfileRequest,
) (httptransport.ProfileResponse, error) {
	profile, err := h.Service.UpdateProfile(ctx, entities.User{
		UserID:    userID,
		Name:      req.Name,
		Username:  req.Username,
		Region:    req.Region,
		Interests: append([]string(nil), req.Interests...),
		Twitter:   req.Twitter,
		Instagram: req.Instagram,
		YouTube:   req.YouTube,
		TikTok:    req.TikTok,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	return httptransport.ProfileResponse{Profile: mapProfile(profile)}, nil
}

// CheckUsernameHandler answers availability and, when the handle is taken,
// offers a free suggestion in the same response.
func (h Handler) CheckUsernameHandler(ctx context.Context, username string) (httptransport.UsernameAvailabilityResponse, error) {
	available, err := h.Service.CheckUsername(ctx, username)
	if err != nil {
		return httptransport.UsernameAvailabilityResponse{}, err
	}
	result := httptransport.UsernameAvailabilityResponse{
		Username:  username,
		Available: available,
	}
	if !available {
		suggested, err := h.Service.SuggestUsername(ctx)
		if err != nil && !errors.Is(err, domainerrors.ErrUsernameTaken) {
			return httptransport.UsernameAvailabilityResponse{}, err
		}
		result.Suggested = suggested
	}
	return result, nil
}

func mapProfile(item entities.User) httptransport.ProfileDTO {
	return httptransport.ProfileDTO{
		UserID:    item.UserID,
		Type:      string(item.Type),
		Name:      item.Name,
		Username:  item.Username,
		Region:    item.Region,
		Interests: append([]string(nil), item.Interests...),
		Twitter:   item.Twitter,
		Instagram: item.Instagram,
		YouTube:   item.YouTube,
		TikTok:    item.TikTok,
		AvatarURL: item.AvatarURL,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
