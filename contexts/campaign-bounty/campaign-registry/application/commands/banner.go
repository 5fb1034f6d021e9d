package commands

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	application "clout/contexts/campaign-bounty/campaign-registry/application"
	domainerrors "clout/contexts/campaign-bounty/campaign-registry/domain/errors"
	"clout/contexts/campaign-bounty/campaign-registry/ports"
)

const bannerUploadTTL = 15 * time.Minute

type GenerateBannerUploadURLCommand struct {
	ActorID     string
	FileName    string
	ContentType string
}

type GenerateBannerUploadURLResult struct {
	UploadURL string
	PublicURL string
	AssetPath string
	ExpiresAt time.Time
}

// GenerateBannerUploadURLUseCase hands the browser a signed upload target.
// The record only ever stores the resulting public URL; if the later record
// write fails the caller treats the whole create as one logical failure and
// the orphaned object ages out of the bucket.
type GenerateBannerUploadURLUseCase struct {
	Storage     ports.BannerStorage
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc GenerateBannerUploadURLUseCase) Execute(ctx context.Context, cmd GenerateBannerUploadURLCommand) (GenerateBannerUploadURLResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.ActorID) == "" {
		return GenerateBannerUploadURLResult{}, domainerrors.ErrInvalidBannerUpload
	}
	contentType := strings.TrimSpace(cmd.ContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return GenerateBannerUploadURLResult{}, domainerrors.ErrInvalidBannerUpload
	}
	ext := strings.ToLower(path.Ext(strings.TrimSpace(cmd.FileName)))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return GenerateBannerUploadURLResult{}, domainerrors.ErrInvalidBannerUpload
	}

	assetID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return GenerateBannerUploadURLResult{}, err
	}
	assetPath := "campaigns/banners/" + assetID + ext
	expiresAt := uc.Clock.Now().UTC().Add(bannerUploadTTL)

	uploadURL, err := uc.Storage.SignUploadURL(ctx, assetPath, contentType, expiresAt)
	if err != nil {
		return GenerateBannerUploadURLResult{}, err
	}

	logger.Info("banner upload url issued",
		"event", "banner_upload_url_issued",
		"module", "campaign-bounty/campaign-registry",
		"layer", "application",
		"asset_path", assetPath,
	)
	return GenerateBannerUploadURLResult{
		UploadURL: uploadURL,
		PublicURL: uc.Storage.PublicURL(assetPath),
		AssetPath: assetPath,
		ExpiresAt: expiresAt,
	}, nil
}
