package commands

import (
	"context"
	"log/slog"
	"strings"

	application "clout/contexts/campaign-bounty/campaign-registry/application"
	domainerrors "clout/contexts/campaign-bounty/campaign-registry/domain/errors"
	"clout/contexts/campaign-bounty/campaign-registry/ports"
)

type UpdateCampaignCommand struct {
	CampaignID           string
	ActorID              string
	Title                string
	Description          string
	ImageURL             string
	ExternalURL          string
	MoneyPerMillionViews float64
	ContentTypeTags      []string
	CategoryTags         []string
}

type UpdateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc UpdateCampaignUseCase) Execute(ctx context.Context, cmd UpdateCampaignCommand) error {
	logger := application.ResolveLogger(uc.Logger)

	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return err
	}
	if campaign.CreatorID != strings.TrimSpace(cmd.ActorID) {
		return domainerrors.ErrNotCampaignOwner
	}

	// Editing keeps the existing banner when the payload carries none.
	imageURL := strings.TrimSpace(cmd.ImageURL)
	if imageURL == "" {
		imageURL = campaign.ImageURL
	}

	if fieldErrs := validateCampaignInput(cmd.Title, cmd.Description, cmd.MoneyPerMillionViews,
		cmd.ContentTypeTags, cmd.CategoryTags, imageURL, false); len(fieldErrs) > 0 {
		return fieldErrs
	}

	campaign.Title = strings.TrimSpace(cmd.Title)
	campaign.Description = strings.TrimSpace(cmd.Description)
	campaign.ImageURL = imageURL
	campaign.ExternalURL = strings.TrimSpace(cmd.ExternalURL)
	campaign.MoneyPerMillionViews = cmd.MoneyPerMillionViews
	campaign.ContentTypeTags = append([]string(nil), cmd.ContentTypeTags...)
	campaign.CategoryTags = append([]string(nil), cmd.CategoryTags...)
	campaign.UpdatedAt = uc.Clock.Now().UTC()

	if err := uc.Campaigns.UpdateCampaignDetails(ctx, campaign); err != nil {
		return err
	}

	logger.Info("campaign updated",
		"event", "campaign_updated",
		"module", "campaign-bounty/campaign-registry",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"creator_id", campaign.CreatorID,
	)
	return nil
}
