package commands

import (
	"context"
	"log/slog"
	"strings"

	application "clout/contexts/campaign-bounty/campaign-registry/application"
	"clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	domainerrors "clout/contexts/campaign-bounty/campaign-registry/domain/errors"
	"clout/contexts/campaign-bounty/campaign-registry/ports"
)

type CreateCampaignCommand struct {
	CreatorID            string
	Title                string
	Description          string
	ImageURL             string
	ExternalURL          string
	MoneyPerMillionViews float64
	ContentTypeTags      []string
	CategoryTags         []string
}

type CreateCampaignUseCase struct {
	Campaigns   ports.CampaignRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type CreateCampaignResult struct {
	Campaign entities.Campaign
}

func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (CreateCampaignResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.CreatorID) == "" {
		return CreateCampaignResult{}, domainerrors.ErrNotCampaignOwner
	}

	if fieldErrs := validateCampaignInput(cmd.Title, cmd.Description, cmd.MoneyPerMillionViews,
		cmd.ContentTypeTags, cmd.CategoryTags, cmd.ImageURL, true); len(fieldErrs) > 0 {
		return CreateCampaignResult{}, fieldErrs
	}

	campaignID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return CreateCampaignResult{}, err
	}

	now := uc.Clock.Now().UTC()
	campaign := entities.Campaign{
		CampaignID:           campaignID,
		CreatorID:            strings.TrimSpace(cmd.CreatorID),
		Title:                strings.TrimSpace(cmd.Title),
		Description:          strings.TrimSpace(cmd.Description),
		ImageURL:             strings.TrimSpace(cmd.ImageURL),
		ExternalURL:          strings.TrimSpace(cmd.ExternalURL),
		MoneyPerMillionViews: cmd.MoneyPerMillionViews,
		Prize:                0,
		Paid:                 0,
		TotalViews:           0,
		ContentTypeTags:      append([]string(nil), cmd.ContentTypeTags...),
		CategoryTags:         append([]string(nil), cmd.CategoryTags...),
		Open:                 true,
		Entries:              0,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := uc.Campaigns.CreateCampaign(ctx, campaign); err != nil {
		return CreateCampaignResult{}, err
	}

	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "campaign-bounty/campaign-registry",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"creator_id", campaign.CreatorID,
	)
	return CreateCampaignResult{Campaign: campaign}, nil
}

// validateCampaignInput collects every failing field so the caller can show
// them all at once instead of fixing one at a time.
func validateCampaignInput(
	title string,
	description string,
	moneyPerMillionViews float64,
	contentTypeTags []string,
	categoryTags []string,
	imageURL string,
	requireImage bool,
) domainerrors.FieldErrors {
	fieldErrs := domainerrors.FieldErrors{}

	if strings.TrimSpace(title) == "" {
		fieldErrs["title"] = "title is required"
	}
	if strings.TrimSpace(description) == "" {
		fieldErrs["description"] = "description is required"
	}
	if moneyPerMillionViews <= 0 {
		fieldErrs["money_per_million_views"] = "rate must be a positive amount"
	}
	if len(contentTypeTags) == 0 {
		fieldErrs["content_type_tags"] = "select at least one content type"
	} else if !entities.AllSupportedContentTypes(contentTypeTags) {
		fieldErrs["content_type_tags"] = "unsupported content type"
	}
	if !entities.AllSupportedCategories(categoryTags) {
		fieldErrs["category_tags"] = "unsupported category"
	}
	if requireImage && strings.TrimSpace(imageURL) == "" {
		fieldErrs["image"] = "campaign image is required"
	}
	return fieldErrs
}
