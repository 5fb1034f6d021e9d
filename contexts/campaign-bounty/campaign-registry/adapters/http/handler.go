package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"clout/contexts/campaign-bounty/campaign-registry/application/commands"
	"clout/contexts/campaign-bounty/campaign-registry/application/queries"
	"clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	httptransport "clout/contexts/campaign-bounty/campaign-registry/transport/http"
)

type Handler struct {
	CreateCampaign          commands.CreateCampaignUseCase
	UpdateCampaign          commands.UpdateCampaignUseCase
	ChangeStatus            commands.ChangeStatusUseCase
	GenerateBannerUploadURL commands.GenerateBannerUploadURLUseCase
	ListCampaigns           queries.ListCampaignsUseCase
	GetCampaign             queries.GetCampaignUseCase
	Logger                  *slog.Logger
}

func (h Handler) CreateCampaignHandler(
	ctx context.Context,
	userID string,
	req httptransport.CreateCampaignRequest,
) (httptransport.CreateCampaignResponse, error) {
	result, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		CreatorID:            userID,
		Title:                req.Title,
		Description:          req.Description,
		ImageURL:             req.ImageURL,
		ExternalURL:          req.ExternalURL,
		MoneyPerMillionViews: req.MoneyPerMillionViews,
		ContentTypeTags:      append([]string(nil), req.ContentTypeTags...),
		CategoryTags:         append([]string(nil), req.CategoryTags...),
	})
	if err != nil {
		return httptransport.CreateCampaignResponse{}, err
	}
	return httptransport.CreateCampaignResponse{Campaign: mapCampaign(result.Campaign)}, nil
}

func (h Handler) UpdateCampaignHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	req httptransport.UpdateCampaignRequest,
) error {
	return h.UpdateCampaign.Execute(ctx, commands.UpdateCampaignCommand{
		CampaignID:           campaignID,
		ActorID:              userID,
		Title:                req.Title,
		Description:          req.Description,
		ImageURL:             req.ImageURL,
		ExternalURL:          req.ExternalURL,
		MoneyPerMillionViews: req.MoneyPerMillionViews,
		ContentTypeTags:      append([]string(nil), req.ContentTypeTags...),
		CategoryTags:         append([]string(nil), req.CategoryTags...),
	})
}

func (h Handler) CloseCampaignHandler(ctx context.Context, userID string, campaignID string) error {
	return h.ChangeStatus.Execute(ctx, commands.ChangeStatusCommand{
		CampaignID: campaignID,
		ActorID:    userID,
		Action:     commands.StatusActionClose,
	})
}

func (h Handler) ReopenCampaignHandler(ctx context.Context, userID string, campaignID string) error {
	return h.ChangeStatus.Execute(ctx, commands.ChangeStatusCommand{
		CampaignID: campaignID,
		ActorID:    userID,
		Action:     commands.StatusActionReopen,
	})
}

func (h Handler) GenerateBannerUploadURLHandler(
	ctx context.Context,
	userID string,
	req httptransport.GenerateBannerUploadURLRequest,
) (httptransport.GenerateBannerUploadURLResponse, error) {
	result, err := h.GenerateBannerUploadURL.Execute(ctx, commands.GenerateBannerUploadURLCommand{
		ActorID:     userID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
	})
	if err != nil {
		return httptransport.GenerateBannerUploadURLResponse{}, err
	}
	return httptransport.GenerateBannerUploadURLResponse{
		UploadURL: result.UploadURL,
		PublicURL: result.PublicURL,
		AssetPath: result.AssetPath,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (h Handler) ListCampaignsHandler(
	ctx context.Context,
	creatorID string,
	openOnly *bool,
) (httptransport.ListCampaignsResponse, error) {
	items, err := h.ListCampaigns.Execute(ctx, queries.ListCampaignsQuery{
		CreatorID: creatorID,
		OpenOnly:  openOnly,
	})
	if err != nil {
		return httptransport.ListCampaignsResponse{}, err
	}
	result := make([]httptransport.CampaignDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapCampaign(item))
	}
	return httptransport.ListCampaignsResponse{Items: result}, nil
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignID string) (httptransport.GetCampaignResponse, error) {
	item, err := h.GetCampaign.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.GetCampaignResponse{}, err
	}
	return httptransport.GetCampaignResponse{Campaign: mapCampaign(item)}, nil
}

func mapCampaign(item entities.Campaign) httptransport.CampaignDTO {
	return httptransport.CampaignDTO{
		CampaignID:           item.CampaignID,
		CreatorID:            item.CreatorID,
		Title:                item.Title,
		Description:          item.Description,
		ImageURL:             item.ImageURL,
		ExternalURL:          item.ExternalURL,
		MoneyPerMillionViews: item.MoneyPerMillionViews,
		Prize:                item.Prize,
		Paid:                 item.Paid,
		TotalViews:           item.TotalViews,
		ContentTypeTags:      append([]string(nil), item.ContentTypeTags...),
		CategoryTags:         append([]string(nil), item.CategoryTags...),
		Open:                 item.Open,
		Entries:              item.Entries,
		PayoutTier:           string(entities.PayoutTierFor(item.MoneyPerMillionViews)),
		CreatedAt:            item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:            item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
