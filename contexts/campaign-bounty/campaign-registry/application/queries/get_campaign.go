package queries

import (
	"context"
	"log/slog"
	"strings"

	"clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	domainerrors "clout/contexts/campaign-bounty/campaign-registry/domain/errors"
	"clout/contexts/campaign-bounty/campaign-registry/ports"
)

type GetCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

func (uc GetCampaignUseCase) Execute(ctx context.Context, campaignID string) (entities.Campaign, error) {
	if strings.TrimSpace(campaignID) == "" {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(campaignID))
}
