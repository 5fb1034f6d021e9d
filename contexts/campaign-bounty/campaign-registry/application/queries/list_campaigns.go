package queries

import (
	"context"
	"log/slog"

	application "clout/contexts/campaign-bounty/campaign-registry/application"
	"clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	"clout/contexts/campaign-bounty/campaign-registry/ports"
)

type ListCampaignsQuery struct {
	CreatorID string
	OpenOnly  *bool
}

type ListCampaignsUseCase struct {
	Campaigns ports.CampaignRepository
	Logger    *slog.Logger
}

// Execute returns campaigns newest-created first. An empty result is an
// empty slice, never an error.
func (uc ListCampaignsUseCase) Execute(ctx context.Context, query ListCampaignsQuery) ([]entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)
	items, err := uc.Campaigns.ListCampaigns(ctx, ports.CampaignFilter{
		CreatorID: query.CreatorID,
		OpenOnly:  query.OpenOnly,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("campaigns listed",
		"event", "campaigns_listed",
		"module", "campaign-bounty/campaign-registry",
		"layer", "application",
		"count", len(items),
	)
	return items, nil
}
