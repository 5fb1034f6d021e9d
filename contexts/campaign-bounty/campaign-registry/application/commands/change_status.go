package commands

import (
	"context"
	"log/slog"
	"strings"

	application "clout/contexts/campaign-bounty/campaign-registry/application"
	domainerrors "clout/contexts/campaign-bounty/campaign-registry/domain/errors"
	"clout/contexts/campaign-bounty/campaign-registry/ports"
)

type StatusAction string

const (
	StatusActionClose  StatusAction = "close"
	StatusActionReopen StatusAction = "reopen"
)

type ChangeStatusCommand struct {
	CampaignID string
	ActorID    string
	Action     StatusAction
}

// ChangeStatusUseCase flips a campaign between open-for-submissions and
// closed. A closed campaign rejects new submissions at the ledger boundary.
type ChangeStatusUseCase struct {
	Campaigns ports.CampaignRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) error {
	logger := application.ResolveLogger(uc.Logger)

	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return err
	}
	if campaign.CreatorID != strings.TrimSpace(cmd.ActorID) {
		return domainerrors.ErrNotCampaignOwner
	}

	switch cmd.Action {
	case StatusActionClose:
		campaign.Open = false
	case StatusActionReopen:
		campaign.Open = true
	default:
		return domainerrors.ErrInvalidCampaignInput
	}
	campaign.UpdatedAt = uc.Clock.Now().UTC()

	if err := uc.Campaigns.UpdateCampaignDetails(ctx, campaign); err != nil {
		return err
	}

	logger.Info("campaign status changed",
		"event", "campaign_status_changed",
		"module", "campaign-bounty/campaign-registry",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"open", campaign.Open,
	)
	return nil
}
