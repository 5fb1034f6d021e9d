package workers

import (
	"context"
	"log/slog"

	application "clout/contexts/campaign-bounty/campaign-registry/application"
	"clout/contexts/campaign-bounty/campaign-registry/ports"
)

// ReconciliationJob corrects aggregate drift: entries is recounted from the
// submissions table, and total_views is refreshed from the external view
// source when one is wired. Drift can accumulate because moderation writes
// race without a version check and the entries consumer is at-least-once.
type ReconciliationJob struct {
	Counters  ports.CounterRepository
	Campaigns ports.CampaignRepository
	Views     ports.ViewSource
	Clock     ports.Clock
	Limit     int
	Logger    *slog.Logger
}

func (j ReconciliationJob) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)

	corrections, err := j.Counters.RecountEntries(ctx, j.Limit)
	if err != nil {
		return err
	}
	for _, item := range corrections {
		logger.Info("campaign entries reconciled",
			"event", "campaign_entries_reconciled",
			"module", "campaign-bounty/campaign-registry",
			"layer", "application",
			"campaign_id", item.CampaignID,
			"entries_was", item.EntriesWas,
			"entries_now", item.EntriesNow,
		)
	}

	if j.Views == nil {
		return nil
	}

	openOnly := true
	campaigns, err := j.Campaigns.ListCampaigns(ctx, ports.CampaignFilter{OpenOnly: &openOnly})
	if err != nil {
		return err
	}
	now := j.Clock.Now().UTC()
	for _, campaign := range campaigns {
		total, found, err := j.Views.TotalViews(ctx, campaign)
		if err != nil {
			logger.Warn("view source lookup failed",
				"event", "view_refresh_failed",
				"module", "campaign-bounty/campaign-registry",
				"layer", "application",
				"campaign_id", campaign.CampaignID,
				"error", err.Error(),
			)
			continue
		}
		if !found || total == campaign.TotalViews {
			continue
		}
		if err := j.Counters.RefreshTotalViews(ctx, campaign.CampaignID, total, now); err != nil {
			return err
		}
		logger.Info("campaign views refreshed",
			"event", "campaign_views_refreshed",
			"module", "campaign-bounty/campaign-registry",
			"layer", "application",
			"campaign_id", campaign.CampaignID,
			"total_views", total,
		)
	}
	return nil
}
