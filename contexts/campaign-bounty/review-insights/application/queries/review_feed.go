package queries

import (
	"context"
	"fmt"
	"log/slog"

	registryports "clout/contexts/campaign-bounty/campaign-registry/ports"
	"clout/contexts/campaign-bounty/review-insights/domain/entities"
	"clout/contexts/campaign-bounty/review-insights/ports"
	ledgerentities "clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	ledgerports "clout/contexts/campaign-bounty/submission-ledger/ports"

	"golang.org/x/sync/singleflight"
)

type ReviewFeedQuery struct {
	Status string
	Search string
	Tier   string
	Window string
}

type ReviewFeedResult struct {
	Records []entities.Record
	Summary entities.Summary
}

// ReviewFeedUseCase builds the admin review view: every submission joined
// with its campaign and submitter, summarized and filtered. Concurrent
// identical requests share one fetch through the singleflight group.
type ReviewFeedUseCase struct {
	Submissions ports.SubmissionSource
	Campaigns   ports.CampaignSource
	Profiles    ports.ProfileSource
	Clock       ports.Clock
	Group       *singleflight.Group
	Logger      *slog.Logger
}

func (uc ReviewFeedUseCase) Execute(ctx context.Context, query ReviewFeedQuery) (ReviewFeedResult, error) {
	if uc.Group == nil {
		return uc.execute(ctx, query)
	}
	key := fmt.Sprintf("review|%s|%s|%s|%s", query.Status, query.Search, query.Tier, query.Window)
	value, err, _ := uc.Group.Do(key, func() (any, error) {
		return uc.execute(ctx, query)
	})
	if err != nil {
		return ReviewFeedResult{}, err
	}
	return value.(ReviewFeedResult), nil
}

func (uc ReviewFeedUseCase) execute(ctx context.Context, query ReviewFeedQuery) (ReviewFeedResult, error) {
	submissions, err := uc.Submissions.ListSubmissions(ctx, ledgerports.SubmissionFilter{})
	if err != nil {
		return ReviewFeedResult{}, err
	}
	campaigns, err := uc.Campaigns.ListCampaigns(ctx, registryports.CampaignFilter{})
	if err != nil {
		return ReviewFeedResult{}, err
	}

	campaignByID := make(map[string]entities.CampaignInfo, len(campaigns))
	for _, campaign := range campaigns {
		campaignByID[campaign.CampaignID] = entities.CampaignInfo{
			CampaignID:           campaign.CampaignID,
			Title:                campaign.Title,
			Description:          campaign.Description,
			MoneyPerMillionViews: campaign.MoneyPerMillionViews,
			Prize:                campaign.Prize,
			TotalViews:           campaign.TotalViews,
		}
	}

	submitterIDs := make([]string, 0, len(submissions))
	seen := make(map[string]bool, len(submissions))
	for _, submission := range submissions {
		if !seen[submission.SubmitterID] {
			seen[submission.SubmitterID] = true
			submitterIDs = append(submitterIDs, submission.SubmitterID)
		}
	}
	profiles, err := uc.Profiles.ListProfilesByIDs(ctx, submitterIDs)
	if err != nil {
		return ReviewFeedResult{}, err
	}
	submitterByID := make(map[string]entities.SubmitterInfo, len(profiles))
	for _, profile := range profiles {
		submitterByID[profile.UserID] = entities.SubmitterInfo{
			UserID:   profile.UserID,
			Username: profile.Username,
		}
	}

	records := make([]entities.Record, 0, len(submissions))
	for _, submission := range submissions {
		record := entities.Record{
			SubmissionID: submission.SubmissionID,
			CampaignID:   submission.CampaignID,
			SubmitterID:  submission.SubmitterID,
			ContentURLs:  append([]string(nil), submission.ContentURLs...),
			Status:       string(submission.Status),
			CreatedAt:    submission.CreatedAt,
		}
		if campaign, ok := campaignByID[submission.CampaignID]; ok {
			info := campaign
			record.Campaign = &info
			record.EstimatedPayout = ledgerentities.EstimatedPayout(info.TotalViews, info.MoneyPerMillionViews)
		}
		if submitter, ok := submitterByID[submission.SubmitterID]; ok {
			info := submitter
			record.Submitter = &info
		}
		records = append(records, record)
	}

	// The summary always covers the whole collection; only the returned
	// rows shrink under the filter.
	summary := entities.Summarize(records)
	filtered := entities.ApplyFilter(records, entities.Filter{
		Status: query.Status,
		Search: query.Search,
		Tier:   query.Tier,
		Window: query.Window,
	}, uc.Clock.Now().UTC())

	return ReviewFeedResult{
		Records: filtered,
		Summary: summary,
	}, nil
}
