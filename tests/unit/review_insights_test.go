package unit

import (
	"context"
	"testing"
	"time"

	registryentities "clout/contexts/campaign-bounty/campaign-registry/domain/entities"
	reviewinsights "clout/contexts/campaign-bounty/review-insights"
	"clout/contexts/campaign-bounty/review-insights/application/queries"
	ledgerentities "clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	profileentities "clout/contexts/identity-access/profile-service/domain/entities"
)

func reviewFixtureModule() reviewinsights.Module {
	campaigns := []registryentities.Campaign{
		{
			CampaignID:           "campaign-ai",
			CreatorID:            "creator-1",
			Title:                "AI Shorts Bounty",
			Description:          "Clip the keynote into shorts",
			MoneyPerMillionViews: 600,
			Prize:                150,
			TotalViews:           2_500_000,
			Open:                 true,
		},
		{
			CampaignID:           "campaign-cook",
			CreatorID:            "creator-2",
			Title:                "Cooking Clips",
			Description:          "Best kitchen moments",
			MoneyPerMillionViews: 250,
			Prize:                200,
			TotalViews:           1_234_567,
			Open:                 true,
		},
		{
			CampaignID:           "campaign-vlog",
			CreatorID:            "creator-3",
			Title:                "Indie Vlog",
			Description:          "Slice of life",
			MoneyPerMillionViews: 50,
			Prize:                75,
			Open:                 true,
		},
	}
	submissions := []ledgerentities.Submission{
		{
			SubmissionID: "submission-1",
			CampaignID:   "campaign-ai",
			SubmitterID:  "user-1",
			ContentURLs:  []string{"https://tiktok.com/@clip-master/video/1"},
			Status:       ledgerentities.SubmissionStatusPending,
			CreatedAt:    time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC),
		},
		{
			SubmissionID: "submission-2",
			CampaignID:   "campaign-ai",
			SubmitterID:  "user-2",
			ContentURLs:  []string{"https://tiktok.com/@night-owl/video/2"},
			Status:       ledgerentities.SubmissionStatusApproved,
			CreatedAt:    time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			SubmissionID: "submission-3",
			CampaignID:   "campaign-cook",
			SubmitterID:  "user-1",
			ContentURLs:  []string{"https://tiktok.com/@clip-master/video/3"},
			Status:       ledgerentities.SubmissionStatusApproved,
			CreatedAt:    time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			SubmissionID: "submission-4",
			CampaignID:   "campaign-vlog",
			SubmitterID:  "user-3",
			ContentURLs:  []string{"https://tiktok.com/@sunny-side/video/4"},
			Status:       ledgerentities.SubmissionStatusRejected,
			CreatedAt:    time.Date(2025, 5, 31, 9, 0, 0, 0, time.UTC),
		},
	}
	profiles := []profileentities.User{
		{UserID: "user-1", Type: profileentities.UserTypeClipper, Name: "Clip Master", Username: "clip-master"},
		{UserID: "user-2", Type: profileentities.UserTypeClipper, Name: "Night Owl", Username: "night-owl"},
		{UserID: "user-3", Type: profileentities.UserTypeClipper, Name: "Sunny Side", Username: "sunny-side"},
	}
	return reviewinsights.NewInMemoryModule(submissions, campaigns, profiles, nil)
}

func TestReviewFeedSummaryCountsAndPayouts(t *testing.T) {
	module := reviewFixtureModule()

	resp, err := module.Handler.ReviewFeedHandler(context.Background(), queries.ReviewFeedQuery{})
	if err != nil {
		t.Fatalf("review feed failed: %v", err)
	}
	if len(resp.Items) != 4 {
		t.Fatalf("expected 4 records, got %d", len(resp.Items))
	}
	summary := resp.Summary
	if summary.Pending != 1 || summary.Accepted != 2 || summary.Rejected != 1 {
		t.Fatalf("unexpected summary counts %+v", summary)
	}
	// Queued payouts sum campaign prizes over approved rows: 150 + 200.
	if summary.PayoutsQueued != 350 {
		t.Fatalf("expected payouts queued 350, got %v", summary.PayoutsQueued)
	}
}

func TestReviewFeedSummaryUnaffectedByFilter(t *testing.T) {
	module := reviewFixtureModule()

	resp, err := module.Handler.ReviewFeedHandler(context.Background(), queries.ReviewFeedQuery{Status: "approved"})
	if err != nil {
		t.Fatalf("review feed failed: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 approved records, got %d", len(resp.Items))
	}
	// Filters shrink the rows, never the totals.
	if resp.Summary.Pending != 1 || resp.Summary.Accepted != 2 || resp.Summary.Rejected != 1 || resp.Summary.PayoutsQueued != 350 {
		t.Fatalf("expected full summary under filter, got %+v", resp.Summary)
	}
}

func TestReviewFeedSearchIsCaseInsensitive(t *testing.T) {
	module := reviewFixtureModule()

	resp, err := module.Handler.ReviewFeedHandler(context.Background(), queries.ReviewFeedQuery{Search: "ai"})
	if err != nil {
		t.Fatalf("review feed failed: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 matches for 'ai', got %d", len(resp.Items))
	}
	for _, item := range resp.Items {
		if item.CampaignID != "campaign-ai" {
			t.Fatalf("unexpected match %s", item.CampaignID)
		}
	}

	// Username search reaches the submitter lookup.
	resp, err = module.Handler.ReviewFeedHandler(context.Background(), queries.ReviewFeedQuery{Search: "SUNNY"})
	if err != nil {
		t.Fatalf("review feed failed: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].SubmissionID != "submission-4" {
		t.Fatalf("expected submission-4 for username search, got %+v", resp.Items)
	}
}

func TestReviewFeedTierAndWindowFilters(t *testing.T) {
	module := reviewFixtureModule()

	resp, err := module.Handler.ReviewFeedHandler(context.Background(), queries.ReviewFeedQuery{Tier: "high"})
	if err != nil {
		t.Fatalf("review feed failed: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 high tier records, got %d", len(resp.Items))
	}

	resp, err = module.Handler.ReviewFeedHandler(context.Background(), queries.ReviewFeedQuery{Tier: "low"})
	if err != nil {
		t.Fatalf("review feed failed: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].SubmissionID != "submission-4" {
		t.Fatalf("expected only the vlog record in low tier, got %+v", resp.Items)
	}

	// The in-memory clock sits just after 2025-06-01; the April submission
	// falls outside both windows.
	resp, err = module.Handler.ReviewFeedHandler(context.Background(), queries.ReviewFeedQuery{Window: "7d"})
	if err != nil {
		t.Fatalf("review feed failed: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 records in 7d window, got %d", len(resp.Items))
	}
	resp, err = module.Handler.ReviewFeedHandler(context.Background(), queries.ReviewFeedQuery{Window: "30d"})
	if err != nil {
		t.Fatalf("review feed failed: %v", err)
	}
	if len(resp.Items) != 3 {
		t.Fatalf("expected 3 records in 30d window, got %d", len(resp.Items))
	}
}

func TestReviewFeedEstimatedPayoutRounding(t *testing.T) {
	module := reviewFixtureModule()

	resp, err := module.Handler.ReviewFeedHandler(context.Background(), queries.ReviewFeedQuery{})
	if err != nil {
		t.Fatalf("review feed failed: %v", err)
	}
	byID := make(map[string]float64, len(resp.Items))
	for _, item := range resp.Items {
		byID[item.SubmissionID] = item.EstimatedPayout
	}
	// campaign-ai: 2.5M views at 600 per million.
	if byID["submission-1"] != 1500 {
		t.Fatalf("expected estimated payout 1500, got %v", byID["submission-1"])
	}
	// campaign-cook: 1,234,567 views at 250 per million rounds to cents.
	if byID["submission-3"] != 308.64 {
		t.Fatalf("expected estimated payout 308.64, got %v", byID["submission-3"])
	}
}

func TestReviewFeedToleratesMissingLookups(t *testing.T) {
	submissions := []ledgerentities.Submission{
		{
			SubmissionID: "submission-orphan",
			CampaignID:   "campaign-gone",
			SubmitterID:  "user-gone",
			ContentURLs:  []string{"https://tiktok.com/@ghost/video/1"},
			Status:       ledgerentities.SubmissionStatusApproved,
			CreatedAt:    time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC),
		},
	}
	module := reviewinsights.NewInMemoryModule(submissions, nil, nil, nil)

	resp, err := module.Handler.ReviewFeedHandler(context.Background(), queries.ReviewFeedQuery{})
	if err != nil {
		t.Fatalf("review feed failed: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected the orphan record, got %d", len(resp.Items))
	}
	record := resp.Items[0]
	if record.Campaign != nil || record.Submitter != nil {
		t.Fatalf("expected nil lookups for orphan record")
	}
	if record.EstimatedPayout != 0 {
		t.Fatalf("expected zero payout without campaign, got %v", record.EstimatedPayout)
	}
	// Approved without a campaign still counts, but queues no prize.
	if resp.Summary.Accepted != 1 || resp.Summary.PayoutsQueued != 0 {
		t.Fatalf("unexpected summary %+v", resp.Summary)
	}

	// Search never matches a record whose lookups are gone.
	resp, err = module.Handler.ReviewFeedHandler(context.Background(), queries.ReviewFeedQuery{Search: "ghost"})
	if err != nil {
		t.Fatalf("review feed failed: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Fatalf("expected no matches, got %d", len(resp.Items))
	}
}
