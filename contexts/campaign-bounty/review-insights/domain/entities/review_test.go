package entities

import (
	"testing"
	"time"
)

func fixtureRecords(now time.Time) []Record {
	return []Record{
		{
			SubmissionID: "submission-1",
			Status:       StatusPending,
			CreatedAt:    now.Add(-2 * 24 * time.Hour),
			Campaign:     &CampaignInfo{CampaignID: "campaign-1", Title: "AI Shorts", MoneyPerMillionViews: 600, Prize: 150},
			Submitter:    &SubmitterInfo{UserID: "user-1", Username: "clip-master"},
		},
		{
			SubmissionID: "submission-2",
			Status:       StatusApproved,
			CreatedAt:    now.Add(-20 * 24 * time.Hour),
			Campaign:     &CampaignInfo{CampaignID: "campaign-1", Title: "AI Shorts", MoneyPerMillionViews: 600, Prize: 150},
			Submitter:    &SubmitterInfo{UserID: "user-2", Username: "night-owl"},
		},
		{
			SubmissionID: "submission-3",
			Status:       StatusApproved,
			CreatedAt:    now.Add(-40 * 24 * time.Hour),
			Campaign:     &CampaignInfo{CampaignID: "campaign-2", Title: "Cooking Clips", MoneyPerMillionViews: 250, Prize: 200},
		},
		{
			SubmissionID: "submission-4",
			Status:       StatusRejected,
			CreatedAt:    now.Add(-time.Hour),
		},
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	summary := Summarize(fixtureRecords(now))

	if summary.Pending != 1 || summary.Accepted != 2 || summary.Rejected != 1 {
		t.Fatalf("unexpected counts %+v", summary)
	}
	if summary.PayoutsQueued != 350 {
		t.Fatalf("expected queued payouts 350, got %v", summary.PayoutsQueued)
	}
}

func TestSummarizeSkipsPrizeForVanishedCampaign(t *testing.T) {
	summary := Summarize([]Record{{Status: StatusApproved}})
	if summary.Accepted != 1 {
		t.Fatalf("expected the orphan to count, got %+v", summary)
	}
	if summary.PayoutsQueued != 0 {
		t.Fatalf("expected no queued prize for nil campaign, got %v", summary.PayoutsQueued)
	}
}

func TestApplyFilterNeverMutatesInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records := fixtureRecords(now)

	filtered := ApplyFilter(records, Filter{Status: StatusApproved, Tier: TierHigh}, now)
	if len(filtered) != 1 || filtered[0].SubmissionID != "submission-2" {
		t.Fatalf("unexpected filter result %+v", filtered)
	}
	if len(records) != 4 {
		t.Fatalf("expected input untouched, got %d records", len(records))
	}

	again := ApplyFilter(records, Filter{Status: StatusApproved, Tier: TierHigh}, now)
	if len(again) != len(filtered) {
		t.Fatalf("expected stable result on reapply, got %d then %d", len(filtered), len(again))
	}
}

func TestApplyFilterWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records := fixtureRecords(now)

	week := ApplyFilter(records, Filter{Window: WindowWeek}, now)
	if len(week) != 2 {
		t.Fatalf("expected 2 records in 7d window, got %d", len(week))
	}
	month := ApplyFilter(records, Filter{Window: WindowMonth}, now)
	if len(month) != 3 {
		t.Fatalf("expected 3 records in 30d window, got %d", len(month))
	}
	all := ApplyFilter(records, Filter{Window: WindowAll}, now)
	if len(all) != 4 {
		t.Fatalf("expected every record for all window, got %d", len(all))
	}
}

func TestApplyFilterSearchAndNilLookups(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records := fixtureRecords(now)

	matched := ApplyFilter(records, Filter{Search: "AI"}, now)
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches for 'AI', got %d", len(matched))
	}
	byUser := ApplyFilter(records, Filter{Search: "night"}, now)
	if len(byUser) != 1 || byUser[0].SubmissionID != "submission-2" {
		t.Fatalf("expected username match, got %+v", byUser)
	}
	// submission-4 has neither lookup; search can never match it.
	none := ApplyFilter(records[3:], Filter{Search: "anything"}, now)
	if len(none) != 0 {
		t.Fatalf("expected no matches on nil lookups, got %d", len(none))
	}
	// No campaign means rate zero, which lands in the low tier.
	low := ApplyFilter(records, Filter{Tier: TierLow}, now)
	if len(low) != 1 || low[0].SubmissionID != "submission-4" {
		t.Fatalf("expected the orphan in low tier, got %+v", low)
	}
}
