package entities

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to SubmissionStatus }{
		{SubmissionStatusPending, SubmissionStatusApproved},
		{SubmissionStatusPending, SubmissionStatusRejected},
		{SubmissionStatusApproved, SubmissionStatusPending},
		{SubmissionStatusRejected, SubmissionStatusPending},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to SubmissionStatus }{
		{SubmissionStatusApproved, SubmissionStatusRejected},
		{SubmissionStatusRejected, SubmissionStatusApproved},
		{SubmissionStatusPending, SubmissionStatusPending},
		{SubmissionStatusApproved, SubmissionStatusApproved},
		{SubmissionStatusRejected, SubmissionStatusRejected},
		{SubmissionStatus("weird"), SubmissionStatusPending},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestEstimatedPayoutRoundsToCents(t *testing.T) {
	cases := []struct {
		views int64
		rate  float64
		want  float64
	}{
		{2_500_000, 100, 250},
		{1_234_567, 250, 308.64},
		{333_333, 300, 100},
		{1, 100, 0},
		{0, 600, 0},
	}
	for _, tc := range cases {
		got := EstimatedPayout(tc.views, tc.rate)
		if got != tc.want {
			t.Fatalf("EstimatedPayout(%d, %v) = %v, want %v", tc.views, tc.rate, got, tc.want)
		}
	}
}

func TestValidateCreate(t *testing.T) {
	good := Submission{
		CampaignID:  "campaign-1",
		SubmitterID: "clipper-1",
		ContentURLs: []string{"https://tiktok.com/@clipper/video/1"},
	}
	if !good.ValidateCreate() {
		t.Fatalf("expected valid submission")
	}

	noURLs := good
	noURLs.ContentURLs = nil
	if noURLs.ValidateCreate() {
		t.Fatalf("expected submission without urls to be invalid")
	}

	blankURL := good
	blankURL.ContentURLs = []string{"https://ok.example", "   "}
	if blankURL.ValidateCreate() {
		t.Fatalf("expected blank url to be invalid")
	}

	noCampaign := good
	noCampaign.CampaignID = " "
	if noCampaign.ValidateCreate() {
		t.Fatalf("expected blank campaign to be invalid")
	}
}
