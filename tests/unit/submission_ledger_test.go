package unit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	submissionledger "clout/contexts/campaign-bounty/submission-ledger"
	"clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	domainerrors "clout/contexts/campaign-bounty/submission-ledger/domain/errors"
	"clout/contexts/campaign-bounty/submission-ledger/ports"
	httptransport "clout/contexts/campaign-bounty/submission-ledger/transport/http"
	"clout/internal/shared/events"
)

func TestSubmissionCreateWritesRowAndOutboxTogether(t *testing.T) {
	module := submissionledger.NewInMemoryModule(nil, nil)
	module.Store.SetCampaignOpen("campaign-1", true)

	created, err := module.Handler.CreateSubmissionHandler(context.Background(), "clipper-1", "campaign-1", httptransport.CreateSubmissionRequest{
		ContentURLs: []string{"https://tiktok.com/@clipper/video/1"},
	})
	if err != nil {
		t.Fatalf("create submission failed: %v", err)
	}
	if created.Submission.Status != string(entities.SubmissionStatusPending) {
		t.Fatalf("expected pending, got %s", created.Submission.Status)
	}

	pending, err := module.Store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one outbox row, got %d", len(pending))
	}
	if pending[0].EventType != "submission.created" {
		t.Fatalf("unexpected event type %s", pending[0].EventType)
	}

	var envelope events.Envelope
	if err := json.Unmarshal(pending[0].Payload, &envelope); err != nil {
		t.Fatalf("decode envelope failed: %v", err)
	}
	var payload struct {
		SubmissionID string `json:"submission_id"`
		CampaignID   string `json:"campaign_id"`
	}
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		t.Fatalf("decode payload failed: %v", err)
	}
	if payload.SubmissionID != created.Submission.SubmissionID {
		t.Fatalf("expected outbox for %s, got %s", created.Submission.SubmissionID, payload.SubmissionID)
	}
	if payload.CampaignID != "campaign-1" {
		t.Fatalf("expected campaign-1, got %s", payload.CampaignID)
	}
}

func TestSubmissionClosedCampaignLeavesNoTrace(t *testing.T) {
	module := submissionledger.NewInMemoryModule(nil, nil)
	module.Store.SetCampaignOpen("campaign-closed", false)

	_, err := module.Handler.CreateSubmissionHandler(context.Background(), "clipper-1", "campaign-closed", httptransport.CreateSubmissionRequest{
		ContentURLs: []string{"https://tiktok.com/@clipper/video/2"},
	})
	if !errors.Is(err, domainerrors.ErrCampaignClosed) {
		t.Fatalf("expected campaign closed, got %v", err)
	}

	items, err := module.Handler.ListSubmissionsHandler(context.Background(), ports.SubmissionFilter{})
	if err != nil {
		t.Fatalf("list submissions failed: %v", err)
	}
	if len(items.Items) != 0 {
		t.Fatalf("expected no rows after rejected create, got %d", len(items.Items))
	}
	pending, err := module.Store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no outbox rows, got %d", len(pending))
	}

	_, err = module.Handler.CreateSubmissionHandler(context.Background(), "clipper-1", "campaign-unknown", httptransport.CreateSubmissionRequest{
		ContentURLs: []string{"https://tiktok.com/@clipper/video/3"},
	})
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected campaign not found, got %v", err)
	}
}

func TestSubmissionCreateValidatesURLs(t *testing.T) {
	module := submissionledger.NewInMemoryModule(nil, nil)
	module.Store.SetCampaignOpen("campaign-1", true)

	_, err := module.Handler.CreateSubmissionHandler(context.Background(), "clipper-1", "campaign-1", httptransport.CreateSubmissionRequest{})
	if !errors.Is(err, domainerrors.ErrInvalidSubmissionInput) {
		t.Fatalf("expected invalid input for empty urls, got %v", err)
	}
	_, err = module.Handler.CreateSubmissionHandler(context.Background(), "clipper-1", "campaign-1", httptransport.CreateSubmissionRequest{
		ContentURLs: []string{"  "},
	})
	if !errors.Is(err, domainerrors.ErrInvalidSubmissionInput) {
		t.Fatalf("expected invalid input for blank url, got %v", err)
	}
}

func TestSubmissionModerationStateMachine(t *testing.T) {
	module := submissionledger.NewInMemoryModule(nil, nil)
	module.Store.SetCampaignOpen("campaign-1", true)

	created, err := module.Handler.CreateSubmissionHandler(context.Background(), "clipper-1", "campaign-1", httptransport.CreateSubmissionRequest{
		ContentURLs: []string{"https://tiktok.com/@clipper/video/1"},
	})
	if err != nil {
		t.Fatalf("create submission failed: %v", err)
	}
	id := created.Submission.SubmissionID

	approved, err := module.Handler.SetStatusHandler(context.Background(), "admin-1", id, entities.SubmissionStatusApproved)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Submission.Status != string(entities.SubmissionStatusApproved) {
		t.Fatalf("expected approved, got %s", approved.Submission.Status)
	}

	// Decided rows only ever move back to pending, never sideways.
	_, err = module.Handler.SetStatusHandler(context.Background(), "admin-1", id, entities.SubmissionStatusRejected)
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition approved->rejected, got %v", err)
	}
	_, err = module.Handler.SetStatusHandler(context.Background(), "admin-1", id, entities.SubmissionStatusApproved)
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition approved->approved, got %v", err)
	}

	reverted, err := module.Handler.SetStatusHandler(context.Background(), "admin-1", id, entities.SubmissionStatusPending)
	if err != nil {
		t.Fatalf("revert failed: %v", err)
	}
	if reverted.Submission.Status != string(entities.SubmissionStatusPending) {
		t.Fatalf("expected pending after revert, got %s", reverted.Submission.Status)
	}

	if _, err := module.Handler.SetStatusHandler(context.Background(), "admin-1", id, entities.SubmissionStatusRejected); err != nil {
		t.Fatalf("reject after revert failed: %v", err)
	}

	_, err = module.Handler.SetStatusHandler(context.Background(), "admin-1", "submission-missing", entities.SubmissionStatusApproved)
	if !errors.Is(err, domainerrors.ErrSubmissionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSubmissionListFiltersByStatus(t *testing.T) {
	module := submissionledger.NewInMemoryModule(nil, nil)
	module.Store.SetCampaignOpen("campaign-1", true)

	first, err := module.Handler.CreateSubmissionHandler(context.Background(), "clipper-1", "campaign-1", httptransport.CreateSubmissionRequest{
		ContentURLs: []string{"https://tiktok.com/@clipper/video/1"},
	})
	if err != nil {
		t.Fatalf("create submission failed: %v", err)
	}
	if _, err := module.Handler.CreateSubmissionHandler(context.Background(), "clipper-2", "campaign-1", httptransport.CreateSubmissionRequest{
		ContentURLs: []string{"https://tiktok.com/@other/video/2"},
	}); err != nil {
		t.Fatalf("create submission failed: %v", err)
	}
	if _, err := module.Handler.SetStatusHandler(context.Background(), "admin-1", first.Submission.SubmissionID, entities.SubmissionStatusApproved); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	pendingStatus := entities.SubmissionStatusPending
	listed, err := module.Handler.ListSubmissionsHandler(context.Background(), ports.SubmissionFilter{
		CampaignID: "campaign-1",
		Status:     &pendingStatus,
	})
	if err != nil {
		t.Fatalf("list submissions failed: %v", err)
	}
	if len(listed.Items) != 1 {
		t.Fatalf("expected one pending row, got %d", len(listed.Items))
	}
	if listed.Items[0].SubmitterID != "clipper-2" {
		t.Fatalf("expected clipper-2 pending, got %s", listed.Items[0].SubmitterID)
	}
}
