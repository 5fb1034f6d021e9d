package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	application "clout/contexts/campaign-bounty/submission-ledger/application"
	"clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	domainerrors "clout/contexts/campaign-bounty/submission-ledger/domain/errors"
	"clout/contexts/campaign-bounty/submission-ledger/ports"
	"clout/internal/shared/outbox"
)

type CreateSubmissionCommand struct {
	CampaignID  string
	SubmitterID string
	ContentURLs []string
}

type CreateSubmissionUseCase struct {
	Submissions ports.SubmissionRepository
	Campaigns   ports.CampaignGate
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute records a pending entry against an open campaign. The campaign
// check happens before any write: a closed or missing campaign leaves no
// submission row and no outbox message behind.
func (uc CreateSubmissionUseCase) Execute(ctx context.Context, cmd CreateSubmissionCommand) (entities.Submission, error) {
	logger := application.ResolveLogger(uc.Logger)

	urls := make([]string, 0, len(cmd.ContentURLs))
	for _, url := range cmd.ContentURLs {
		if strings.TrimSpace(url) != "" {
			urls = append(urls, strings.TrimSpace(url))
		}
	}

	submissionID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Submission{}, err
	}
	now := uc.Clock.Now().UTC()
	submission := entities.Submission{
		SubmissionID: submissionID,
		CampaignID:   strings.TrimSpace(cmd.CampaignID),
		SubmitterID:  strings.TrimSpace(cmd.SubmitterID),
		ContentURLs:  urls,
		Status:       entities.SubmissionStatusPending,
		Paid:         0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if !submission.ValidateCreate() {
		return entities.Submission{}, domainerrors.ErrInvalidSubmissionInput
	}

	open, err := uc.Campaigns.CampaignOpen(ctx, submission.CampaignID)
	if err != nil {
		return entities.Submission{}, err
	}
	if !open {
		return entities.Submission{}, domainerrors.ErrCampaignClosed
	}

	eventID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Submission{}, err
	}
	envelope, err := newSubmissionEnvelope(eventID, TopicSubmissionCreated, submission.SubmissionID, now, map[string]any{
		"submission_id": submission.SubmissionID,
		"campaign_id":   submission.CampaignID,
		"submitter_id":  submission.SubmitterID,
	})
	if err != nil {
		return entities.Submission{}, err
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return entities.Submission{}, err
	}

	message := outbox.Message{
		ID:        eventID,
		EventType: TopicSubmissionCreated,
		Payload:   payload,
		Status:    "pending",
	}
	if err := uc.Submissions.CreateSubmission(ctx, submission, message); err != nil {
		return entities.Submission{}, err
	}

	logger.Info("submission created",
		"event", "submission_created",
		"module", "campaign-bounty/submission-ledger",
		"layer", "application",
		"submission_id", submission.SubmissionID,
		"campaign_id", submission.CampaignID,
		"submitter_id", submission.SubmitterID,
	)
	return submission, nil
}
