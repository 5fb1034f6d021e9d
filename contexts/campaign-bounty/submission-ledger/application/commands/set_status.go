package commands

import (
	"context"
	"log/slog"
	"strings"

	application "clout/contexts/campaign-bounty/submission-ledger/application"
	"clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	domainerrors "clout/contexts/campaign-bounty/submission-ledger/domain/errors"
	"clout/contexts/campaign-bounty/submission-ledger/ports"
)

type SetStatusCommand struct {
	SubmissionID string
	ActorID      string
	Target       entities.SubmissionStatus
}

// SetStatusUseCase moves a submission along the moderation state machine.
// Approve and reject apply to pending rows only; revert returns a decided
// row to pending. Any other edge, including a no-op to the current status,
// fails with ErrInvalidTransition and leaves the row untouched.
type SetStatusUseCase struct {
	Submissions ports.SubmissionRepository
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (uc SetStatusUseCase) Execute(ctx context.Context, cmd SetStatusCommand) (entities.Submission, error) {
	logger := application.ResolveLogger(uc.Logger)

	switch cmd.Target {
	case entities.SubmissionStatusPending, entities.SubmissionStatusApproved, entities.SubmissionStatusRejected:
	default:
		return entities.Submission{}, domainerrors.ErrInvalidTransition
	}

	submission, err := uc.Submissions.GetSubmission(ctx, strings.TrimSpace(cmd.SubmissionID))
	if err != nil {
		return entities.Submission{}, err
	}
	if !entities.CanTransition(submission.Status, cmd.Target) {
		return entities.Submission{}, domainerrors.ErrInvalidTransition
	}

	previous := submission.Status
	submission.Status = cmd.Target
	submission.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Submissions.UpdateSubmissionStatus(ctx, submission); err != nil {
		return entities.Submission{}, err
	}

	logger.Info("submission status changed",
		"event", "submission_status_changed",
		"module", "campaign-bounty/submission-ledger",
		"layer", "application",
		"submission_id", submission.SubmissionID,
		"actor_id", strings.TrimSpace(cmd.ActorID),
		"status_was", string(previous),
		"status_now", string(submission.Status),
	)
	return submission, nil
}
