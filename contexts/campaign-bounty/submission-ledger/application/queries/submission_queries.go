package queries

import (
	"context"
	"log/slog"
	"strings"

	"clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	domainerrors "clout/contexts/campaign-bounty/submission-ledger/domain/errors"
	"clout/contexts/campaign-bounty/submission-ledger/ports"
)

type ListSubmissionsUseCase struct {
	Submissions ports.SubmissionRepository
	Logger      *slog.Logger
}

// Execute returns submissions matching the filter, newest first. An empty
// result is an empty slice, never an error.
func (uc ListSubmissionsUseCase) Execute(ctx context.Context, filter ports.SubmissionFilter) ([]entities.Submission, error) {
	return uc.Submissions.ListSubmissions(ctx, filter)
}

type GetSubmissionUseCase struct {
	Submissions ports.SubmissionRepository
	Logger      *slog.Logger
}

func (uc GetSubmissionUseCase) Execute(ctx context.Context, submissionID string) (entities.Submission, error) {
	if strings.TrimSpace(submissionID) == "" {
		return entities.Submission{}, domainerrors.ErrSubmissionNotFound
	}
	return uc.Submissions.GetSubmission(ctx, strings.TrimSpace(submissionID))
}
