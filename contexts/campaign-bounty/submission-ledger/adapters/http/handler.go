package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"clout/contexts/campaign-bounty/submission-ledger/application/commands"
	"clout/contexts/campaign-bounty/submission-ledger/application/queries"
	"clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	"clout/contexts/campaign-bounty/submission-ledger/ports"
	httptransport "clout/contexts/campaign-bounty/submission-ledger/transport/http"
)

type Handler struct {
	CreateSubmission commands.CreateSubmissionUseCase
	SetStatus        commands.SetStatusUseCase
	ListSubmissions  queries.ListSubmissionsUseCase
	GetSubmission    queries.GetSubmissionUseCase
	Logger           *slog.Logger
}

func (h Handler) CreateSubmissionHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	req httptransport.CreateSubmissionRequest,
) (httptransport.CreateSubmissionResponse, error) {
	submission, err := h.CreateSubmission.Execute(ctx, commands.CreateSubmissionCommand{
		CampaignID:  campaignID,
		SubmitterID: userID,
		ContentURLs: append([]string(nil), req.ContentURLs...),
	})
	if err != nil {
		return httptransport.CreateSubmissionResponse{}, err
	}
	return httptransport.CreateSubmissionResponse{Submission: mapSubmission(submission)}, nil
}

func (h Handler) SetStatusHandler(
	ctx context.Context,
	actorID string,
	submissionID string,
	target entities.SubmissionStatus,
) (httptransport.SetStatusResponse, error) {
	submission, err := h.SetStatus.Execute(ctx, commands.SetStatusCommand{
		SubmissionID: submissionID,
		ActorID:      actorID,
		Target:       target,
	})
	if err != nil {
		return httptransport.SetStatusResponse{}, err
	}
	return httptransport.SetStatusResponse{Submission: mapSubmission(submission)}, nil
}

func (h Handler) ListSubmissionsHandler(
	ctx context.Context,
	filter ports.SubmissionFilter,
) (httptransport.ListSubmissionsResponse, error) {
	items, err := h.ListSubmissions.Execute(ctx, filter)
	if err != nil {
		return httptransport.ListSubmissionsResponse{}, err
	}
	result := make([]httptransport.SubmissionDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapSubmission(item))
	}
	return httptransport.ListSubmissionsResponse{Items: result}, nil
}

func (h Handler) GetSubmissionHandler(ctx context.Context, submissionID string) (httptransport.GetSubmissionResponse, error) {
	item, err := h.GetSubmission.Execute(ctx, submissionID)
	if err != nil {
		return httptransport.GetSubmissionResponse{}, err
	}
	return httptransport.GetSubmissionResponse{Submission: mapSubmission(item)}, nil
}

func mapSubmission(item entities.Submission) httptransport.SubmissionDTO {
	return httptransport.SubmissionDTO{
		SubmissionID: item.SubmissionID,
		CampaignID:   item.CampaignID,
		SubmitterID:  item.SubmitterID,
		ContentURLs:  append([]string(nil), item.ContentURLs...),
		Status:       string(item.Status),
		Paid:         item.Paid,
		CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
