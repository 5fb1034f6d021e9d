package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"clout/contexts/campaign-bounty/review-insights/application/queries"
	"clout/contexts/campaign-bounty/review-insights/domain/entities"
	httptransport "clout/contexts/campaign-bounty/review-insights/transport/http"
)

type Handler struct {
	ReviewFeed queries.ReviewFeedUseCase
	Logger     *slog.Logger
}

func (h Handler) ReviewFeedHandler(ctx context.Context, query queries.ReviewFeedQuery) (httptransport.ReviewFeedResponse, error) {
	result, err := h.ReviewFeed.Execute(ctx, query)
	if err != nil {
		return httptransport.ReviewFeedResponse{}, err
	}

	items := make([]httptransport.ReviewRecordDTO, 0, len(result.Records))
	for _, record := range result.Records {
		items = append(items, mapRecord(record))
	}
	return httptransport.ReviewFeedResponse{
		Items: items,
		Summary: httptransport.ReviewSummaryDTO{
			Pending:       result.Summary.Pending,
			Accepted:      result.Summary.Accepted,
			Rejected:      result.Summary.Rejected,
			PayoutsQueued: result.Summary.PayoutsQueued,
		},
	}, nil
}

func mapRecord(record entities.Record) httptransport.ReviewRecordDTO {
	dto := httptransport.ReviewRecordDTO{
		SubmissionID:    record.SubmissionID,
		CampaignID:      record.CampaignID,
		SubmitterID:     record.SubmitterID,
		ContentURLs:     append([]string(nil), record.ContentURLs...),
		Status:          record.Status,
		CreatedAt:       record.CreatedAt.UTC().Format(time.RFC3339),
		EstimatedPayout: record.EstimatedPayout,
	}
	if record.Campaign != nil {
		dto.Campaign = &httptransport.ReviewCampaignDTO{
			CampaignID:           record.Campaign.CampaignID,
			Title:                record.Campaign.Title,
			Description:          record.Campaign.Description,
			MoneyPerMillionViews: record.Campaign.MoneyPerMillionViews,
			Prize:                record.Campaign.Prize,
			TotalViews:           record.Campaign.TotalViews,
			PayoutTier:           entities.TierFor(record.Campaign.MoneyPerMillionViews),
		}
	}
	if record.Submitter != nil {
		dto.Submitter = &httptransport.ReviewSubmitterDTO{
			UserID:   record.Submitter.UserID,
			Username: record.Submitter.Username,
		}
	}
	return dto
}
