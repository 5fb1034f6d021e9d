package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"clout/contexts/community/waitlist-service/application"
	"clout/contexts/community/waitlist-service/domain/entities"
	httptransport "clout/contexts/community/waitlist-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) JoinHandler(ctx context.Context, req httptransport.JoinWaitlistRequest) (httptransport.JoinWaitlistResponse, error) {
	entry, err := h.Service.Join(ctx, req.Email)
	if err != nil {
		return httptransport.JoinWaitlistResponse{}, err
	}
	return httptransport.JoinWaitlistResponse{Entry: mapEntry(entry)}, nil
}

func (h Handler) ListHandler(ctx context.Context) (httptransport.ListWaitlistResponse, error) {
	items, err := h.Service.List(ctx)
	if err != nil {
		return httptransport.ListWaitlistResponse{}, err
	}
	result := make([]httptransport.WaitlistEntryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapEntry(item))
	}
	return httptransport.ListWaitlistResponse{Items: result}, nil
}

func mapEntry(item entities.Entry) httptransport.WaitlistEntryDTO {
	return httptransport.WaitlistEntryDTO{
		EntryID:   item.EntryID,
		Email:     item.Email,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
	}
}
