package httpserver

import (
	"errors"
	"net/http"
	"time"

	ledgerentities "clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	ledgererrors "clout/contexts/campaign-bounty/submission-ledger/domain/errors"
	ledgerports "clout/contexts/campaign-bounty/submission-ledger/ports"
	ledgerhttp "clout/contexts/campaign-bounty/submission-ledger/transport/http"
	"clout/internal/platform/metrics"
)

func (s *Server) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if !s.submitLimiter.Allow(userID) {
		writeError(w, http.StatusTooManyRequests, "rate_limited", "too many submissions, slow down")
		return
	}

	var req ledgerhttp.CreateSubmissionRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.ledger.Handler.CreateSubmissionHandler(r.Context(), userID, r.PathValue("campaign_id"), req)
	if err != nil {
		writeSubmissionDomainError(w, err)
		return
	}
	metrics.SubmissionsCreated.Inc()
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := ledgerports.SubmissionFilter{
		CampaignID:  r.PathValue("campaign_id"),
		SubmitterID: query.Get("submitter_id"),
	}
	if raw := query.Get("status"); raw != "" {
		status := ledgerentities.SubmissionStatus(raw)
		filter.Status = &status
	}
	if raw := query.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_since", "since must be RFC3339")
			return
		}
		filter.CreatedSince = &since
	}

	resp, err := s.ledger.Handler.ListSubmissionsHandler(r.Context(), filter)
	if err != nil {
		writeSubmissionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.GetSubmissionHandler(r.Context(), r.PathValue("submission_id"))
	if err != nil {
		writeSubmissionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeSubmissionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgererrors.ErrSubmissionNotFound):
		writeError(w, http.StatusNotFound, "submission_not_found", err.Error())
	case errors.Is(err, ledgererrors.ErrCampaignNotFound):
		writeError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, ledgererrors.ErrCampaignClosed):
		writeError(w, http.StatusConflict, "campaign_closed", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidSubmissionInput):
		writeError(w, http.StatusUnprocessableEntity, "invalid_submission_input", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidTransition):
		writeError(w, http.StatusUnprocessableEntity, "invalid_transition", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
