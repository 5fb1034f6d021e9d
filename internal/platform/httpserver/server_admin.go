package httpserver

import (
	"errors"
	"net/http"

	reviewqueries "clout/contexts/campaign-bounty/review-insights/application/queries"
	ledgerentities "clout/contexts/campaign-bounty/submission-ledger/domain/entities"
	autherrors "clout/contexts/identity-access/authorization-service/domain/errors"
	authports "clout/contexts/identity-access/authorization-service/ports"
	"clout/internal/platform/metrics"
)

// requireAdmin resolves the caller's stored role and rejects anything but
// admin before the handler touches a moderation surface.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get("X-User-Id")
	err := s.authorization.Guard.Authorize(r.Context(), userID, authports.RoleAdmin)
	if err == nil {
		return userID, true
	}
	switch {
	case errors.Is(err, autherrors.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, autherrors.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
	return "", false
}

func (s *Server) handleReviewFeed(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	query := r.URL.Query()
	resp, err := s.review.Handler.ReviewFeedHandler(r.Context(), reviewqueries.ReviewFeedQuery{
		Status: query.Get("status"),
		Search: query.Get("search"),
		Tier:   query.Get("tier"),
		Window: query.Get("window"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAcceptSubmission(w http.ResponseWriter, r *http.Request) {
	s.handleModerationDecision(w, r, "accept", ledgerentities.SubmissionStatusApproved)
}

func (s *Server) handleRejectSubmission(w http.ResponseWriter, r *http.Request) {
	s.handleModerationDecision(w, r, "reject", ledgerentities.SubmissionStatusRejected)
}

func (s *Server) handleRevertSubmission(w http.ResponseWriter, r *http.Request) {
	s.handleModerationDecision(w, r, "revert", ledgerentities.SubmissionStatusPending)
}

func (s *Server) handleModerationDecision(
	w http.ResponseWriter,
	r *http.Request,
	decision string,
	target ledgerentities.SubmissionStatus,
) {
	adminID, ok := s.requireAdmin(w, r)
	if !ok {
		metrics.RecordModerationDecision(decision, "denied")
		return
	}

	resp, err := s.ledger.Handler.SetStatusHandler(r.Context(), adminID, r.PathValue("submission_id"), target)
	if err != nil {
		metrics.RecordModerationDecision(decision, "failed")
		writeSubmissionDomainError(w, err)
		return
	}
	metrics.RecordModerationDecision(decision, "applied")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListWaitlist(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}
	resp, err := s.waitlist.Handler.ListHandler(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
