package httpserver

import (
	"errors"
	"net/http"

	waitlisterrors "clout/contexts/community/waitlist-service/domain/errors"
	waitlisthttp "clout/contexts/community/waitlist-service/transport/http"
)

func (s *Server) handleJoinWaitlist(w http.ResponseWriter, r *http.Request) {
	var req waitlisthttp.JoinWaitlistRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.waitlist.Handler.JoinHandler(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, waitlisterrors.ErrInvalidEmail):
			writeError(w, http.StatusUnprocessableEntity, "invalid_email", err.Error())
		case errors.Is(err, waitlisterrors.ErrAlreadyJoined):
			writeError(w, http.StatusConflict, "already_joined", err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
