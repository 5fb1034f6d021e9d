package httpserver

import (
	"errors"
	"net/http"

	profileerrors "clout/contexts/identity-access/profile-service/domain/errors"
	profilehttp "clout/contexts/identity-access/profile-service/transport/http"
)

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req profilehttp.CreateProfileRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.profiles.Handler.CreateProfileHandler(r.Context(), userID, req)
	if err != nil {
		writeProfileDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := s.profiles.Handler.GetProfileHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeProfileDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	// A user edits their own profile; the path id must match the caller.
	if r.PathValue("user_id") != userID {
		writeError(w, http.StatusForbidden, "forbidden", "profiles are self-service")
		return
	}
	var req profilehttp.UpdateProfileRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.profiles.Handler.UpdateProfileHandler(r.Context(), userID, req)
	if err != nil {
		writeProfileDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCheckUsername(w http.ResponseWriter, r *http.Request) {
	resp, err := s.profiles.Handler.CheckUsernameHandler(r.Context(), r.PathValue("username"))
	if err != nil {
		writeProfileDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeProfileDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profileerrors.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "profile_not_found", err.Error())
	case errors.Is(err, profileerrors.ErrProfileExists):
		writeError(w, http.StatusConflict, "profile_exists", err.Error())
	case errors.Is(err, profileerrors.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "username_taken", err.Error())
	case errors.Is(err, profileerrors.ErrInvalidProfileInput):
		writeError(w, http.StatusUnprocessableEntity, "invalid_profile_input", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
