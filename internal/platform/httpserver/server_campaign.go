package httpserver

import (
	"errors"
	"net/http"

	registryerrors "clout/contexts/campaign-bounty/campaign-registry/domain/errors"
	registryhttp "clout/contexts/campaign-bounty/campaign-registry/transport/http"
)

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var openOnly *bool
	switch query.Get("open") {
	case "true":
		value := true
		openOnly = &value
	case "false":
		value := false
		openOnly = &value
	}

	resp, err := s.registry.Handler.ListCampaignsHandler(r.Context(), query.Get("creator_id"), openOnly)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.GetCampaignHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req registryhttp.CreateCampaignRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.registry.Handler.CreateCampaignHandler(r.Context(), userID, req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req registryhttp.UpdateCampaignRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.registry.Handler.UpdateCampaignHandler(r.Context(), userID, r.PathValue("campaign_id"), req); err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCloseCampaign(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := s.registry.Handler.CloseCampaignHandler(r.Context(), userID, r.PathValue("campaign_id")); err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReopenCampaign(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := s.registry.Handler.ReopenCampaignHandler(r.Context(), userID, r.PathValue("campaign_id")); err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBannerUploadURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req registryhttp.GenerateBannerUploadURLRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.registry.Handler.GenerateBannerUploadURLHandler(r.Context(), userID, req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCampaignDomainError(w http.ResponseWriter, err error) {
	var fieldErrs registryerrors.FieldErrors
	if errors.As(err, &fieldErrs) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Code:    "invalid_campaign_input",
			Message: registryerrors.ErrInvalidCampaignInput.Error(),
			Fields:  fieldErrs,
		})
		return
	}
	switch {
	case errors.Is(err, registryerrors.ErrCampaignNotFound):
		writeError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, registryerrors.ErrNotCampaignOwner):
		writeError(w, http.StatusForbidden, "not_campaign_owner", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidCampaignInput):
		writeError(w, http.StatusUnprocessableEntity, "invalid_campaign_input", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidBannerUpload):
		writeError(w, http.StatusUnprocessableEntity, "invalid_banner_upload", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
