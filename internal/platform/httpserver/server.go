package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	campaignregistry "clout/contexts/campaign-bounty/campaign-registry"
	reviewinsights "clout/contexts/campaign-bounty/review-insights"
	submissionledger "clout/contexts/campaign-bounty/submission-ledger"
	waitlistservice "clout/contexts/community/waitlist-service"
	authorization "clout/contexts/identity-access/authorization-service"
	profileservice "clout/contexts/identity-access/profile-service"
	_ "clout/internal/platform/httpserver/docs"
	"clout/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	registry      campaignregistry.Module
	ledger        submissionledger.Module
	review        reviewinsights.Module
	profiles      profileservice.Module
	authorization authorization.Module
	waitlist      waitlistservice.Module
	submitLimiter *submitLimiter
}

type Modules struct {
	Registry      campaignregistry.Module
	Ledger        submissionledger.Module
	Review        reviewinsights.Module
	Profiles      profileservice.Module
	Authorization authorization.Module
	Waitlist      waitlistservice.Module
}

func New(
	modules Modules,
	limiter *submitLimiter,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}
	if limiter == nil {
		limiter = NewSubmitLimiter(10, 3)
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		registry:      modules.Registry,
		ledger:        modules.Ledger,
		review:        modules.Review,
		profiles:      modules.Profiles,
		authorization: modules.Authorization,
		waitlist:      modules.Waitlist,
		submitLimiter: limiter,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.Handle("GET /metrics", promhttp.Handler())

	s.handle("GET /api/v1/campaigns", "campaigns_list", s.handleListCampaigns)
	s.handle("POST /api/v1/campaigns", "campaigns_create", s.handleCreateCampaign)
	s.handle("POST /api/v1/campaigns/banner-upload-url", "campaigns_banner_upload", s.handleBannerUploadURL)
	s.handle("GET /api/v1/campaigns/{campaign_id}", "campaigns_get", s.handleGetCampaign)
	s.handle("PUT /api/v1/campaigns/{campaign_id}", "campaigns_update", s.handleUpdateCampaign)
	s.handle("POST /api/v1/campaigns/{campaign_id}/close", "campaigns_close", s.handleCloseCampaign)
	s.handle("POST /api/v1/campaigns/{campaign_id}/reopen", "campaigns_reopen", s.handleReopenCampaign)

	s.handle("POST /api/v1/campaigns/{campaign_id}/submissions", "submissions_create", s.handleCreateSubmission)
	s.handle("GET /api/v1/campaigns/{campaign_id}/submissions", "submissions_list", s.handleListSubmissions)
	s.handle("GET /api/v1/submissions/{submission_id}", "submissions_get", s.handleGetSubmission)

	s.handle("GET /api/v1/admin/review", "admin_review", s.handleReviewFeed)
	s.handle("POST /api/v1/admin/submissions/{submission_id}/accept", "admin_accept", s.handleAcceptSubmission)
	s.handle("POST /api/v1/admin/submissions/{submission_id}/reject", "admin_reject", s.handleRejectSubmission)
	s.handle("POST /api/v1/admin/submissions/{submission_id}/revert", "admin_revert", s.handleRevertSubmission)
	s.handle("GET /api/v1/admin/waitlist", "admin_waitlist", s.handleListWaitlist)

	s.handle("POST /api/v1/onboarding/profiles", "onboarding_create_profile", s.handleCreateProfile)
	s.handle("GET /api/v1/profiles/{user_id}", "profiles_get", s.handleGetProfile)
	s.handle("PUT /api/v1/profiles/{user_id}", "profiles_update", s.handleUpdateProfile)
	s.handle("GET /api/v1/usernames/{username}/availability", "usernames_check", s.handleCheckUsername)

	s.handle("POST /api/v1/waitlist", "waitlist_join", s.handleJoinWaitlist)
}

// handle wraps a route with latency instrumentation.
func (s *Server) handle(pattern string, route string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		handler(recorder, r)
		metrics.RecordRequestDuration(route, strconv.Itoa(recorder.status), time.Since(started).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return "", false
	}
	return userID, true
}
