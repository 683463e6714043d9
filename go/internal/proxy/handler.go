package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/johnnyknox/leaderboard/go/clients"
	"github.com/rs/zerolog/log"
)

// Route is where the relay is mounted
const Route = "/api/leaderboard"

// FailureMessage is the only error text callers ever see
const FailureMessage = "Failed to fetch remote data"

// Upstream fetches the raw leaderboard body
type Upstream interface {
	GetReferralLeaderboardRaw(ctx context.Context, affiliateCode string) ([]byte, error)
}

// ErrorResponse is the body returned with a 500
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler relays GET /api/leaderboard to the affiliate API, one outbound
// request per inbound request. No retries, no caching.
type Handler struct {
	upstream      Upstream
	affiliateCode string
}

// NewHandler creates a new proxy handler
func NewHandler(upstream Upstream, affiliateCode string) *Handler {
	return &Handler{
		upstream:      upstream,
		affiliateCode: affiliateCode,
	}
}

// ServeHTTP handles GET /api/leaderboard
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.New().String()

	body, err := h.upstream.GetReferralLeaderboardRaw(r.Context(), h.affiliateCode)
	if err != nil {
		event := log.Error().Err(err).Str("request_id", requestID)
		var statusErr *clients.StatusError
		if errors.As(err, &statusErr) {
			event = event.Int("upstream_status", statusErr.StatusCode)
		}
		event.Msg("failed to fetch leaderboard from upstream")

		writeError(w, http.StatusInternalServerError, FailureMessage)
		return
	}

	if !json.Valid(body) {
		log.Error().
			Str("request_id", requestID).
			Int("bytes", len(body)).
			Msg("upstream returned a non-JSON body")
		writeError(w, http.StatusInternalServerError, FailureMessage)
		return
	}

	log.Debug().
		Str("request_id", requestID).
		Int("bytes", len(body)).
		Msg("relayed leaderboard")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("request_id", requestID).Msg("failed to write leaderboard response")
	}
}

// RegisterRoutes mounts the relay on the mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle(Route, h)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		log.Error().Err(err).Msg("failed to encode error response")
	}
}
