package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/echojournal/moodmatch/internal/recommend"
)

// matchTimeout bounds one whole match request, external calls included.
const matchTimeout = 45 * time.Second

// Matcher is the engine surface the handlers need.
type Matcher interface {
	Match(ctx context.Context, text string) (recommend.Outcome, error)
}

// Handlers contains the HTTP handlers for the matching API.
type Handlers struct {
	matcher Matcher
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(matcher Matcher) *Handlers {
	return &Handlers{matcher: matcher}
}

// recommendRequest is the POST /api/recommendations body.
type recommendRequest struct {
	Text string `json:"text"`
}

// recommendResponse maps the engine's outcome variants onto the wire. The
// three variants stay distinguishable: service_unavailable is a 503,
// no_results and ranked are both 200 with different status strings.
type recommendResponse struct {
	RequestID string                  `json:"requestId"`
	Status    string                  `json:"status"`
	Tracks    []recommend.ScoredTrack `json:"tracks,omitempty"`
}

// Health reports liveness (GET /healthz).
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Recommend matches journal text to music (POST /api/recommendations).
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, requestID, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, requestID, http.StatusBadRequest, "text is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchTimeout)
	defer cancel()

	outcome, err := h.matcher.Match(ctx, req.Text)
	if err != nil {
		log.Printf("match %s failed: %v", requestID, err)
		writeError(w, requestID, http.StatusInternalServerError, "mood analysis failed")
		return
	}

	switch outcome.Kind {
	case recommend.OutcomeServiceUnavailable:
		writeJSON(w, http.StatusServiceUnavailable, recommendResponse{
			RequestID: requestID,
			Status:    "service_unavailable",
		})
	case recommend.OutcomeNoResults:
		writeJSON(w, http.StatusOK, recommendResponse{
			RequestID: requestID,
			Status:    "no_results",
		})
	default:
		writeJSON(w, http.StatusOK, recommendResponse{
			RequestID: requestID,
			Status:    "ok",
			Tracks:    outcome.Tracks,
		})
	}
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	RequestID string `json:"requestId"`
	Error     string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, requestID string, status int, msg string) {
	writeJSON(w, status, errorResponse{RequestID: requestID, Error: msg})
}
