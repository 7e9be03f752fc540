package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/PreranaYekkele/CalmBot/internal/app/dialogue"
	"github.com/PreranaYekkele/CalmBot/internal/domain"
	"github.com/PreranaYekkele/CalmBot/internal/observability"
)

type Server struct {
	engine     *dialogue.Engine
	activities domain.ActivityStore
	now        func() domain.Timestamp
}

func NewServer(engine *dialogue.Engine, activities domain.ActivityStore, now func() domain.Timestamp) http.Handler {
	s := &Server{engine: engine, activities: activities, now: now}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/activities/{type}", s.handleActivity)
	mux.HandleFunc("GET /api/stats", s.handleStats)

	return chainMiddlewares(mux, withCORS, withLogging, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type activityRequest struct {
	SessionID string `json:"session_id"`
	Action    string `json:"action,omitempty"`
}

type activityResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type statsResponse struct {
	BreathingExercises int `json:"breathing_exercises"`
	JournalEntries     int `json:"journal_entries"`
	MoodChecks         int `json:"mood_checks"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	// The boundary validates presence; the engine assumes valid strings.
	if strings.TrimSpace(req.SessionID) == "" {
		badRequest(w, "session_id is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		badRequest(w, "message is required")
		return
	}

	response, err := s.engine.Respond(r.Context(), domain.SessionID(req.SessionID), req.Message)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Error("chat failed", "error", err)
		chatError(w)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response:  response,
		SessionID: req.SessionID,
	})
}

var breathingMessages = map[string]string{
	"start":    "Let's begin. Focus on the circle - breathe in as it expands, out as it contracts.",
	"complete": "How are you feeling now? Remember, you can return to this breathing exercise anytime.",
	"end":      "Well done. Taking time to breathe mindfully can really help. Would you like to share how you're feeling?",
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	activityType, ok := parseActivityType(r.PathValue("type"))
	if !ok {
		badRequest(w, "unknown activity type")
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		badRequest(w, "session_id is required")
		return
	}

	activity := &domain.Activity{
		SessionID: domain.SessionID(req.SessionID),
		Type:      activityType,
		Timestamp: s.now(),
	}
	if err := s.activities.RecordActivity(r.Context(), activity); err != nil {
		observability.LoggerFromContext(r.Context()).Error("failed to record activity",
			"type", activityType, "error", err)
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, activityResponse{
		Status:  "success",
		Message: activityMessage(activityType, req.Action),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	breathing, err := s.activities.CountByType(ctx, domain.ActivityBreathing)
	if err != nil {
		internalError(w)
		return
	}
	gratitude, err := s.activities.CountByType(ctx, domain.ActivityGratitude)
	if err != nil {
		internalError(w)
		return
	}
	mood, err := s.activities.CountByType(ctx, domain.ActivityMood)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		BreathingExercises: breathing,
		JournalEntries:     gratitude,
		MoodChecks:         mood,
	})
}

// ─────────────────────────────────────────────
// Activity helpers
// ─────────────────────────────────────────────

func parseActivityType(s string) (domain.ActivityType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "breathing":
		return domain.ActivityBreathing, true
	case "mood":
		return domain.ActivityMood, true
	case "gratitude":
		return domain.ActivityGratitude, true
	default:
		return "", false
	}
}

func activityMessage(t domain.ActivityType, action string) string {
	switch t {
	case domain.ActivityBreathing:
		if msg, ok := breathingMessages[action]; ok {
			return msg
		}
		return breathingMessages["complete"]
	case domain.ActivityMood:
		return "Thank you for sharing how you're feeling. Would you like to talk about it?"
	case domain.ActivityGratitude:
		return "Thank you for sharing what you're grateful for. Acknowledging these positive aspects can really help our mental well-being. Would you like to explore these feelings further?"
	default:
		return "Activity recorded."
	}
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

// chatError keeps the conversational contract: even the failure path
// speaks in supportive text.
func chatError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "An error occurred processing your message",
		"message": "I apologize, but I had trouble understanding that. Could you rephrase?",
	})
}

func internalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}
