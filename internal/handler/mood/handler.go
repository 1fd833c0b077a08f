package mood

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ScienHAC/ventspace/internal/analysis/sentiment"
	moodModel "github.com/ScienHAC/ventspace/internal/model/mood"
	"github.com/ScienHAC/ventspace/pkg/utils"
)

// Handler serves mood check-in logging and history.
type Handler struct {
	store *moodModel.Store
}

// New creates the mood handler.
func New(store *moodModel.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers the mood routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/mood", h.handleLogMood)
	r.Get("/mood", h.handleHistory)
}

type logRequest struct {
	Message   string `json:"message"`
	Text      string `json:"text"`
	Content   string `json:"content"`
	Mood      string `json:"mood"`
	Intensity int    `json:"intensity"`
	Timestamp string `json:"timestamp"`
}

// handleLogMood records a mood check-in. When free text is present the
// analyzer detects a mood; an explicit mood field wins over the detection.
func (h *Handler) handleLogMood(w http.ResponseWriter, r *http.Request) {
	var payload logRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := payload.Message
	if text == "" {
		text = payload.Text
	}
	if text == "" {
		text = payload.Content
	}

	timestamp := payload.Timestamp
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	detected := sentiment.Assessment{Mood: sentiment.Neutral, Confidence: 0.5}
	if text != "" {
		detected = sentiment.Analyze(text)
	}

	finalMood := payload.Mood
	if finalMood == "" {
		finalMood = string(detected.Mood)
	}

	entry := h.store.Log(moodModel.Entry{
		Date:      timestamp,
		Mood:      finalMood,
		Intensity: payload.Intensity,
		Notes:     truncate(text, 100),
	})

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Mood logged successfully",
		"data": map[string]any{
			"id":           entry.ID,
			"mood":         finalMood,
			"confidence":   detected.Confidence,
			"intensity":    payload.Intensity,
			"timestamp":    timestamp,
			"needsHelp":    detected.NeedsHelp,
			"originalText": truncate(text, 100),
		},
	})
}

// handleHistory returns logged mood entries, oldest first.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    h.store.Recent(),
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
