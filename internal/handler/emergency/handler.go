package emergency

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ScienHAC/ventspace/pkg/utils"
)

// Handler serves the crisis-resource endpoint. It always succeeds: when
// someone reaches for emergency support the last thing they need is a
// validation error.
type Handler struct{}

// New creates the emergency handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes registers the emergency route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/emergency", h.handleActivate)
}

// Resource is one crisis support contact.
type Resource struct {
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Available string `json:"available"`
}

func resources() []Resource {
	return []Resource{
		{Name: "Crisis Text Line", Contact: "Text HOME to 741741", Available: "24/7"},
		{Name: "National Suicide Prevention Lifeline", Contact: "988", Available: "24/7"},
		{Name: "SAMHSA National Helpline", Contact: "1-800-662-4357", Available: "24/7"},
	}
}

func immediateActions() []string {
	return []string{
		"Take deep breaths",
		"Find a safe space",
		"Reach out to a trusted person",
		"Contact emergency services if in immediate danger",
	}
}

type activateRequest struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Location  string `json:"location"`
}

func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	var payload activateRequest
	// Body is optional; ignore malformed input and respond with resources anyway.
	_ = json.NewDecoder(r.Body).Decode(&payload)

	timestamp := payload.Timestamp
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	location := payload.Location
	if location == "" {
		location = "unknown"
	}

	log.Printf("[emergency] support activated: type=%s location=%s", payload.Type, location)

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Emergency support activated",
		"emergency": map[string]any{
			"id":               uuid.NewString(),
			"type":             payload.Type,
			"timestamp":        timestamp,
			"status":           "activated",
			"resources":        resources(),
			"immediateActions": immediateActions(),
		},
	})
}
