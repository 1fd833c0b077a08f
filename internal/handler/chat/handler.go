package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	chatModel "github.com/ScienHAC/ventspace/internal/model/chat"
	ventService "github.com/ScienHAC/ventspace/internal/service/vent"
	"github.com/ScienHAC/ventspace/pkg/utils"
)

// Handler serves the vent chat endpoints.
type Handler struct {
	ventSvc *ventService.Service
}

// New creates the chat handler.
func New(ventSvc *ventService.Service) *Handler {
	return &Handler{ventSvc: ventSvc}
}

// RegisterRoutes registers the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/chat/ws", h.handleWebSocket)
}

type chatRequest struct {
	Message             string           `json:"message"`
	Text                string           `json:"text"`
	ConversationHistory []chatModel.Turn `json:"conversationHistory"`
}

// handleChat analyzes one vent and replies. A distressed user must never
// see a broken chat, so unexpected internal faults still produce a 200 with
// a supportive fallback body.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[chat] recovered from internal fault: %v", rec)
			utils.RespondJSON(w, http.StatusOK, map[string]any{
				"response":        h.ventSvc.Responder().EmergencyReply(),
				"mood":            "supportive",
				"confidence":      0.8,
				"needsHelp":       false,
				"treeContributed": true,
				"source":          ventService.SourceEmergency,
			})
		}
	}()

	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	message := payload.Message
	if message == "" {
		message = payload.Text
	}
	if strings.TrimSpace(message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	result := h.ventSvc.Process(r.Context(), message, payload.ConversationHistory)
	utils.RespondJSON(w, http.StatusOK, result)
}
