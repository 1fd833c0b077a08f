package garden

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	gardenModel "github.com/ScienHAC/ventspace/internal/model/garden"
	"github.com/ScienHAC/ventspace/pkg/utils"
)

// Handler serves the virtual garden and community stats.
type Handler struct {
	store gardenModel.Store
}

// New creates the garden handler.
func New(store gardenModel.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers the garden and stats routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/garden", h.handleGetGarden)
	r.Post("/garden", h.handleGardenAction)
	r.Get("/stats", h.handleStats)
}

func (h *Handler) handleGetGarden(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Snapshot())
}

type actionRequest struct {
	Action   string `json:"action"`
	TreeData struct {
		VentCount int `json:"ventCount"`
	} `json:"treeData"`
}

func (h *Handler) handleGardenAction(w http.ResponseWriter, r *http.Request) {
	var payload actionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Action != "plant_tree" {
		utils.RespondError(w, http.StatusBadRequest, "Invalid action")
		return
	}

	tree := h.store.PlantTree(payload.TreeData.VentCount)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"tree":    tree,
		"message": "Tree planted successfully!",
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Stats())
}
