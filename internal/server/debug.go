package server

import (
	"encoding/json"
	"net/http"

	"rogue-engine/internal/engine"

	"github.com/go-chi/chi/v5"
)

// DebugHandler предоставляет доступ к состоянию запущенных партий
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(r chi.Router) {
	r.Route("/debug/instances", func(r chi.Router) {
		r.Get("/", h.handleListInstances)
		r.Get("/{id}", h.handleInstance)
	})
}

// /debug/instances - сводки всех живых партий
func (h *DebugHandler) handleListInstances(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Summaries())
}

// /debug/instances/{id} - сводка одной партии
func (h *DebugHandler) handleInstance(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.Service.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Instance not found or not active", http.StatusNotFound)
		return
	}
	writeJSON(w, inst.Summary())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
