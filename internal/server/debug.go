package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dirkkok101/roguelike-sub004/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/levels", h.handleListLevels)
	mux.HandleFunc("/debug/actors", h.handleDumpActors)
}

// /debug/levels - список активных этажей.
// Читаем слепки, зафиксированные горутинами инстансов: в живые
// структуры Level хендлер не заглядывает.
func (h *DebugHandler) handleListLevels(w http.ResponseWriter, r *http.Request) {
	type LevelSummary struct {
		Depth      int    `json:"depth"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		ActorCount int    `json:"actor_count"`
		Tick       int    `json:"tick"`
		State      string `json:"state"`
	}

	var summary []LevelSummary

	for depth, inst := range h.Service.InstancesSnapshot() {
		snap := inst.Snapshot()
		summary = append(summary, LevelSummary{
			Depth:      depth,
			Width:      snap.Width,
			Height:     snap.Height,
			ActorCount: len(snap.Actors),
			Tick:       snap.Tick,
			State:      snap.State,
		})
	}

	writeJSON(w, summary)
}

// /debug/actors?depth=1 - дамп акторов этажа из последнего слепка
func (h *DebugHandler) handleDumpActors(w http.ResponseWriter, r *http.Request) {
	depthStr := r.URL.Query().Get("depth")
	var depth int
	fmt.Sscanf(depthStr, "%d", &depth)

	inst, ok := h.Service.InstancesSnapshot()[depth]
	if !ok {
		http.Error(w, "Instance not found", http.StatusNotFound)
		return
	}

	snap := inst.Snapshot()
	if len(snap.Actors) == 0 {
		writeJSON(w, nil)
		return
	}
	writeJSON(w, snap.Actors)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
