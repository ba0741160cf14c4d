package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// DebugHandler предоставляет доступ к внутреннему состоянию сессий
type DebugHandler struct {
	Registry *Registry
}

func NewDebugHandler(r *Registry) *DebugHandler {
	return &DebugHandler{Registry: r}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/sessions", h.handleListSessions)
	mux.HandleFunc("/debug/grid", h.handleGrid)
	mux.HandleFunc("/debug/state", h.handleState)
}

// /debug/sessions - список активных партий с их сводками
func (h *DebugHandler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	summaries := h.Registry.Summaries()
	if len(summaries) == 0 {
		writeJSON(w, nil)
		return
	}
	writeJSON(w, summaries)
}

// /debug/grid?session=ID - карта партии в ASCII, как её помнит игрок
func (h *DebugHandler) handleGrid(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(strings.Join(session.RenderAscii(), "\n") + "\n")); err != nil {
		return
	}
}

// /debug/state?session=ID - полный снимок партии в том виде,
// в каком его получил бы клиент
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, session.Snapshot())
}

func (h *DebugHandler) lookup(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := r.URL.Query().Get("session")
	session, ok := h.Registry.Get(id)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (например, нет сессий), возвращаем пустой массив [], а не null
	if data == nil {
		if _, err := w.Write([]byte("[]")); err != nil {
			return
		}
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return
	}
}
