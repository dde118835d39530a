package levelstore

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/younwookim/sunnyrun/internal/infrastructure/config"
)

// maxBodySize caps a save request; a 1000x100 level is well under it
const maxBodySize = 8 << 20

// Handler serves the editor's save and load endpoints:
//
//	GET  /level?name=   level JSON
//	GET  /levels        stored level names
//	POST /save?name=    body with all six grids
type Handler struct {
	store       Store
	defaultName string
	mux         *http.ServeMux

	// OnSaved is called after a level was stored
	OnSaved func(name string)
}

// NewHandler creates a handler over store. Requests without a name use
// defaultName.
func NewHandler(store Store, defaultName string) *Handler {
	h := &Handler{store: store, defaultName: defaultName, mux: http.NewServeMux()}
	h.mux.HandleFunc("/level", h.handleLevel)
	h.mux.HandleFunc("/levels", h.handleList)
	h.mux.HandleFunc("/save", h.handleSave)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) name(r *http.Request) string {
	if name := r.URL.Query().Get("name"); name != "" {
		return name
	}
	return h.defaultName
}

func (h *Handler) handleLevel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeText(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	lvl, err := h.store.Load(h.name(r))
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidName):
		writeText(w, http.StatusNotFound, "Not found")
		return
	case err != nil:
		log.Printf("[levelserver] load failed: %v", err)
		writeText(w, http.StatusInternalServerError, "Error loading")
		return
	}
	writeJSON(w, lvl)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeText(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	names, err := h.store.List()
	if err != nil {
		log.Printf("[levelserver] list failed: %v", err)
		writeText(w, http.StatusInternalServerError, "Error loading")
		return
	}
	writeJSON(w, names)
}

// savePayload is the editor's request body. Pointers tell a missing grid
// from an empty one.
type savePayload struct {
	Collisions *[][]int `json:"collisions"`
	Gems       *[][]int `json:"gems"`
	Enemies    *[][]int `json:"enemies"`
	Blockers   *[][]int `json:"blockers"`
	Deaths     *[][]int `json:"deaths"`
	Illusions  *[][]int `json:"illusions"`
}

func (p savePayload) complete() bool {
	for _, g := range []*[][]int{p.Collisions, p.Gems, p.Enemies, p.Blockers, p.Deaths, p.Illusions} {
		if g == nil || *g == nil {
			return false
		}
	}
	return true
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeText(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeText(w, http.StatusBadRequest, "Invalid data")
		return
	}
	var payload savePayload
	if err := json.Unmarshal(body, &payload); err != nil || !payload.complete() {
		writeText(w, http.StatusBadRequest, "Invalid data")
		return
	}

	name := h.name(r)
	if ValidateName(name) != nil {
		writeText(w, http.StatusBadRequest, "Invalid data")
		return
	}

	// Keep the metadata of an existing level; the editor only sends grids.
	lvl, err := h.store.Load(name)
	if err != nil {
		lvl = &config.LevelConfig{ID: name}
	}
	lvl.Collisions = *payload.Collisions
	lvl.Gems = *payload.Gems
	lvl.Enemies = *payload.Enemies
	lvl.Blockers = *payload.Blockers
	lvl.Deaths = *payload.Deaths
	lvl.Illusions = *payload.Illusions
	lvl.ApplyDefaults()
	if err := lvl.Validate(); err != nil {
		writeText(w, http.StatusBadRequest, "Invalid data")
		return
	}

	if err := h.store.Save(name, lvl); err != nil {
		log.Printf("[levelserver] save %s failed: %v", name, err)
		writeText(w, http.StatusInternalServerError, "Error saving")
		return
	}
	log.Printf("[levelserver] saved %s", name)
	if h.OnSaved != nil {
		h.OnSaved(name)
	}
	writeText(w, http.StatusOK, "Saved")
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[levelserver] encode response: %v", err)
	}
}
