package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mobosolo/jdr/internal/service"
)

type ShowHandler struct {
	showService *service.ShowService
}

func NewShowHandler(showService *service.ShowService) *ShowHandler {
	return &ShowHandler{showService: showService}
}

// GET /api/shows
func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	shows, err := h.showService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	now := time.Now()
	out := make([]map[string]any, 0, len(shows))
	for _, show := range shows {
		out = append(out, formatShow(show, now))
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /api/shows/{id}
func (h *ShowHandler) Get(w http.ResponseWriter, r *http.Request) {
	show, err := h.showService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, formatShow(*show, time.Now()))
}

// POST /api/admin/shows
func (h *ShowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.ShowInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	show, err := h.showService.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, formatShow(*show, time.Now()))
}

// PUT /api/admin/shows/{id}
func (h *ShowHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.ShowInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	show, err := h.showService.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, formatShow(*show, time.Now()))
}

// DELETE /api/admin/shows/{id}
func (h *ShowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.showService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
