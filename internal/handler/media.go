package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mobosolo/jdr/internal/service"
)

type MediaHandler struct {
	mediaService *service.MediaService
}

func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// GET /api/media/photos
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	photos, err := h.mediaService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(photos))
	for _, photo := range photos {
		out = append(out, formatMediaPhoto(photo))
	}
	writeJSON(w, http.StatusOK, out)
}

// POST /api/admin/media
func (h *MediaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.MediaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	photo, err := h.mediaService.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, formatMediaPhoto(*photo))
}

// DELETE /api/admin/media/{id}
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.mediaService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
