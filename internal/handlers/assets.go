package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"screencraft-backend/internal/assets"
	"screencraft-backend/internal/models"
)

type AssetHandler struct {
	store assets.Store
}

func NewAssetHandler(store assets.Store) *AssetHandler {
	return &AssetHandler{store: store}
}

// Upload stores the posted assets and returns their public references in
// input order.
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var uploads []models.AssetUpload
	if err := json.NewDecoder(r.Body).Decode(&uploads); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	refs, err := h.store.Upload(r.Context(), uploads)
	if err != nil {
		log.Printf("[ASSET] upload failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store assets", r))
		return
	}

	writeJSON(w, http.StatusOK, refs)
}

// Serve streams the decoded asset bytes with inline disposition and a one
// hour cache window.
func (h *AssetHandler) Serve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	content, err := h.store.Resolve(r.Context(), id)
	switch {
	case errors.Is(err, assets.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Asset not found", r))
		return
	case errors.Is(err, assets.ErrInvalidDataURL):
		writeJSON(w, http.StatusBadRequest, errorResp("INVALID_DATA_URL", "Invalid data URL", r))
		return
	case err != nil:
		log.Printf("[ASSET ERROR] Failed to serve asset %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to serve asset", r))
		return
	}

	w.Header().Set("Content-Type", content.MimeType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", content.FileName))
	w.Write(content.Bytes)
}

// Delete removes an asset; a removed id never resolves again.
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.Remove(r.Context(), id)
	switch {
	case errors.Is(err, assets.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Asset not found", r))
		return
	case err != nil:
		log.Printf("[ASSET ERROR] Failed to delete asset %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete asset", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Asset deleted"})
}

// List returns all current asset references.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	refs, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("[ASSET ERROR] Failed to list assets: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list assets", r))
		return
	}

	writeJSON(w, http.StatusOK, models.AssetListResponse{Count: len(refs), Assets: refs})
}
