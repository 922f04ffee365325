package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"screencraft-backend/internal/codegen"
	"screencraft-backend/internal/models"
	"screencraft-backend/internal/prompts"
	"screencraft-backend/internal/services"
)

type GenerateHandler struct {
	assembler *prompts.Assembler
	generator *services.GenerateService // nil when no API key is configured
}

func NewGenerateHandler(assembler *prompts.Assembler, generator *services.GenerateService) *GenerateHandler {
	return &GenerateHandler{assembler: assembler, generator: generator}
}

func (h *GenerateHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (models.GenerateRequest, bool) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return req, false
	}
	if !req.Stack.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unsupported stack", r))
		return req, false
	}
	return req, true
}

// Assemble is the dry-run endpoint: it returns the turn sequence that would
// be sent to the model, without invoking it.
func (h *GenerateHandler) Assemble(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	turns, imageCache, err := h.assembler.Assemble(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"turns":      turns,
		"imageCache": imageCache,
	})
}

// Generate runs the full pipeline: assemble the conversation, invoke the
// model, and recover the code artifact from the reply.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	if h.generator == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResp("AI_UNAVAILABLE", "Code generation is not configured", r))
		return
	}

	turns, imageCache, err := h.assembler.Assemble(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
		return
	}

	reply, err := h.generator.GenerateCode(r.Context(), turns)
	if err != nil {
		log.Printf("[GENERATE] model call failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("AI_ERROR", "Failed to generate code", r))
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{
		Code:       codegen.ExtractHTML(reply),
		ImageCache: imageCache,
	})
}
