package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/akachaad/office-pulse-2026/internal/domain/recurrent"
	"github.com/akachaad/office-pulse-2026/internal/handler/http/response"
)

type RecurrentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type RecurrentHandlerImpl struct {
	patternService recurrent.PatternService
}

func NewRecurrentHandler(patternService recurrent.PatternService) RecurrentHandler {
	return &RecurrentHandlerImpl{patternService: patternService}
}

// List implements RecurrentHandler.
func (h *RecurrentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	personID, ok := optionalPersonIDQuery(r)
	if !ok {
		response.BadRequest(w, "Invalid person_id", nil)
		return
	}

	patterns, err := h.patternService.List(r.Context(), personID)
	if err != nil {
		slog.Error("Recurrent list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]recurrent.PatternResponse, 0, len(patterns))
	for _, p := range patterns {
		resp = append(resp, recurrent.NewPatternResponse(p))
	}
	response.Success(w, resp)
}

// Upsert implements RecurrentHandler.
func (h *RecurrentHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var upsertReq recurrent.UpsertPatternRequest

	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("Recurrent upsert decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	pattern, err := h.patternService.Upsert(r.Context(), upsertReq)
	if err != nil {
		slog.Error("Recurrent upsert service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, recurrent.NewPatternResponse(pattern))
}

// Clear implements RecurrentHandler. The weekday to clear arrives as
// query parameters, mirroring the upsert body.
func (h *RecurrentHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	personID, ok := optionalPersonIDQuery(r)
	if !ok || personID == nil {
		response.BadRequest(w, "person_id query parameter is required", nil)
		return
	}
	weekday, err := strconv.Atoi(r.URL.Query().Get("weekday"))
	if err != nil {
		response.BadRequest(w, "weekday query parameter is required", nil)
		return
	}

	if err := h.patternService.Clear(r.Context(), *personID, weekday); err != nil {
		slog.Error("Recurrent clear service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pattern cleared", nil)
}
