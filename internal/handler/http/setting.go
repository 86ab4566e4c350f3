package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/akachaad/office-pulse-2026/internal/domain/setting"
	"github.com/akachaad/office-pulse-2026/internal/handler/http/response"
)

type SettingHandler interface {
	GetCapacityLimit(w http.ResponseWriter, r *http.Request)
	SetCapacityLimit(w http.ResponseWriter, r *http.Request)
}

type SettingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &SettingHandlerImpl{settingService: settingService}
}

type capacityLimitPayload struct {
	CapacityLimit int `json:"capacity_limit"`
}

// GetCapacityLimit implements SettingHandler.
func (h *SettingHandlerImpl) GetCapacityLimit(w http.ResponseWriter, r *http.Request) {
	limit, err := h.settingService.CapacityLimit(r.Context())
	if err != nil {
		slog.Error("Setting get service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, capacityLimitPayload{CapacityLimit: limit})
}

// SetCapacityLimit implements SettingHandler.
func (h *SettingHandlerImpl) SetCapacityLimit(w http.ResponseWriter, r *http.Request) {
	var payload capacityLimitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("Setting set decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settingService.SetCapacityLimit(r.Context(), payload.CapacityLimit); err != nil {
		slog.Error("Setting set service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Capacity limit updated", capacityLimitPayload{CapacityLimit: payload.CapacityLimit})
}
