package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/akachaad/office-pulse-2026/internal/domain/desk"
	"github.com/akachaad/office-pulse-2026/internal/handler/http/response"
	"github.com/akachaad/office-pulse-2026/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type DeskHandler interface {
	ListByDate(w http.ResponseWriter, r *http.Request)
	Reserve(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type DeskHandlerImpl struct {
	reservationService desk.ReservationService
}

func NewDeskHandler(reservationService desk.ReservationService) DeskHandler {
	return &DeskHandlerImpl{reservationService: reservationService}
}

// ListByDate implements DeskHandler.
func (h *DeskHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(r.URL.Query().Get("date"))
	if !ok {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	reservations, err := h.reservationService.ListByDate(r.Context(), date)
	if err != nil {
		slog.Error("Desk list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]desk.ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		resp = append(resp, desk.NewReservationResponse(res))
	}
	response.Success(w, resp)
}

// Reserve implements DeskHandler.
func (h *DeskHandlerImpl) Reserve(w http.ResponseWriter, r *http.Request) {
	var reserveReq desk.ReserveRequest

	if err := json.NewDecoder(r.Body).Decode(&reserveReq); err != nil {
		slog.Error("Desk reserve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reservation, err := h.reservationService.Reserve(r.Context(), reserveReq)
	if err != nil {
		slog.Error("Desk reserve service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Desk reserved", desk.NewReservationResponse(reservation))
}

// Cancel implements DeskHandler.
func (h *DeskHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	deskID := chi.URLParam(r, "deskID")
	date, ok := validator.IsValidDate(r.URL.Query().Get("date"))
	if !ok {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	if err := h.reservationService.Cancel(r.Context(), deskID, date); err != nil {
		slog.Error("Desk cancel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reservation cancelled", nil)
}
