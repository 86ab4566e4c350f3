package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/akachaad/office-pulse-2026/internal/domain/person"
	"github.com/akachaad/office-pulse-2026/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PersonHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	UpdateCapacity(w http.ResponseWriter, r *http.Request)
}

type PersonHandlerImpl struct {
	personService person.PersonService
}

func NewPersonHandler(personService person.PersonService) PersonHandler {
	return &PersonHandlerImpl{personService: personService}
}

func personIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// List implements PersonHandler.
func (h *PersonHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.personService.List(r.Context())
	if err != nil {
		slog.Error("Person list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]person.PersonResponse, 0, len(people))
	for _, p := range people {
		resp = append(resp, person.NewPersonResponse(p))
	}
	response.Success(w, resp)
}

// Create implements PersonHandler.
func (h *PersonHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq person.CreatePersonRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Person create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.personService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Person create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Person created", person.NewPersonResponse(created))
}

// GetByID implements PersonHandler. A non-numeric path segment is treated
// as a trigramme lookup.
func (h *PersonHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	var (
		p   person.Person
		err error
	)
	if id, ok := personIDParam(r); ok {
		p, err = h.personService.GetByID(r.Context(), id)
	} else {
		p, err = h.personService.GetByTrigramme(r.Context(), chi.URLParam(r, "id"))
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, person.NewPersonResponse(p))
}

// UpdateCapacity implements PersonHandler.
func (h *PersonHandlerImpl) UpdateCapacity(w http.ResponseWriter, r *http.Request) {
	id, ok := personIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid person id", nil)
		return
	}

	var capacityReq person.UpdateCapacityRequest
	if err := json.NewDecoder(r.Body).Decode(&capacityReq); err != nil {
		slog.Error("Person capacity decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.personService.UpdateCapacity(r.Context(), id, capacityReq.Capacity)
	if err != nil {
		slog.Error("Person capacity service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Capacity updated", person.NewPersonResponse(updated))
}
