package desk

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/akachaad/office-pulse-2026/internal/domain/desk"
	"github.com/akachaad/office-pulse-2026/internal/domain/person"
	"github.com/akachaad/office-pulse-2026/internal/pkg/calendar"
	"github.com/akachaad/office-pulse-2026/internal/pkg/validator"
)

type ReservationServiceImpl struct {
	reservationRepo desk.ReservationRepository
	personRepo      person.PersonRepository
}

func NewReservationService(reservationRepo desk.ReservationRepository, personRepo person.PersonRepository) desk.ReservationService {
	return &ReservationServiceImpl{
		reservationRepo: reservationRepo,
		personRepo:      personRepo,
	}
}

// knownDesk reports whether id names a desk on the floor plan.
func knownDesk(id string) bool {
	if !validator.IsValidDeskID(id) {
		return false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, "desk-"))
	if err != nil {
		return false
	}
	return n >= 1 && n <= desk.DeskCount
}

// Reserve implements desk.ReservationService.
func (s *ReservationServiceImpl) Reserve(ctx context.Context, req desk.ReserveRequest) (desk.Reservation, error) {
	if err := req.Validate(); err != nil {
		return desk.Reservation{}, err
	}
	if !knownDesk(req.DeskID) {
		return desk.Reservation{}, desk.ErrUnknownDesk
	}

	if _, err := s.personRepo.GetByID(ctx, req.PersonID); err != nil {
		return desk.Reservation{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	return s.reservationRepo.Create(ctx, desk.Reservation{
		DeskID:    req.DeskID,
		PersonID:  req.PersonID,
		Date:      calendar.Midnight(date),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
}

// ListByDate implements desk.ReservationService.
func (s *ReservationServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]desk.Reservation, error) {
	return s.reservationRepo.ListByDate(ctx, calendar.Midnight(date))
}

// Cancel implements desk.ReservationService.
func (s *ReservationServiceImpl) Cancel(ctx context.Context, deskID string, date time.Time) error {
	if !knownDesk(deskID) {
		return desk.ErrUnknownDesk
	}
	return s.reservationRepo.Delete(ctx, deskID, calendar.Midnight(date))
}
