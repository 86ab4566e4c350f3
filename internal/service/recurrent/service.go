package recurrent

import (
	"context"

	"github.com/akachaad/office-pulse-2026/internal/domain/attendance"
	"github.com/akachaad/office-pulse-2026/internal/domain/person"
	"github.com/akachaad/office-pulse-2026/internal/domain/recurrent"
	"github.com/akachaad/office-pulse-2026/internal/pkg/validator"
)

type PatternServiceImpl struct {
	patternRepo recurrent.PatternRepository
	personRepo  person.PersonRepository
}

func NewPatternService(patternRepo recurrent.PatternRepository, personRepo person.PersonRepository) recurrent.PatternService {
	return &PatternServiceImpl{
		patternRepo: patternRepo,
		personRepo:  personRepo,
	}
}

// List implements recurrent.PatternService.
func (s *PatternServiceImpl) List(ctx context.Context, personID *int64) ([]recurrent.Pattern, error) {
	if personID != nil {
		if _, err := s.personRepo.GetByID(ctx, *personID); err != nil {
			return nil, err
		}
	}
	return s.patternRepo.List(ctx, personID)
}

// Upsert implements recurrent.PatternService.
func (s *PatternServiceImpl) Upsert(ctx context.Context, req recurrent.UpsertPatternRequest) (recurrent.Pattern, error) {
	if err := req.Validate(); err != nil {
		return recurrent.Pattern{}, err
	}

	if _, err := s.personRepo.GetByID(ctx, req.PersonID); err != nil {
		return recurrent.Pattern{}, err
	}

	return s.patternRepo.Upsert(ctx, req.PersonID, req.Weekday, attendance.Status(req.Status))
}

// Clear implements recurrent.PatternService. Clearing a weekday that has
// no pattern is a no-op.
func (s *PatternServiceImpl) Clear(ctx context.Context, personID int64, weekday int) error {
	if !validator.IsValidWeekday(weekday) {
		return validator.ValidationErrors{
			{Field: "weekday", Message: "must be between 0 (Sunday) and 6 (Saturday)"},
		}
	}

	if _, err := s.personRepo.GetByID(ctx, personID); err != nil {
		return err
	}

	patterns, err := s.patternRepo.List(ctx, &personID)
	if err != nil {
		return err
	}
	for _, p := range patterns {
		if p.Weekday == weekday {
			return s.patternRepo.Delete(ctx, p.ID)
		}
	}
	return nil
}
