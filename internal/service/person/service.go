package person

import (
	"context"
	"strings"

	"github.com/akachaad/office-pulse-2026/internal/domain/person"
)

type PersonServiceImpl struct {
	personRepo person.PersonRepository
}

func NewPersonService(personRepo person.PersonRepository) person.PersonService {
	return &PersonServiceImpl{personRepo: personRepo}
}

// Create implements person.PersonService.
func (s *PersonServiceImpl) Create(ctx context.Context, req person.CreatePersonRequest) (person.Person, error) {
	if err := req.Validate(); err != nil {
		return person.Person{}, err
	}

	return s.personRepo.Create(ctx, req.ToPerson())
}

// List implements person.PersonService.
func (s *PersonServiceImpl) List(ctx context.Context) ([]person.Person, error) {
	return s.personRepo.List(ctx)
}

// GetByID implements person.PersonService.
func (s *PersonServiceImpl) GetByID(ctx context.Context, id int64) (person.Person, error) {
	return s.personRepo.GetByID(ctx, id)
}

// GetByTrigramme implements person.PersonService.
func (s *PersonServiceImpl) GetByTrigramme(ctx context.Context, trigramme string) (person.Person, error) {
	return s.personRepo.GetByTrigramme(ctx, strings.ToUpper(strings.TrimSpace(trigramme)))
}

// UpdateCapacity implements person.PersonService.
func (s *PersonServiceImpl) UpdateCapacity(ctx context.Context, id int64, capacity float64) (person.Person, error) {
	req := person.UpdateCapacityRequest{Capacity: capacity}
	if err := req.Validate(); err != nil {
		return person.Person{}, err
	}

	if err := s.personRepo.UpdateCapacity(ctx, id, capacity); err != nil {
		return person.Person{}, err
	}
	return s.personRepo.GetByID(ctx, id)
}
