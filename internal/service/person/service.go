// Package person exposes read-only person lookups. Persons are managed by
// another system; this service never writes them.
package person

import (
	"context"
	"log/slog"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

type personRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
	List(ctx context.Context) ([]domain.Person, error)
}

// Service provides person read operations.
type Service struct {
	persons personRepo
	log     *slog.Logger
}

// NewService creates a new Person service.
func NewService(log *slog.Logger, persons personRepo) *Service {
	return &Service{
		persons: persons,
		log:     log.With("service", "person"),
	}
}

// Get returns a person by id.
func (s *Service) Get(ctx context.Context, personID int64) (*domain.Person, error) {
	return s.persons.GetByID(ctx, personID)
}

// List returns all persons.
func (s *Service) List(ctx context.Context) ([]domain.Person, error) {
	return s.persons.List(ctx)
}
