// Package tag exposes read-only tag lookups. Tags are managed by another
// system; this service never writes them.
package tag

import (
	"context"
	"log/slog"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

type tagRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
}

// Service provides tag read operations.
type Service struct {
	tags tagRepo
	log  *slog.Logger
}

// NewService creates a new Tag service.
func NewService(log *slog.Logger, tags tagRepo) *Service {
	return &Service{
		tags: tags,
		log:  log.With("service", "tag"),
	}
}

// Get returns a tag by id.
func (s *Service) Get(ctx context.Context, tagID int64) (*domain.Tag, error) {
	return s.tags.GetByID(ctx, tagID)
}

// List returns all tags ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.List(ctx)
}
