package item

import (
	"context"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

// List returns all items ordered by last modification time, relations
// unloaded.
func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	return s.items.List(ctx)
}
