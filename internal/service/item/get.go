package item

import (
	"context"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

// Get returns an item by id. With loadRelations the tags and assignee are
// fetched and attached; otherwise the bare row is returned. No version check
// on the read path.
func (s *Service) Get(ctx context.Context, itemID int64, loadRelations bool) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if !loadRelations {
		return item, nil
	}

	return s.loadRelations(ctx, item)
}
