package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

// Create persists a new item with its tag edges as one transaction. The store
// assigns id, the initial version and both timestamps. On creation there is
// no current edge set, so the tag diff degenerates to inserting every desired
// edge. The returned item has its relations loaded.
func (s *Service) Create(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Item
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.items.Create(txCtx, &domain.Item{
			Description: strings.TrimSpace(input.Description),
			Status:      domain.ItemStatusToDo,
			AssigneeID:  input.AssigneeID,
		})
		if createErr != nil {
			return fmt.Errorf("create item: %w", createErr)
		}

		_, toAdd := diffTagEdges(created.ID, nil, input.TagIDs)
		if insertErr := s.edges.InsertMany(txCtx, toAdd); insertErr != nil {
			return fmt.Errorf("insert tag edges: %w", insertErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item created",
		slog.Int64("item_id", created.ID),
		slog.Int("tags", len(input.TagIDs)),
	)

	return s.loadRelations(ctx, created)
}
