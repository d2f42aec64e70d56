package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

// Update applies scalar field changes and reconciles the item's tag edges as
// one transaction, guarded by the caller-supplied version token.
//
// Sequence: require token → fetch item → guard version → fetch current edges
// → diff against desired tag ids → apply edge delta → CAS scalar update.
// Edge reconciliation runs before the scalar save so the response reflects
// the fully reconciled state under the bumped version; any failure rolls the
// whole unit back.
func (s *Service) Update(ctx context.Context, itemID int64, input UpdateItemInput, expectedVersion *int64) (*domain.Item, error) {
	version, err := requireVersion(expectedVersion)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Item
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.items.GetByID(txCtx, itemID)
		if getErr != nil {
			return getErr
		}

		if guardErr := guardVersion(current, version); guardErr != nil {
			return guardErr
		}

		edges, listErr := s.edges.ListByItemID(txCtx, itemID)
		if listErr != nil {
			return fmt.Errorf("list tag edges: %w", listErr)
		}

		toRemove, toAdd := diffTagEdges(itemID, edges, input.TagIDs)

		if deleteErr := s.edges.DeleteMany(txCtx, toRemove); deleteErr != nil {
			return fmt.Errorf("delete tag edges: %w", deleteErr)
		}
		if insertErr := s.edges.InsertMany(txCtx, toAdd); insertErr != nil {
			return fmt.Errorf("insert tag edges: %w", insertErr)
		}

		current.Description = strings.TrimSpace(input.Description)
		current.Status = input.Status
		current.AssigneeID = input.AssigneeID

		var updateErr error
		updated, updateErr = s.items.Update(txCtx, current, version)
		if updateErr != nil {
			return updateErr
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item updated",
		slog.Int64("item_id", itemID),
		slog.Int64("version", updated.Version),
	)

	return s.loadRelations(ctx, updated)
}
