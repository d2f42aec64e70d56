package item

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes an item and all of its tag edges as one transaction, guarded
// by the caller-supplied version token. A stale token fails with a version
// conflict exactly as Update does; a stale view is never silently deleted.
func (s *Service) Delete(ctx context.Context, itemID int64, expectedVersion *int64) error {
	version, err := requireVersion(expectedVersion)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.items.GetByID(txCtx, itemID)
		if getErr != nil {
			return getErr
		}

		if guardErr := guardVersion(current, version); guardErr != nil {
			return guardErr
		}

		if _, edgeErr := s.edges.DeleteAllByItemID(txCtx, itemID); edgeErr != nil {
			return fmt.Errorf("delete tag edges: %w", edgeErr)
		}

		return s.items.Delete(txCtx, itemID, version)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "item deleted", slog.Int64("item_id", itemID))

	return nil
}
