package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

// loadRelations populates the item's tags and assignee. The two lookups are
// independent and run concurrently; both must finish before the item is
// returned. Must not be called inside a transaction: a pgx.Tx is not safe for
// concurrent use.
//
// An assignee id that no longer resolves to a person is tolerated: the
// assignee stays unset and a warning is logged, matching the historical
// behavior of the API.
func (s *Service) loadRelations(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	var (
		tags     []domain.Tag
		assignee *domain.Person
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		loaded, err := s.tags.ListByItemID(gctx, item.ID)
		if err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		tags = loaded
		return nil
	})

	if item.AssigneeID != nil {
		assigneeID := *item.AssigneeID
		g.Go(func() error {
			p, err := s.persons.GetByID(gctx, assigneeID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					s.log.WarnContext(gctx, "item references missing assignee",
						slog.Int64("item_id", item.ID),
						slog.Int64("assignee_id", assigneeID),
					)
					return nil
				}
				return fmt.Errorf("load assignee: %w", err)
			}
			assignee = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	item.Tags = tags
	item.Assignee = assignee
	return item, nil
}
