// Package item implements the item aggregate: create, read, update and
// delete of items together with their tag edges, under optimistic
// concurrency control. All mutations run inside a single transaction; reads
// assemble relations (tags, assignee) on demand.
package item

import (
	"context"
	"log/slog"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

type itemRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item, expectedVersion int64) (*domain.Item, error)
	Delete(ctx context.Context, id, expectedVersion int64) error
}

type itemTagRepo interface {
	ListByItemID(ctx context.Context, itemID int64) ([]domain.ItemTag, error)
	InsertMany(ctx context.Context, edges []domain.ItemTag) error
	DeleteMany(ctx context.Context, edges []domain.ItemTag) error
	DeleteAllByItemID(ctx context.Context, itemID int64) (int64, error)
}

type tagRepo interface {
	ListByItemID(ctx context.Context, itemID int64) ([]domain.Tag, error)
}

type personRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides item aggregate operations.
type Service struct {
	items   itemRepo
	edges   itemTagRepo
	tags    tagRepo
	persons personRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new Item service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	edges itemTagRepo,
	tags tagRepo,
	persons personRepo,
	tx txManager,
) *Service {
	return &Service{
		items:   items,
		edges:   edges,
		tags:    tags,
		persons: persons,
		tx:      tx,
		log:     log.With("service", "item"),
	}
}
