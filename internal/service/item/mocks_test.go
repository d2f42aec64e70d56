package item

import (
	"context"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

// Hand-rolled mocks with swappable func fields, one per repo interface.

type itemRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Item, error)
	ListFunc    func(ctx context.Context) ([]domain.Item, error)
	CreateFunc  func(ctx context.Context, item *domain.Item) (*domain.Item, error)
	UpdateFunc  func(ctx context.Context, item *domain.Item, expectedVersion int64) (*domain.Item, error)
	DeleteFunc  func(ctx context.Context, id, expectedVersion int64) error

	calls []string
}

func (m *itemRepoMock) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	m.calls = append(m.calls, "GetByID")
	return m.GetByIDFunc(ctx, id)
}

func (m *itemRepoMock) List(ctx context.Context) ([]domain.Item, error) {
	m.calls = append(m.calls, "List")
	return m.ListFunc(ctx)
}

func (m *itemRepoMock) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	m.calls = append(m.calls, "Create")
	return m.CreateFunc(ctx, item)
}

func (m *itemRepoMock) Update(ctx context.Context, item *domain.Item, expectedVersion int64) (*domain.Item, error) {
	m.calls = append(m.calls, "Update")
	return m.UpdateFunc(ctx, item, expectedVersion)
}

func (m *itemRepoMock) Delete(ctx context.Context, id, expectedVersion int64) error {
	m.calls = append(m.calls, "Delete")
	return m.DeleteFunc(ctx, id, expectedVersion)
}

type itemTagRepoMock struct {
	ListByItemIDFunc      func(ctx context.Context, itemID int64) ([]domain.ItemTag, error)
	InsertManyFunc        func(ctx context.Context, edges []domain.ItemTag) error
	DeleteManyFunc        func(ctx context.Context, edges []domain.ItemTag) error
	DeleteAllByItemIDFunc func(ctx context.Context, itemID int64) (int64, error)
}

func (m *itemTagRepoMock) ListByItemID(ctx context.Context, itemID int64) ([]domain.ItemTag, error) {
	return m.ListByItemIDFunc(ctx, itemID)
}

func (m *itemTagRepoMock) InsertMany(ctx context.Context, edges []domain.ItemTag) error {
	return m.InsertManyFunc(ctx, edges)
}

func (m *itemTagRepoMock) DeleteMany(ctx context.Context, edges []domain.ItemTag) error {
	return m.DeleteManyFunc(ctx, edges)
}

func (m *itemTagRepoMock) DeleteAllByItemID(ctx context.Context, itemID int64) (int64, error) {
	return m.DeleteAllByItemIDFunc(ctx, itemID)
}

type tagRepoMock struct {
	ListByItemIDFunc func(ctx context.Context, itemID int64) ([]domain.Tag, error)
}

func (m *tagRepoMock) ListByItemID(ctx context.Context, itemID int64) ([]domain.Tag, error) {
	return m.ListByItemIDFunc(ctx, itemID)
}

type personRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Person, error)
}

func (m *personRepoMock) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	return m.GetByIDFunc(ctx, id)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
}

// defaultTxMock returns a txManagerMock that simply calls the function with
// the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

// emptyTagRepoMock returns a tagRepoMock that always reports no tags.
func emptyTagRepoMock() *tagRepoMock {
	return &tagRepoMock{
		ListByItemIDFunc: func(ctx context.Context, itemID int64) ([]domain.Tag, error) {
			return []domain.Tag{}, nil
		},
	}
}
