package tag_test

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/magadiflo/todo-list-backend/internal/adapter/postgres/tag"
	"github.com/magadiflo/todo-list-backend/internal/domain"
)

var tagCols = []string{"id", "name", "version", "created_date", "last_modified_date"}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *tag.Repo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock, tag.New(mock)
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM tags WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(tagCols))

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "tag" || nf.ID != 99 {
		t.Errorf("unexpected payload: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_ListByItemID_OrderedByName(t *testing.T) {
	mock, repo := newMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(tagCols).
		AddRow(int64(3), "errand", int64(0), now, now).
		AddRow(int64(1), "urgent", int64(0), now, now)
	mock.ExpectQuery(`SELECT t\.id, t\.name, .+ FROM tags AS t\s+INNER JOIN items_tags AS it ON \(t\.id = it\.tag_id\)\s+WHERE it\.item_id = \$1\s+ORDER BY t\.name`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := repo.ListByItemID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(got))
	}
	if got[0].Name != "errand" || got[1].Name != "urgent" {
		t.Errorf("tags not in join-query order: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_List_Empty(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM tags ORDER BY name`).
		WillReturnRows(pgxmock.NewRows(tagCols))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
