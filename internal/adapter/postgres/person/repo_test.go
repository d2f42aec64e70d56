package person_test

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/magadiflo/todo-list-backend/internal/adapter/postgres/person"
	"github.com/magadiflo/todo-list-backend/internal/domain"
)

var personCols = []string{"id", "first_name", "last_name", "version", "created_date", "last_modified_date"}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *person.Repo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock, person.New(mock)
}

func TestRepo_GetByID(t *testing.T) {
	mock, repo := newMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(personCols).
		AddRow(int64(9), "Martin", "Diaz", int64(0), now, now)
	mock.ExpectQuery(`SELECT .+ FROM persons WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FirstName != "Martin" || got.LastName != "Diaz" {
		t.Errorf("unexpected person: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM persons WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows(personCols))

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
