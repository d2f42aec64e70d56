// Package person implements the read-only Person repository using PostgreSQL.
package person

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/magadiflo/todo-list-backend/internal/adapter/postgres"
	"github.com/magadiflo/todo-list-backend/internal/domain"
)

const table = "persons"

var columns = []string{"id", "first_name", "last_name", "version", "created_date", "last_modified_date"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides person reads backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new person repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// personRow mirrors the persons table for scany.
type personRow struct {
	ID               int64     `db:"id"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	Version          int64     `db:"version"`
	CreatedDate      time.Time `db:"created_date"`
	LastModifiedDate time.Time `db:"last_modified_date"`
}

// GetByID returns a person by primary key.
// Returns domain.NotFoundError if no row matches.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get person query: %w", err)
	}

	var row personRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.NewNotFoundError("person", id)
		}
		return nil, postgres.MapError(err, "person", id)
	}

	p := toDomainPerson(row)
	return &p, nil
}

// List returns all persons ordered by last then first name.
// Returns an empty slice (not nil) when there are no persons.
func (r *Repo) List(ctx context.Context) ([]domain.Person, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Select(columns...).From(table).OrderBy("last_name", "first_name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list persons query: %w", err)
	}

	var rows []personRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}

	persons := make([]domain.Person, len(rows))
	for i, row := range rows {
		persons[i] = toDomainPerson(row)
	}

	return persons, nil
}

func toDomainPerson(row personRow) domain.Person {
	return domain.Person{
		ID:               row.ID,
		FirstName:        row.FirstName,
		LastName:         row.LastName,
		Version:          row.Version,
		CreatedDate:      row.CreatedDate,
		LastModifiedDate: row.LastModifiedDate,
	}
}
