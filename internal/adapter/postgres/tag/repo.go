// Package tag implements the read-only Tag repository using PostgreSQL.
package tag

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/magadiflo/todo-list-backend/internal/adapter/postgres"
	"github.com/magadiflo/todo-list-backend/internal/domain"
)

const table = "tags"

var columns = []string{"id", "name", "version", "created_date", "last_modified_date"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Join query for the item relation. Ordered by tag name so loaded tag lists
// have a stable, user-facing order.
const listByItemIDSQL = `
SELECT t.id, t.name, t.version, t.created_date, t.last_modified_date
FROM tags AS t
    INNER JOIN items_tags AS it ON (t.id = it.tag_id)
WHERE it.item_id = $1
ORDER BY t.name`

// Repo provides tag reads backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new tag repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// tagRow mirrors the tags table for scany.
type tagRow struct {
	ID               int64     `db:"id"`
	Name             string    `db:"name"`
	Version          int64     `db:"version"`
	CreatedDate      time.Time `db:"created_date"`
	LastModifiedDate time.Time `db:"last_modified_date"`
}

// GetByID returns a tag by primary key.
// Returns domain.NotFoundError if no row matches.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get tag query: %w", err)
	}

	var row tagRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.NewNotFoundError("tag", id)
		}
		return nil, postgres.MapError(err, "tag", id)
	}

	t := toDomainTag(row)
	return &t, nil
}

// List returns all tags ordered by name.
// Returns an empty slice (not nil) when there are no tags.
func (r *Repo) List(ctx context.Context) ([]domain.Tag, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Select(columns...).From(table).OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tags query: %w", err)
	}

	var rows []tagRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return toDomainTags(rows), nil
}

// ListByItemID returns the tags attached to an item via the join table,
// ordered by tag name. Returns an empty slice (not nil) on zero matches.
func (r *Repo) ListByItemID(ctx context.Context, itemID int64) ([]domain.Tag, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	var rows []tagRow
	if err := pgxscan.Select(ctx, q, &rows, listByItemIDSQL, itemID); err != nil {
		return nil, fmt.Errorf("list tags for item %d: %w", itemID, err)
	}

	return toDomainTags(rows), nil
}

func toDomainTags(rows []tagRow) []domain.Tag {
	tags := make([]domain.Tag, len(rows))
	for i, row := range rows {
		tags[i] = toDomainTag(row)
	}
	return tags
}

func toDomainTag(row tagRow) domain.Tag {
	return domain.Tag{
		ID:               row.ID,
		Name:             row.Name,
		Version:          row.Version,
		CreatedDate:      row.CreatedDate,
		LastModifiedDate: row.LastModifiedDate,
	}
}
