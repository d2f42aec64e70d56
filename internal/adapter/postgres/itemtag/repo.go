// Package itemtag implements persistence for the items_tags join table.
// Edges are only ever written from within an item mutation transaction.
package itemtag

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/magadiflo/todo-list-backend/internal/adapter/postgres"
	"github.com/magadiflo/todo-list-backend/internal/domain"
)

const table = "items_tags"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides join-table persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new items_tags repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// edgeRow mirrors the items_tags table for scany.
type edgeRow struct {
	ID     int64 `db:"id"`
	ItemID int64 `db:"item_id"`
	TagID  int64 `db:"tag_id"`
}

// ListByItemID returns all edges for an item.
// Returns an empty slice (not nil) when the item has no tags.
func (r *Repo) ListByItemID(ctx context.Context, itemID int64) ([]domain.ItemTag, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Select("id", "item_id", "tag_id").
		From(table).
		Where(sq.Eq{"item_id": itemID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list edges query: %w", err)
	}

	var rows []edgeRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list edges for item %d: %w", itemID, err)
	}

	edges := make([]domain.ItemTag, len(rows))
	for i, row := range rows {
		edges[i] = domain.ItemTag{ID: row.ID, ItemID: row.ItemID, TagID: row.TagID}
	}

	return edges, nil
}

// InsertMany inserts the given edges in one statement. A no-op for an empty
// slice. Edge ids are assigned by the store.
func (r *Repo) InsertMany(ctx context.Context, edges []domain.ItemTag) error {
	if len(edges) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.q)

	insert := psql.Insert(table).Columns("item_id", "tag_id")
	for _, e := range edges {
		insert = insert.Values(e.ItemID, e.TagID)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert edges query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "item_tag", edges[0].ItemID)
	}

	return nil
}

// DeleteMany removes the given edges by primary key. A no-op for an empty
// slice.
func (r *Repo) DeleteMany(ctx context.Context, edges []domain.ItemTag) error {
	if len(edges) == 0 {
		return nil
	}

	ids := make([]int64, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}

	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Delete(table).Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete edges query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "item_tag", edges[0].ItemID)
	}

	return nil
}

// DeleteAllByItemID removes every edge for an item and reports how many rows
// went away. Zero affected rows is not an error.
func (r *Repo) DeleteAllByItemID(ctx context.Context, itemID int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Delete(table).Where(sq.Eq{"item_id": itemID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete edges query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "item_tag", itemID)
	}

	return tag.RowsAffected(), nil
}
