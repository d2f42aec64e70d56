// Package item implements the Item repository using PostgreSQL.
// Scalar writes use compare-and-swap on the version column: the store, not
// the application, is the authority on version increments and timestamps.
package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/magadiflo/todo-list-backend/internal/adapter/postgres"
	"github.com/magadiflo/todo-list-backend/internal/domain"
)

const table = "items"

var columns = []string{"id", "description", "status", "assignee_id", "version", "created_date", "last_modified_date"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new item repository. The querier is normally a *pgxpool.Pool;
// within TxManager.RunInTx the transaction from the context takes precedence.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// itemRow mirrors the items table for scany.
type itemRow struct {
	ID               int64     `db:"id"`
	Description      string    `db:"description"`
	Status           string    `db:"status"`
	AssigneeID       *int64    `db:"assignee_id"`
	Version          int64     `db:"version"`
	CreatedDate      time.Time `db:"created_date"`
	LastModifiedDate time.Time `db:"last_modified_date"`
}

// GetByID returns an item by primary key.
// Returns domain.NotFoundError if no row matches.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.NewNotFoundError("item", id)
		}
		return nil, postgres.MapError(err, "item", id)
	}

	it := toDomainItem(row)
	return &it, nil
}

// List returns all items ordered by last modification time.
// Returns an empty slice (not nil) when there are no items.
func (r *Repo) List(ctx context.Context) ([]domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Select(columns...).From(table).OrderBy("last_modified_date").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items query: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		items[i] = toDomainItem(row)
	}

	return items, nil
}

// Create inserts a new item row. Id, version (0) and both timestamps are
// assigned by the store; the persisted row is returned.
func (r *Repo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Insert(table).
		Columns("description", "status", "assignee_id").
		Values(item.Description, item.Status.String(), item.AssigneeID).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert item query: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "item", 0)
	}

	it := toDomainItem(row)
	return &it, nil
}

// Update persists scalar field changes with a compare-and-swap on the version
// column. The store bumps version and last_modified_date as part of the same
// statement. When the CAS misses, the current row is consulted once to decide
// between domain.NotFoundError and domain.VersionConflictError.
func (r *Repo) Update(ctx context.Context, item *domain.Item, expectedVersion int64) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Update(table).
		Set("description", item.Description).
		Set("status", item.Status.String()).
		Set("assignee_id", item.AssigneeID).
		Set("version", sq.Expr("version + 1")).
		Set("last_modified_date", sq.Expr("now()")).
		Where(sq.Eq{"id": item.ID, "version": expectedVersion}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update item query: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, r.casMiss(ctx, item.ID, expectedVersion)
		}
		return nil, postgres.MapError(err, "item", item.ID)
	}

	it := toDomainItem(row)
	return &it, nil
}

// Delete removes an item row with the same compare-and-swap semantics as
// Update: a stale version is rejected, never silently deleted.
func (r *Repo) Delete(ctx context.Context, id, expectedVersion int64) error {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Delete(table).
		Where(sq.Eq{"id": id, "version": expectedVersion}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete item query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}

	if tag.RowsAffected() == 0 {
		return r.casMiss(ctx, id, expectedVersion)
	}

	return nil
}

// casMiss resolves a zero-row CAS result: the row is either gone (not found)
// or carries a different version (conflict).
func (r *Repo) casMiss(ctx context.Context, id, expectedVersion int64) error {
	q := postgres.QuerierFromCtx(ctx, r.q)

	query, args, err := psql.Select("version").From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build version lookup query: %w", err)
	}

	var found int64
	if err := pgxscan.Get(ctx, q, &found, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.NewNotFoundError("item", id)
		}
		return postgres.MapError(err, "item", id)
	}

	return domain.NewVersionConflictError(expectedVersion, found)
}

// toDomainItem converts an items row into a domain.Item.
func toDomainItem(row itemRow) domain.Item {
	return domain.Item{
		ID:               row.ID,
		Description:      row.Description,
		Status:           domain.ItemStatus(row.Status),
		AssigneeID:       row.AssigneeID,
		Version:          row.Version,
		CreatedDate:      row.CreatedDate,
		LastModifiedDate: row.LastModifiedDate,
	}
}
