package repository

import (
	"context"
	"fmt"
	"time"

	"mybalance/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var entryColumns = []string{"id", "user_id", "amount", "description", "date", "created_at", "updated_at"}

// ledgerSchema describes how one transaction type maps onto its table beyond the shared Entry columns.
type ledgerSchema[T models.Record] struct {
	table     string
	columns   []string
	values    func(T) []any
	newRecord func() T
	// targets returns scan destinations for columns plus an optional hook run after a successful scan.
	targets func(T) ([]any, func())
}

// ledgerRepository is the CRUD store shared by incomes, expenses and savings.
// It does not enforce ownership; callers pass the owning user explicitly.
type ledgerRepository[T models.Record] struct {
	db     DBTX
	logger *zap.Logger
	schema ledgerSchema[T]
}

func newLedgerRepository[T models.Record](db DBTX, logger *zap.Logger, schema ledgerSchema[T]) *ledgerRepository[T] {
	return &ledgerRepository[T]{
		db:     db,
		logger: logger.With(zap.String("table", schema.table)),
		schema: schema,
	}
}

func (r *ledgerRepository[T]) selectQuery() squirrel.SelectBuilder {
	cols := make([]string, 0, len(entryColumns)+len(r.schema.columns))
	cols = append(cols, entryColumns...)
	cols = append(cols, r.schema.columns...)
	return squirrel.Select(cols...).
		From(r.schema.table).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *ledgerRepository[T]) getByIDQuery(id int64) squirrel.SelectBuilder {
	return r.selectQuery().Where(squirrel.Eq{"id": id})
}

func (r *ledgerRepository[T]) listByUserQuery(userID int64) squirrel.SelectBuilder {
	return r.selectQuery().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC", "id DESC")
}

func (r *ledgerRepository[T]) listByUserAndDateRangeQuery(userID int64, start, end time.Time) squirrel.SelectBuilder {
	return r.listByUserQuery(userID).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.Lt{"date": end})
}

func (r *ledgerRepository[T]) insertQuery(rec T) squirrel.InsertBuilder {
	e := rec.Base()
	cols := append([]string{"user_id", "amount", "description", "date", "created_at", "updated_at"}, r.schema.columns...)
	vals := append([]any{e.UserID, e.Amount, e.Description, e.Date, e.CreatedAt, e.UpdatedAt}, r.schema.values(rec)...)
	return squirrel.Insert(r.schema.table).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *ledgerRepository[T]) updateQuery(rec T) squirrel.UpdateBuilder {
	e := rec.Base()
	q := squirrel.Update(r.schema.table).
		Set("amount", e.Amount).
		Set("description", e.Description).
		Set("date", e.Date).
		Set("updated_at", e.UpdatedAt)
	for i, v := range r.schema.values(rec) {
		q = q.Set(r.schema.columns[i], v)
	}
	return q.Where(squirrel.Eq{"id": e.ID}).PlaceholderFormat(squirrel.Dollar)
}

func (r *ledgerRepository[T]) deleteQuery(id int64) squirrel.DeleteBuilder {
	return squirrel.Delete(r.schema.table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *ledgerRepository[T]) scan(row pgx.Row) (T, error) {
	rec := r.schema.newRecord()
	e := rec.Base()
	extra, finish := r.schema.targets(rec)

	dest := append([]any{&e.ID, &e.UserID, &e.Amount, &e.Description, &e.Date, &e.CreatedAt, &e.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		var zero T
		return zero, err
	}
	if finish != nil {
		finish()
	}
	return rec, nil
}

func (r *ledgerRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var zero T
	sql, args, err := r.getByIDQuery(id).ToSql()
	if err != nil {
		return zero, err
	}

	rec, err := r.scan(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return zero, notFoundOr(err)
	}
	return rec, nil
}

func (r *ledgerRepository[T]) ListByUser(ctx context.Context, userID int64) ([]T, error) {
	return r.list(ctx, r.listByUserQuery(userID))
}

// ListByUserAndDateRange returns the user's records with start <= date < end, newest first.
func (r *ledgerRepository[T]) ListByUserAndDateRange(ctx context.Context, userID int64, start, end time.Time) ([]T, error) {
	return r.list(ctx, r.listByUserAndDateRangeQuery(userID, start, end))
}

func (r *ledgerRepository[T]) list(ctx context.Context, query squirrel.SelectBuilder) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts rec and stores the generated id back into it.
func (r *ledgerRepository[T]) Create(ctx context.Context, rec T) error {
	sql, args, err := r.insertQuery(rec).ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&rec.Base().ID); err != nil {
		r.logger.Error("Failed to insert record", zap.Error(err))
		return fmt.Errorf("insert into %s: %w", r.schema.table, err)
	}
	return nil
}

// Update overwrites every mutable column of the row with rec's id.
func (r *ledgerRepository[T]) Update(ctx context.Context, rec T) error {
	sql, args, err := r.updateQuery(rec).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		r.logger.Error("Failed to update record", zap.Int64("id", rec.Base().ID), zap.Error(err))
		return fmt.Errorf("update %s: %w", r.schema.table, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row; deleting an id that does not exist is a no-op.
func (r *ledgerRepository[T]) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.deleteQuery(id).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete from %s: %w", r.schema.table, err)
	}
	return nil
}
