package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"money-manager/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const transactionColumns = "id, user_id, type, amount, category, division, description, date, account, created_at, updated_at"

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("id", "user_id", "type", "amount", "category", "division", "description", "date", "account", "created_at", "updated_at").
		Values(tx.ID, tx.UserID, tx.Type, tx.Amount, tx.Category, tx.Division, tx.Description, tx.Date, tx.Account, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) CreateBatch(ctx context.Context, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	builder := squirrel.Insert("transactions").
		Columns("id", "user_id", "type", "amount", "category", "division", "description", "date", "account", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, tx := range transactions {
		builder = builder.Values(tx.ID, tx.UserID, tx.Type, tx.Amount, tx.Category, tx.Division, tx.Description, tx.Date, tx.Account, tx.CreatedAt, tx.UpdatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns).
		From("transactions").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Category, &tx.Division, &tx.Description, &tx.Date, &tx.Account, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &tx, nil
}

func applyFilter(query squirrel.SelectBuilder, filter TransactionFilter) squirrel.SelectBuilder {
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Division != "" {
		query = query.Where(squirrel.Eq{"division": filter.Division})
	}
	if filter.Account != "" {
		query = query.Where(squirrel.Eq{"account": filter.Account})
	}
	return dateRangeConds(query, filter.StartDate, filter.EndDate)
}

func (r *TransactionRepository) List(ctx context.Context, userID uuid.UUID, filter TransactionFilter, limit, offset int) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	query = applyFilter(query, filter)

	return r.queryTransactions(ctx, query)
}

func (r *TransactionRepository) Count(ctx context.Context, userID uuid.UUID, filter TransactionFilter) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	query = applyFilter(query, filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Update("transactions").
		Set("type", tx.Type).
		Set("amount", tx.Amount).
		Set("category", tx.Category).
		Set("division", tx.Division).
		Set("description", tx.Description).
		Set("date", tx.Date).
		Set("account", tx.Account).
		Set("updated_at", tx.UpdatedAt).
		Where(squirrel.Eq{"id": tx.ID, "user_id": tx.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Category, &tx.Division, &tx.Description, &tx.Date, &tx.Account, &tx.CreatedAt, &tx.UpdatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

// TotalsByType sums amounts per transaction type inside the date range.
// Types with no matching rows produce no row here; the caller defaults them
// to zero.
func (r *TransactionRepository) TotalsByType(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]TypeTotal, error) {
	query := squirrel.Select("type", "SUM(amount) AS total", "COUNT(*) AS count").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		GroupBy("type").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []TypeTotal
	for rows.Next() {
		var t TypeTotal
		if err := rows.Scan(&t.Type, &t.Total, &t.Count); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// CategoryTotals sums amounts per (category, type), largest totals first.
// An empty typeFilter covers both types, nil range bounds are unbounded and
// limit 0 means no limit.
func (r *TransactionRepository) CategoryTotals(ctx context.Context, userID uuid.UUID, typeFilter string, start, end *time.Time, limit uint64) ([]CategoryTotal, error) {
	query := squirrel.Select("category", "type", "SUM(amount) AS total", "COUNT(*) AS count").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("category", "type").
		OrderBy("total DESC").
		PlaceholderFormat(squirrel.Dollar)

	if typeFilter != "" {
		query = query.Where(squirrel.Eq{"type": typeFilter})
	}
	query = dateRangeConds(query, start, end)
	if limit > 0 {
		query = query.Limit(limit)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []CategoryTotal
	for rows.Next() {
		var t CategoryTotal
		if err := rows.Scan(&t.Category, &t.Type, &t.Total, &t.Count); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// DivisionTotals sums amounts per (division, type). Only two divisions exist,
// so no ordering or truncation is applied.
func (r *TransactionRepository) DivisionTotals(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]DivisionTotal, error) {
	query := squirrel.Select("division", "type", "SUM(amount) AS total", "COUNT(*) AS count").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("division", "type").
		PlaceholderFormat(squirrel.Dollar)

	query = dateRangeConds(query, start, end)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []DivisionTotal
	for rows.Next() {
		var t DivisionTotal
		if err := rows.Scan(&t.Division, &t.Type, &t.Total, &t.Count); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// Trends sums amounts per (date bucket, type) inside the range, ascending by
// bucket. The pattern is a to_char format chosen by the caller from the fixed
// Period bucket patterns, never user input.
func (r *TransactionRepository) Trends(ctx context.Context, userID uuid.UUID, start, end time.Time, pattern string) ([]TrendPoint, error) {
	bucket := fmt.Sprintf("to_char(date, '%s')", pattern)
	query := squirrel.Select(bucket+" AS bucket", "type", "SUM(amount) AS total", "COUNT(*) AS count").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		GroupBy(bucket, "type").
		OrderBy("bucket ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Bucket, &p.Type, &p.Total, &p.Count); err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

// AccountTotals sums amounts per (account, type) across all time. Account
// summaries are deliberately unbounded by period.
func (r *TransactionRepository) AccountTotals(ctx context.Context, userID uuid.UUID) ([]AccountTotal, error) {
	query := squirrel.Select("account", "type", "SUM(amount) AS total", "COUNT(*) AS count").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("account", "type").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []AccountTotal
	for rows.Next() {
		var t AccountTotal
		if err := rows.Scan(&t.Account, &t.Type, &t.Total, &t.Count); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

// TypeStats computes total, count, average and extrema per transaction type.
// Nil range bounds are unbounded.
func (r *TransactionRepository) TypeStats(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]TypeStat, error) {
	query := squirrel.Select("type", "SUM(amount) AS total", "COUNT(*) AS count", "AVG(amount) AS average", "MAX(amount) AS max", "MIN(amount) AS min").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("type").
		PlaceholderFormat(squirrel.Dollar)

	query = dateRangeConds(query, start, end)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []TypeStat
	for rows.Next() {
		var s TypeStat
		if err := rows.Scan(&s.Type, &s.Total, &s.Count, &s.Average, &s.Max, &s.Min); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
