package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devportfolio/portfolio-api/internal/models"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/metrics"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is the connection the repositories run on. *pgxpool.Pool satisfies it.
type DB interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// rowScanner is satisfied by pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// observe records metrics and a debug log line for one database operation
func observe(operation string, start time.Time, err error, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)

	status := "success"
	switch {
	case errors.Is(err, pgx.ErrNoRows), apperrors.Is(err, apperrors.ErrNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
		fields = append(fields, zap.Error(err))
	}

	metrics.DBOperationDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.DBOperationTotal.WithLabelValues(operation, status).Inc()
	logger.LogAPICall("postgres", operation, status, duration, fields...)
}

// validID reports whether id can address a UUID primary key. Malformed ids
// are treated as absent rows rather than database errors.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// notFound maps pgx.ErrNoRows to the domain not-found error
func notFound(err error, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFoundError(resource)
	}
	return err
}

// getByID loads one row by primary key
func getByID[T any](ctx context.Context, q querier, operation, resource, table, columns, id string, scan func(rowScanner) (*T, error)) (item *T, err error) {
	start := time.Now()
	defer func() { observe(operation, start, err) }()

	if !validID(id) {
		return nil, apperrors.NotFoundError(resource)
	}
	item, err = scan(q.QueryRow(ctx, "SELECT "+columns+" FROM "+table+" WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, resource)
	}
	return item, nil
}

// updateReturning applies set to one row and returns the updated row. Flag
// toggles flip in SQL so concurrent toggles never read a stale value.
func updateReturning[T any](ctx context.Context, q querier, operation, resource, table, set, columns, id string, scan func(rowScanner) (*T, error)) (item *T, err error) {
	start := time.Now()
	defer func() { observe(operation, start, err) }()

	if !validID(id) {
		return nil, apperrors.NotFoundError(resource)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 RETURNING %s", table, set, columns)
	item, err = scan(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, resource)
	}
	return item, nil
}

// deleteByID removes one row and reports whether it existed
func deleteByID(ctx context.Context, q querier, operation, table, id string) (deleted bool, err error) {
	start := time.Now()
	defer func() { observe(operation, start, err, zap.Bool("deleted", deleted)) }()

	if !validID(id) {
		return false, nil
	}
	tag, err := q.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}

func newID() string {
	return uuid.NewString()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func dateArg(d *models.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.Time
}

func dateFrom(t *time.Time) *models.Date {
	if t == nil {
		return nil
	}
	d := models.NewDate(*t)
	return &d
}

// collect drains rows through scan, closing them when done
func collect[T any](rows pgx.Rows, scan func(rowScanner) (*T, error)) ([]*T, error) {
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
