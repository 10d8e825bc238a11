package blockeddate

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const table = "blocked_dates"

var columns = []string{"id", "start_date", "end_date", "reason", "created_at"}

// Repository репозиторий периодов, закрытых владельцем
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый период блокировки
func (r *Repository) Create(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if blocked.ID == "" {
		blocked.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "start_date", "end_date", "reason").
		Values(blocked.ID, day(blocked.StartDate), day(blocked.EndDate), blocked.Reason).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&blocked.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blocked.StartDate = domain.DateOnly(blocked.StartDate)
	blocked.EndDate = domain.DateOnly(blocked.EndDate)
	return blocked, nil
}

// List возвращает все блокировки, упорядоченные по дате начала
func (r *Repository) List(ctx context.Context) ([]domain.BlockedDate, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}
	return r.query(ctx, "List", query, args)
}

// FindOverlapping блокировки, делящие хотя бы один день с диапазоном
func (r *Repository) FindOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.BlockedDate, error) {
	query, args, err := overlappingQuery(rng).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}
	return r.query(ctx, "FindOverlapping", query, args)
}

// Delete удаляет период блокировки
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}
	return nil
}

func overlappingQuery(rng domain.DateRange) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.LtOrEq{"start_date": day(rng.End)}).
		Where(squirrel.GtOrEq{"end_date": day(rng.Start)}).
		OrderBy("start_date ASC")
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	blocked := make([]domain.BlockedDate, 0)
	for rows.Next() {
		var (
			b      domain.BlockedDate
			reason sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.StartDate, &b.EndDate, &reason, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan blocked date: %v", ErrScanRow, op, err)
		}
		if reason.Valid {
			b.Reason = &reason.String
		}
		b.StartDate = domain.DateOnly(b.StartDate)
		b.EndDate = domain.DateOnly(b.EndDate)
		blocked = append(blocked, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}
	return blocked, nil
}

func day(t time.Time) string {
	return domain.DateOnly(t).Format(domain.DateFormat)
}
