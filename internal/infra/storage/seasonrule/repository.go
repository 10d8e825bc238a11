package seasonrule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const table = "season_rules"

var columns = []string{
	"id",
	"name",
	"active",
	"is_high_season",
	"high_season_start_month",
	"high_season_end_month",
	"minimum_stay_days",
	"enforce_gap_between_bookings",
	"minimum_gap_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил сезона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindActive возвращает все активные правила. Пустой список не является ошибкой.
func (r *Repository) FindActive(ctx context.Context) ([]domain.SeasonRule, error) {
	query, args, err := activeQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActive - build select query: %v", ErrBuildQuery, err)
	}
	return r.query(ctx, "FindActive", query, args)
}

// GetAll возвращает все правила, включая неактивные
func (r *Repository) GetAll(ctx context.Context) ([]domain.SeasonRule, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("is_high_season DESC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}
	return r.query(ctx, "GetAll", query, args)
}

// GetByID получает правило по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.SeasonRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSeasonRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan season rule: %v", ErrScanRow, err)
	}
	return rule, nil
}

// Create сохраняет новое правило
func (r *Repository) Create(ctx context.Context, rule *domain.SeasonRule) (*domain.SeasonRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns[:9]...).
		Values(
			rule.ID,
			rule.Name,
			rule.Active,
			rule.IsHighSeason,
			rule.HighSeasonStartMonth,
			rule.HighSeasonEndMonth,
			rule.MinimumStayDays,
			rule.EnforceGapBetweenBookings,
			rule.MinimumGapDays,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rule.CreatedAt, &rule.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return rule, nil
}

// Update полностью заменяет поля правила
func (r *Repository) Update(ctx context.Context, rule *domain.SeasonRule) (*domain.SeasonRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateQuery(rule).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.CreatedAt, &rule.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSeasonRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	return rule, nil
}

// Delete удаляет правило
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
		return ErrSeasonRuleNotFound
	}
	return nil
}

func activeQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"active": true}).
		OrderBy("is_high_season DESC", "name ASC")
}

func updateQuery(rule *domain.SeasonRule) squirrel.UpdateBuilder {
	return psqlbuilder.Update(table).
		Set("name", rule.Name).
		Set("active", rule.Active).
		Set("is_high_season", rule.IsHighSeason).
		Set("high_season_start_month", rule.HighSeasonStartMonth).
		Set("high_season_end_month", rule.HighSeasonEndMonth).
		Set("minimum_stay_days", rule.MinimumStayDays).
		Set("enforce_gap_between_bookings", rule.EnforceGapBetweenBookings).
		Set("minimum_gap_days", rule.MinimumGapDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID}).
		Suffix("RETURNING created_at, updated_at")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.SeasonRule, error) {
	var (
		rule                 domain.SeasonRule
		startMonth, endMonth sql.NullInt64
		gapDays              sql.NullInt64
	)

	err := row.Scan(
		&rule.ID,
		&rule.Name,
		&rule.Active,
		&rule.IsHighSeason,
		&startMonth,
		&endMonth,
		&rule.MinimumStayDays,
		&rule.EnforceGapBetweenBookings,
		&gapDays,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.HighSeasonStartMonth = nullableInt(startMonth)
	rule.HighSeasonEndMonth = nullableInt(endMonth)
	rule.MinimumGapDays = nullableInt(gapDays)
	return &rule, nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]domain.SeasonRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rules := make([]domain.SeasonRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan season rule: %v", ErrScanRow, op, err)
		}
		rules = append(rules, *rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}
	return rules, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
