package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const table = "reservations"

// codeExclusionViolation SQLSTATE нарушения EXCLUDE ограничения
const codeExclusionViolation = "23P01"

var columns = []string{
	"id",
	"start_date",
	"end_date",
	"status",
	"first_name",
	"last_name",
	"email",
	"phone",
	"address",
	"locality",
	"city",
	"number_of_people",
	"message",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование.
// Если в контексте есть транзакция, запрос выполняется в ней.
// Пересечение подтвержденных бронирований отклоняет сама база (ErrDatesTaken).
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.Status == "" {
		res.Status = domain.StatusPending
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns[:13]...).
		Values(
			res.ID,
			day(res.StartDate),
			day(res.EndDate),
			res.Status,
			res.Guest.FirstName,
			res.Guest.LastName,
			res.Guest.Email,
			res.Guest.Phone,
			res.Guest.Address,
			res.Guest.Locality,
			res.Guest.City,
			res.Guest.NumberOfPeople,
			res.Guest.Message,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrDatesTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.StartDate = domain.DateOnly(res.StartDate)
	res.EndDate = domain.DateOnly(res.EndDate)
	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}
	return res, nil
}

// List возвращает бронирования по фильтру, упорядоченные по дате заезда
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]domain.Reservation, error) {
	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}
	return r.queryReservations(ctx, "List", query, args)
}

// UpdateStatus меняет статус бронирования и возвращает обновленную запись
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrDatesTaken
		}
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	return res, nil
}

// Delete удаляет бронирование
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
		return ErrReservationNotFound
	}
	return nil
}

// FindApprovedOverlapping подтвержденные бронирования, делящие хотя бы один день с диапазоном
func (r *Repository) FindApprovedOverlapping(ctx context.Context, rng domain.DateRange) ([]domain.Reservation, error) {
	query, args, err := overlappingQuery(rng, "").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindApprovedOverlapping - build select query: %v", ErrBuildQuery, err)
	}
	return r.queryReservations(ctx, "FindApprovedOverlapping", query, args)
}

// FindApprovedOverlappingExcept то же, что FindApprovedOverlapping, без бронирования excludeID.
// Используется при подтверждении уже существующей заявки.
func (r *Repository) FindApprovedOverlappingExcept(ctx context.Context, rng domain.DateRange, excludeID string) ([]domain.Reservation, error) {
	query, args, err := overlappingQuery(rng, excludeID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindApprovedOverlappingExcept - build select query: %v", ErrBuildQuery, err)
	}
	return r.queryReservations(ctx, "FindApprovedOverlappingExcept", query, args)
}

// FindApprovedBefore ближайшее подтвержденное бронирование, закончившееся строго до date,
// но не раньше notBefore. nil, если такого нет.
func (r *Repository) FindApprovedBefore(ctx context.Context, date, notBefore time.Time) (*domain.Reservation, error) {
	query, args, err := beforeQuery(date, notBefore).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindApprovedBefore - build select query: %v", ErrBuildQuery, err)
	}
	return r.queryOne(ctx, "FindApprovedBefore", query, args)
}

// FindApprovedAfter ближайшее подтвержденное бронирование, начинающееся строго после date,
// но не позже notAfter. nil, если такого нет.
func (r *Repository) FindApprovedAfter(ctx context.Context, date, notAfter time.Time) (*domain.Reservation, error) {
	query, args, err := afterQuery(date, notAfter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindApprovedAfter - build select query: %v", ErrBuildQuery, err)
	}
	return r.queryOne(ctx, "FindApprovedAfter", query, args)
}

// Query builders

func listQuery(filter domain.ReservationsFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).From(table)

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Period != nil {
		builder = builder.Where(overlaps(*filter.Period))
	}

	return builder.OrderBy("start_date ASC", "created_at ASC")
}

func overlappingQuery(rng domain.DateRange, excludeID string) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		Where(overlaps(rng))

	if excludeID != "" {
		builder = builder.Where(squirrel.NotEq{"id": excludeID})
	}
	return builder.OrderBy("start_date ASC")
}

func beforeQuery(date, notBefore time.Time) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		Where(squirrel.Lt{"end_date": day(date)}).
		Where(squirrel.GtOrEq{"end_date": day(notBefore)}).
		OrderBy("end_date DESC").
		Limit(1)
}

func afterQuery(date, notAfter time.Time) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		Where(squirrel.Gt{"start_date": day(date)}).
		Where(squirrel.LtOrEq{"start_date": day(notAfter)}).
		OrderBy("start_date ASC").
		Limit(1)
}

// overlaps включительное пересечение: start <= rng.End AND end >= rng.Start
func overlaps(rng domain.DateRange) squirrel.And {
	return squirrel.And{
		squirrel.LtOrEq{"start_date": day(rng.End)},
		squirrel.GtOrEq{"end_date": day(rng.Start)},
	}
}

// Helper methods

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res     domain.Reservation
		message sql.NullString
	)

	err := row.Scan(
		&res.ID,
		&res.StartDate,
		&res.EndDate,
		&res.Status,
		&res.Guest.FirstName,
		&res.Guest.LastName,
		&res.Guest.Email,
		&res.Guest.Phone,
		&res.Guest.Address,
		&res.Guest.Locality,
		&res.Guest.City,
		&res.Guest.NumberOfPeople,
		&message,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if message.Valid {
		res.Guest.Message = &message.String
	}
	res.StartDate = domain.DateOnly(res.StartDate)
	res.EndDate = domain.DateOnly(res.EndDate)
	return &res, nil
}

func (r *Repository) queryReservations(ctx context.Context, op, query string, args []interface{}) ([]domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}
	return reservations, nil
}

func (r *Repository) queryOne(ctx context.Context, op, query string, args []interface{}) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
	}
	return res, nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

// day дата в формате YYYY-MM-DD; postgres сам приводит параметр к типу DATE
func day(t time.Time) string {
	return domain.DateOnly(t).Format(domain.DateFormat)
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeExclusionViolation
}
