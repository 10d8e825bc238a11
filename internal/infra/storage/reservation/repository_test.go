package reservation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func date(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

var selectColumns = "SELECT " + strings.Join(columns, ", ") + " FROM reservations"

func TestOverlappingQuery(t *testing.T) {
	rng := domain.DateRange{Start: date(time.July, 10), End: date(time.July, 12)}

	query, args, err := overlappingQuery(rng, "").ToSql()
	require.NoError(t, err)
	assert.Equal(t, selectColumns+" WHERE status = $1 AND (start_date <= $2 AND end_date >= $3) ORDER BY start_date ASC", query)
	assert.Equal(t, []interface{}{domain.StatusApproved, "2025-07-12", "2025-07-10"}, args)
}

func TestOverlappingQuery_ExcludesReservation(t *testing.T) {
	rng := domain.DateRange{Start: date(time.July, 10), End: date(time.July, 12)}

	query, args, err := overlappingQuery(rng, "r-1").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "AND id <> $4")
	assert.Equal(t, "r-1", args[3])
}

func TestBeforeQuery(t *testing.T) {
	query, args, err := beforeQuery(date(time.July, 15), date(time.June, 15)).ToSql()
	require.NoError(t, err)
	assert.Equal(t, selectColumns+" WHERE status = $1 AND end_date < $2 AND end_date >= $3 ORDER BY end_date DESC LIMIT 1", query)
	assert.Equal(t, []interface{}{domain.StatusApproved, "2025-07-15", "2025-06-15"}, args)
}

func TestAfterQuery(t *testing.T) {
	query, args, err := afterQuery(date(time.July, 15), date(time.August, 15)).ToSql()
	require.NoError(t, err)
	assert.Equal(t, selectColumns+" WHERE status = $1 AND start_date > $2 AND start_date <= $3 ORDER BY start_date ASC LIMIT 1", query)
	assert.Equal(t, []interface{}{domain.StatusApproved, "2025-07-15", "2025-08-15"}, args)
}

func TestListQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		query, args, err := listQuery(domain.ReservationsFilter{}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, selectColumns+" ORDER BY start_date ASC, created_at ASC", query)
		assert.Empty(t, args)
	})

	t.Run("status and period", func(t *testing.T) {
		status := domain.StatusPending
		period := domain.DateRange{Start: date(time.July, 1), End: date(time.July, 31)}

		query, args, err := listQuery(domain.ReservationsFilter{Status: &status, Period: &period}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, selectColumns+" WHERE status = $1 AND (start_date <= $2 AND end_date >= $3) ORDER BY start_date ASC, created_at ASC", query)
		assert.Equal(t, []interface{}{domain.StatusPending, "2025-07-31", "2025-07-01"}, args)
	})
}

func TestDay_StripsTimeOfDay(t *testing.T) {
	assert.Equal(t, "2025-07-10", day(time.Date(2025, 7, 10, 23, 59, 0, 0, time.UTC)))
}

func TestIsExclusionViolation(t *testing.T) {
	assert.True(t, isExclusionViolation(fmt.Errorf("insert: %w", &pq.Error{Code: codeExclusionViolation})))
	assert.False(t, isExclusionViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isExclusionViolation(errors.New("other")))
}
