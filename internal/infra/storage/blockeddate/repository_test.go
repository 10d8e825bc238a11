package blockeddate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func TestOverlappingQuery(t *testing.T) {
	rng := domain.DateRange{
		Start: time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 7, 22, 0, 0, 0, 0, time.UTC),
	}

	query, args, err := overlappingQuery(rng).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, start_date, end_date, reason, created_at FROM blocked_dates WHERE start_date <= $1 AND end_date >= $2 ORDER BY start_date ASC",
		query)
	assert.Equal(t, []interface{}{"2025-07-22", "2025-07-20"}, args)
}
