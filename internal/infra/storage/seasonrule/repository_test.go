package seasonrule

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func TestActiveQuery(t *testing.T) {
	query, args, err := activeQuery().ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "FROM season_rules WHERE active = $1 ORDER BY is_high_season DESC, name ASC")
	assert.Equal(t, []interface{}{true}, args)
}

func TestUpdateQuery_KeepsNullableMonths(t *testing.T) {
	rule := &domain.SeasonRule{ID: "r-1", Name: "Basse saison", Active: true, MinimumStayDays: 1}

	query, args, err := updateQuery(rule).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "UPDATE season_rules SET name = $1")
	assert.Contains(t, query, "updated_at = NOW() WHERE id = $9 RETURNING created_at, updated_at")
	require.Len(t, args, 9)
	assert.Nil(t, args[4])
	assert.Equal(t, "r-1", args[8])
}

func TestNullableInt(t *testing.T) {
	assert.Nil(t, nullableInt(sqlNull()))
	v := nullableInt(sqlInt(7))
	require.NotNil(t, v)
	assert.Equal(t, 7, *v)
}

func sqlNull() sql.NullInt64 {
	return sql.NullInt64{}
}

func sqlInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}
