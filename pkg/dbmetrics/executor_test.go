package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	*sql.DB
}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	db := &sql.DB{}

	t.Run("without transaction returns db", func(t *testing.T) {
		ctx := context.Background()
		assert.False(t, IsInTransaction(ctx))
		assert.Same(t, db, GetExecutor(ctx, db))
	})

	t.Run("with transaction returns tx", func(t *testing.T) {
		tx := stubTx{DB: &sql.DB{}}
		ctx := WithTx(context.Background(), tx)
		assert.True(t, IsInTransaction(ctx))
		assert.Equal(t, tx, GetExecutor(ctx, db))
	})
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM reservations"))
	assert.Equal(t, "insert", operation("  INSERT INTO blocked_dates"))
	assert.Equal(t, "unknown", operation(""))
}
