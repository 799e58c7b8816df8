// Failure-path tests for the reorder engine, using a mock driver to
// force errors mid-swap and verify the transaction rolls back.
package sqlite

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

func TestMove_RollsBackOnSwapFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	store := &Store{db: db, log: zap.NewNop().Sugar()}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, order_index FROM sections WHERE category_id = ? ORDER BY order_index").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_index"}).
			AddRow(int64(1), 1).
			AddRow(int64(2), 2))
	// The first swap statement fails; nothing may commit.
	mock.ExpectExec("UPDATE sections SET order_index = ? WHERE id = ?").
		WithArgs(orderIndexSentinel, int64(2)).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	moved, err := store.MoveSection(2, 7, types.MoveUp)
	assert.Error(t, err)
	assert.False(t, moved)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMove_RollsBackOnCommitFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	store := &Store{db: db, log: zap.NewNop().Sugar()}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, order_index FROM sections WHERE category_id = ? ORDER BY order_index").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_index"}).
			AddRow(int64(1), 1).
			AddRow(int64(2), 2))
	mock.ExpectExec("UPDATE sections SET order_index = ? WHERE id = ?").
		WithArgs(orderIndexSentinel, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE sections SET order_index = ? WHERE id = ?").
		WithArgs(2, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE sections SET order_index = ? WHERE id = ?").
		WithArgs(1, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("database is locked"))

	moved, err := store.MoveSection(2, 7, types.MoveUp)
	assert.Error(t, err)
	assert.False(t, moved)

	assert.NoError(t, mock.ExpectationsWereMet())
}
