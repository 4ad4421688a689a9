package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execRecorder captures Exec calls instead of hitting a database.
type execRecorder struct {
	sql  string
	args []any
	err  error
}

func (e *execRecorder) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	e.sql = sql
	e.args = args
	return pgconn.CommandTag{}, e.err
}

func (e *execRecorder) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}

func TestAppendRowInsertsApplication(t *testing.T) {
	db := &execRecorder{}
	repo := NewApplicationRepository(db)

	row := []string{"2026-08-30 09:00:00", "Alex", "Rivera", "555-0134"}
	require.NoError(t, repo.AppendRow(context.Background(), row))

	assert.Contains(t, db.sql, "INSERT INTO applications")
	require.Len(t, db.args, 3)

	_, err := uuid.Parse(db.args[0].(string))
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC), db.args[1])
	assert.Equal(t, []string{"Alex", "Rivera", "555-0134"}, db.args[2])
}

func TestAppendRowRejectsEmptyRow(t *testing.T) {
	repo := NewApplicationRepository(&execRecorder{})

	err := repo.AppendRow(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyRow)
}

func TestAppendRowRejectsBadTimestamp(t *testing.T) {
	repo := NewApplicationRepository(&execRecorder{})

	err := repo.AppendRow(context.Background(), []string{"not a timestamp", "Alex"})
	assert.ErrorContains(t, err, "parse submission timestamp")
}

func TestAppendRowWrapsExecError(t *testing.T) {
	db := &execRecorder{err: errors.New("connection refused")}
	repo := NewApplicationRepository(db)

	err := repo.AppendRow(context.Background(), []string{"2026-08-30 09:00:00"})
	assert.ErrorContains(t, err, "insert application")
}
