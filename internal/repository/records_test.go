package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *RecordRepository {
	t.Helper()
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewRecordRepository(db)
}

func TestRecordRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, ok, err := repo.Get(ctx, "planflow_tasks")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Put(ctx, "planflow_tasks", []byte(`[]`)))
	value, ok, err := repo.Get(ctx, "planflow_tasks")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), value)

	// Put overwrites.
	require.NoError(t, repo.Put(ctx, "planflow_tasks", []byte(`[{"id":"t1"}]`)))
	value, ok, err = repo.Get(ctx, "planflow_tasks")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"t1"}]`), value)
}

func TestRecordDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Put(ctx, "a", []byte("1")))
	require.NoError(t, repo.Put(ctx, "b", []byte("2")))

	require.NoError(t, repo.Delete(ctx, "a", "missing"))

	_, ok, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx))
}
