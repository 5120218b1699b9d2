package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLite_Report_SaveAndGet(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	saved, err := st.SaveReport(ctx, "검증결과_20240205_090703.xlsx", []byte("xlsx bytes"), time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, saved.CreatedAt.Add(time.Hour), saved.ExpiresAt)

	got, err := st.GetReport(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "검증결과_20240205_090703.xlsx", got.FileName)
	assert.Equal(t, []byte("xlsx bytes"), got.Data)
	assert.True(t, saved.ExpiresAt.Equal(got.ExpiresAt))
}

func TestSQLite_Report_Missing(t *testing.T) {
	st := newTestSQLiteStore(t)

	got, err := st.GetReport(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_Report_Expired(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	saved, err := st.SaveReport(ctx, "old.xlsx", []byte("old"), -1*time.Hour)
	require.NoError(t, err)

	got, err := st.GetReport(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_DeleteExpiredReports(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.SaveReport(ctx, "old.xlsx", []byte("old"), -1*time.Hour)
	require.NoError(t, err)
	fresh, err := st.SaveReport(ctx, "new.xlsx", []byte("new"), time.Hour)
	require.NoError(t, err)

	n, err := st.DeleteExpiredReports(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := st.GetReport(ctx, fresh.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestSQLite_Clock(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	base := time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return base }

	saved, err := st.SaveReport(ctx, "r.xlsx", []byte("r"), 10*time.Minute)
	require.NoError(t, err)

	st.now = func() time.Time { return base.Add(11 * time.Minute) }
	got, err := st.GetReport(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_InMemory(t *testing.T) {
	st, err := NewSQLite(MemoryDSN)
	require.NoError(t, err)
	defer st.Close() //nolint:errcheck

	ctx := context.Background()
	require.NoError(t, st.Migrate(ctx))

	saved, err := st.SaveReport(ctx, "m.xlsx", []byte("m"), time.Minute)
	require.NoError(t, err)

	got, err := st.GetReport(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []byte("m"), got.Data)
}

func TestSQLiteStore_ImplementsReportStore(t *testing.T) {
	var _ ReportStore = (*SQLiteStore)(nil)
}
