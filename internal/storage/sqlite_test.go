package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/Veraticus/flightdeck/internal/timerange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewSQLiteStorage(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.ErrorIs(t, err, ErrEmptyString)

	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	assert.Equal(t, dbPath, store.Path())
}

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Running again is a no-op.
	require.NoError(t, store.Migrate(ctx))

	var indexCount int
	err = store.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='index' AND name='idx_ai_queries_created_at'`).Scan(&indexCount)
	require.NoError(t, err)
	assert.Equal(t, 1, indexCount)
}

func TestMigrateRejectsNewerSchema(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.db.ExecContext(ctx, "PRAGMA user_version = 99")
	require.NoError(t, err)

	err = store.Migrate(ctx)
	require.ErrorIs(t, err, common.ErrDatabaseCorrupted)
}

func TestSaveAndRecentQueries(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	filters := model.DefaultFilters()
	filters.Destination = "MNL"
	filters.Limit = model.DefaultAILimit
	filters.DepartureTimeRange = timerange.NewSet(timerange.Night)

	base := time.Date(2025, 10, 9, 8, 0, 0, 0, time.UTC)
	records := []*model.QueryRecord{
		{Query: "late night flights to Manila", Filters: &filters, ResultCount: 12, CreatedAt: base},
		{Query: "garbage query", Filters: nil, ResultCount: 0, CreatedAt: base.Add(time.Minute)},
		{Query: "morning flights", Filters: &filters, ResultCount: 3, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range records {
		require.NoError(t, store.SaveQuery(ctx, r))
		assert.NotZero(t, r.ID)
	}

	got, err := store.RecentQueries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "morning flights", got[0].Query)
	assert.Equal(t, "garbage query", got[1].Query)
	assert.Nil(t, got[1].Filters)
	assert.True(t, got[0].CreatedAt.Equal(base.Add(2*time.Minute)))

	all, err := store.RecentQueries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	oldest := all[2]
	require.NotNil(t, oldest.Filters)
	assert.Equal(t, filters, *oldest.Filters)
	assert.Equal(t, 12, oldest.ResultCount)

	_, err = store.RecentQueries(ctx, -1)
	require.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestSaveQueryValidation(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tests := []struct {
		name    string
		record  *model.QueryRecord
		wantErr error
	}{
		{"nil record", nil, ErrNilParameter},
		{"blank query", &model.QueryRecord{Query: "  "}, ErrInvalidQuery},
		{"negative count", &model.QueryRecord{Query: "x", ResultCount: -1}, ErrInvalidQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveQuery(ctx, tt.record)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	//nolint:staticcheck // nil context is the case under test
	err := store.SaveQuery(nil, &model.QueryRecord{Query: "x"})
	require.ErrorIs(t, err, ErrNilContext)
}

func TestGetAndClearQueries(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	record := &model.QueryRecord{Query: "flights after 5pm", ResultCount: 4}
	require.NoError(t, store.SaveQuery(ctx, record))
	assert.False(t, record.CreatedAt.IsZero())

	got, err := store.GetQuery(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "flights after 5pm", got.Query)

	_, err = store.GetQuery(ctx, record.ID+100)
	require.ErrorIs(t, err, common.ErrNotFound)

	removed, err := store.ClearQueries(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	remaining, err := store.RecentQueries(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestCorruptFiltersAreReported(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.db.ExecContext(ctx,
		`INSERT INTO ai_queries (user_query, parsed_filters, result_count) VALUES ('q', '{not json', 0)`)
	require.NoError(t, err)

	_, err = store.RecentQueries(ctx, 10)
	require.ErrorIs(t, err, common.ErrDatabaseCorrupted)
}
