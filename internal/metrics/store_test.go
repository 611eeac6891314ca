package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitfeast/internal/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "metrics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db.SQL)
}

func TestRecordAndDailyUsage(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1)
	runs := []SuggestionRun{
		{OwnerID: "a", Makeable: 2, NearMiss: 1, LatencyMS: 10, Timestamp: now},
		{OwnerID: "b", Makeable: 1, NearMiss: 0, LatencyMS: 30, Timestamp: now},
		{OwnerID: "a", Makeable: 0, NearMiss: 3, LatencyMS: 5, Timestamp: yesterday},
		{OwnerID: "a", Makeable: 9, LatencyMS: 5, Timestamp: now.AddDate(0, 0, -40)},
	}
	for _, r := range runs {
		require.NoError(t, s.Record(ctx, r))
	}

	usage, err := s.GetDailyUsage(ctx, 7)
	require.NoError(t, err)
	require.Len(t, usage, 2)

	assert.Equal(t, now.Format("2006-01-02"), usage[0].Date)
	assert.Equal(t, 2, usage[0].Runs)
	assert.Equal(t, 2, usage[0].Users)
	assert.Equal(t, 3, usage[0].TotalMakeable)
	assert.Equal(t, 1, usage[0].TotalNearMiss)
	assert.Equal(t, 20.0, usage[0].AvgLatencyMS)

	assert.Equal(t, yesterday.Format("2006-01-02"), usage[1].Date)
	assert.Equal(t, 3, usage[1].TotalNearMiss)
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	now := time.Now().UTC()
	require.NoError(t, s.Record(ctx, SuggestionRun{OwnerID: "a", Timestamp: now}))
	require.NoError(t, s.Record(ctx, SuggestionRun{OwnerID: "a", Timestamp: now.AddDate(0, 0, -31)}))
	require.NoError(t, s.Record(ctx, SuggestionRun{OwnerID: "b", Timestamp: now.AddDate(0, 0, -60)}))

	deleted, err := s.Cleanup(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	usage, err := s.GetDailyUsage(ctx, 365)
	require.NoError(t, err)
	require.Len(t, usage, 1)
	assert.Equal(t, 1, usage[0].Runs)
}

func TestGetSysHealth(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), make([]byte, 2048), 0644))

	h := GetSysHealth(dir)
	assert.Equal(t, 1, h.DataFiles)
	assert.Equal(t, "2.0 KB", h.DataSize)
	assert.Greater(t, h.Goroutines, 0)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.5 KB", FormatBytes(1536))
	assert.Equal(t, "3.0 MB", FormatBytes(3*1024*1024))
}
