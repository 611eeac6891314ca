package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	metricsdb "fitfeast/internal/metrics/db"
)

// SuggestionRun records one computation of recipe suggestions.
type SuggestionRun struct {
	OwnerID     string
	PantrySize  int
	CatalogSize int
	Makeable    int
	NearMiss    int
	LatencyMS   int64
	Timestamp   time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	queries *metricsdb.Queries
	db      *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{
		queries: metricsdb.New(db),
		db:      db,
	}
}

// Record saves a run to the database.
func (s *Store) Record(ctx context.Context, run SuggestionRun) error {
	ts := run.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	return s.queries.InsertSuggestionRun(ctx, metricsdb.InsertSuggestionRunParams{
		OwnerID:     run.OwnerID,
		PantrySize:  int64(run.PantrySize),
		CatalogSize: int64(run.CatalogSize),
		Makeable:    int64(run.Makeable),
		NearMiss:    int64(run.NearMiss),
		LatencyMs:   run.LatencyMS,
		Timestamp:   ts.UTC(),
	})
}

// DailyUsage aggregates suggestion runs for a single day.
type DailyUsage struct {
	Date          string
	Runs          int
	Users         int
	TotalMakeable int
	TotalNearMiss int
	AvgLatencyMS  float64
}

// GetDailyUsage retrieves usage for the last N days, newest day first.
func (s *Store) GetDailyUsage(ctx context.Context, days int) ([]DailyUsage, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.queries.GetDailyUsage(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily usage: %w", err)
	}

	var results []DailyUsage
	for _, r := range rows {
		u := DailyUsage{
			Runs:  int(r.Count),
			Users: int(r.Count_2),
		}

		switch day := r.Day.(type) {
		case string:
			u.Date = day
		case []byte:
			u.Date = string(day)
		default:
			u.Date = "Unknown"
		}

		if r.Sum.Valid {
			u.TotalMakeable = int(r.Sum.Float64)
		}
		if r.Sum_2.Valid {
			u.TotalNearMiss = int(r.Sum_2.Float64)
		}
		if r.Avg.Valid {
			u.AvgLatencyMS = r.Avg.Float64
		}

		results = append(results, u)
	}
	return results, nil
}

// Cleanup removes records older than the specified number of days and
// returns how many were deleted.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	n, err := s.queries.CleanupSuggestionRuns(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up suggestion runs: %w", err)
	}
	return n, nil
}
