package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
)

// Counters on the release_stats row. Values only ever grow; every write is
// a single insert-or-increment statement, never read-then-write.
const (
	CounterDownloads = "total_downloads"
	CounterInstalls  = "total_installs"
	CounterRollbacks = "total_rollbacks"
	CounterCrashes   = "total_crashes"
)

var statCounters = map[string]bool{
	CounterDownloads: true,
	CounterInstalls:  true,
	CounterRollbacks: true,
	CounterCrashes:   true,
}

var ErrUnknownCounter = errors.New("unknown stats counter")

func (db *DB) IncrementReleaseStat(ctx context.Context, releaseID, counter string, delta int64) error {
	const fn = "DB:IncrementReleaseStat"
	if !statCounters[counter] {
		return fmt.Errorf("%s:%w:%s", fn, ErrUnknownCounter, counter)
	}
	// counter is validated against the fixed column set above, so the
	// string concatenation cannot inject.
	query := fmt.Sprintf(`
		INSERT INTO release_stats (release_id, %[1]s)
		VALUES ($1, $2)
		ON CONFLICT (release_id) DO UPDATE SET
			%[1]s = release_stats.%[1]s + EXCLUDED.%[1]s,
			last_updated_at = now()
	`, counter)
	_, err := db.pool.Exec(ctx, query, releaseID, delta)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) GetReleaseStats(ctx context.Context, releaseID string) (ReleaseStats, error) {
	const fn = "DB:GetReleaseStats"
	var stats ReleaseStats
	err := pgxscan.Get(ctx, db.pool, &stats, `
		SELECT release_id, total_downloads, total_installs,
			total_rollbacks, total_crashes, last_updated_at
		FROM release_stats
		WHERE release_id = $1
	`, releaseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ReleaseStats{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return ReleaseStats{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return stats, nil
}
