package cache

import (
	"context"
	"time"

	"bundlenudge/internal/db"
)

// Store decorates the database for the update-check path: app lookups go
// through the TTL cache, everything else passes straight through.
type Store struct {
	*db.DB
	apps *AppCache
}

func NewStore(database *db.DB, ttl time.Duration) *Store {
	return &Store{
		DB:   database,
		apps: NewAppCache(database, ttl),
	}
}

func (s *Store) GetApp(ctx context.Context, appID string) (db.App, error) {
	return s.apps.GetApp(ctx, appID)
}
