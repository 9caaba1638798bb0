package cache

import (
	"context"
	"sync"
	"time"

	"bundlenudge/internal/db"
)

// App rows are read on every update-check but change only when an operator
// edits the app, so a short TTL cache in front of the database takes the
// hottest query off Postgres. Entries are never invalidated explicitly; a
// stale signing secret or threshold lasts at most one TTL.

type appSource interface {
	GetApp(ctx context.Context, appID string) (db.App, error)
}

type entry struct {
	app       db.App
	expiresAt time.Time
}

type AppCache struct {
	source appSource
	ttl    time.Duration

	mu    sync.RWMutex
	store map[string]entry
}

func NewAppCache(source appSource, ttl time.Duration) *AppCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AppCache{
		source: source,
		ttl:    ttl,
		store:  make(map[string]entry),
	}
}

func (c *AppCache) GetApp(ctx context.Context, appID string) (db.App, error) {
	c.mu.RLock()
	cached, exists := c.store[appID]
	c.mu.RUnlock()
	if exists && time.Now().Before(cached.expiresAt) {
		return cached.app, nil
	}

	// Misses, including ErrNotFound, always go to the source; negative
	// results are not cached so a freshly created app is visible at once.
	app, err := c.source.GetApp(ctx, appID)
	if err != nil {
		return db.App{}, err
	}

	c.mu.Lock()
	c.store[appID] = entry{app: app, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return app, nil
}

func (c *AppCache) Delete(appID string) {
	c.mu.Lock()
	delete(c.store, appID)
	c.mu.Unlock()
}
