package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"bundlenudge/internal/db"

	"github.com/stretchr/testify/assert"
)

type countingSource struct {
	mu    sync.Mutex
	calls int
	app   db.App
	err   error
}

func (s *countingSource) GetApp(ctx context.Context, appID string) (db.App, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return db.App{}, s.err
	}
	return s.app, nil
}

func Test_GetApp_CachesWithinTTL(t *testing.T) {
	source := &countingSource{app: db.App{ID: "app-1", Name: "cached"}}
	cache := NewAppCache(source, time.Minute)

	for i := 0; i < 5; i++ {
		app, err := cache.GetApp(context.Background(), "app-1")
		assert.NoError(t, err)
		assert.Equal(t, "cached", app.Name)
	}
	assert.Equal(t, 1, source.calls)
}

func Test_GetApp_ExpiredEntryRefetches(t *testing.T) {
	source := &countingSource{app: db.App{ID: "app-1"}}
	cache := NewAppCache(source, 10*time.Millisecond)

	_, err := cache.GetApp(context.Background(), "app-1")
	assert.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = cache.GetApp(context.Background(), "app-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

// Unknown apps are not cached, so creation is visible immediately.
func Test_GetApp_NotFoundNeverCached(t *testing.T) {
	source := &countingSource{err: db.ErrNotFound}
	cache := NewAppCache(source, time.Minute)

	_, err := cache.GetApp(context.Background(), "app-1")
	assert.ErrorIs(t, err, db.ErrNotFound)
	_, err = cache.GetApp(context.Background(), "app-1")
	assert.ErrorIs(t, err, db.ErrNotFound)
	assert.Equal(t, 2, source.calls)
}

func Test_Delete_ForcesRefetch(t *testing.T) {
	source := &countingSource{app: db.App{ID: "app-1"}}
	cache := NewAppCache(source, time.Minute)

	_, _ = cache.GetApp(context.Background(), "app-1")
	cache.Delete("app-1")
	_, _ = cache.GetApp(context.Background(), "app-1")
	assert.Equal(t, 2, source.calls)
}

func Test_GetApp_ConcurrentReaders(t *testing.T) {
	source := &countingSource{app: db.App{ID: "app-1"}}
	cache := NewAppCache(source, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.GetApp(context.Background(), "app-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, source.calls, 20)
	assert.GreaterOrEqual(t, source.calls, 1)
}
