package rollback

import (
	"context"
	"sync"
	"testing"

	"bundlenudge/internal/db"
	"bundlenudge/internal/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func intPtr(n int) *int { return &n }

type noopNotifier struct{}

func (noopNotifier) Publish(ctx context.Context, record stream.TransitionRecord) error { return nil }

func Test_Evaluate(t *testing.T) {
	cases := []struct {
		name         string
		setupStore   func(t *testing.T) store
		expectedFlip bool
	}{
		{
			name: "full crash rate below install floor does nothing",
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().GetApp(mock.Anything, "app-1").Return(db.App{ID: "app-1"}, nil)
				s.EXPECT().GetReleaseStats(mock.Anything, "rel-1").Return(db.ReleaseStats{
					ReleaseID:     "rel-1",
					TotalInstalls: 50,
					TotalCrashes:  50,
				}, nil)
				return s
			},
			expectedFlip: false,
		},
		{
			name: "crash rate over default threshold rolls back",
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().GetApp(mock.Anything, "app-1").Return(db.App{ID: "app-1"}, nil)
				s.EXPECT().GetReleaseStats(mock.Anything, "rel-1").Return(db.ReleaseStats{
					ReleaseID:     "rel-1",
					TotalInstalls: 150,
					TotalCrashes:  10,
				}, nil)
				s.EXPECT().MarkRolledBackIfActive(mock.Anything, "rel-1", AutoRollbackReason).Return(true, nil)
				return s
			},
			expectedFlip: true,
		},
		{
			name: "crash rate under threshold does nothing",
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().GetApp(mock.Anything, "app-1").Return(db.App{ID: "app-1"}, nil)
				s.EXPECT().GetReleaseStats(mock.Anything, "rel-1").Return(db.ReleaseStats{
					ReleaseID:     "rel-1",
					TotalInstalls: 1000,
					TotalCrashes:  10,
				}, nil)
				return s
			},
			expectedFlip: false,
		},
		{
			name: "app threshold overrides the default",
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().GetApp(mock.Anything, "app-1").Return(db.App{
					ID:                     "app-1",
					CrashRollbackThreshold: intPtr(1),
				}, nil)
				s.EXPECT().GetReleaseStats(mock.Anything, "rel-1").Return(db.ReleaseStats{
					ReleaseID:     "rel-1",
					TotalInstalls: 1000,
					TotalCrashes:  10,
				}, nil)
				s.EXPECT().MarkRolledBackIfActive(mock.Anything, "rel-1", AutoRollbackReason).Return(true, nil)
				return s
			},
			expectedFlip: true,
		},
		{
			name: "missing stats row means nothing to judge",
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().GetApp(mock.Anything, "app-1").Return(db.App{ID: "app-1"}, nil)
				s.EXPECT().GetReleaseStats(mock.Anything, "rel-1").Return(db.ReleaseStats{}, db.ErrNotFound)
				return s
			},
			expectedFlip: false,
		},
		{
			name: "release no longer active is a no-op",
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().GetApp(mock.Anything, "app-1").Return(db.App{ID: "app-1"}, nil)
				s.EXPECT().GetReleaseStats(mock.Anything, "rel-1").Return(db.ReleaseStats{
					ReleaseID:     "rel-1",
					TotalInstalls: 150,
					TotalCrashes:  10,
				}, nil)
				s.EXPECT().MarkRolledBackIfActive(mock.Anything, "rel-1", AutoRollbackReason).Return(false, nil)
				return s
			},
			expectedFlip: false,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			evaluator := New(tt.setupStore(t), noopNotifier{})
			flipped := evaluator.Evaluate(context.Background(), "app-1", "rel-1")
			assert.Equal(t, tt.expectedFlip, flipped)
		})
	}
}

// casStore emulates the database's conditional update: whatever the
// interleaving, only one caller observes the release active.
type casStore struct {
	mu     sync.Mutex
	status string
	reason string
	flips  int
	stats  db.ReleaseStats
}

func (s *casStore) GetApp(ctx context.Context, appID string) (db.App, error) {
	return db.App{ID: appID}, nil
}

func (s *casStore) GetReleaseStats(ctx context.Context, releaseID string) (db.ReleaseStats, error) {
	return s.stats, nil
}

func (s *casStore) MarkRolledBackIfActive(ctx context.Context, releaseID, reason string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != db.StatusActive {
		return false, nil
	}
	s.status = db.StatusRolledBack
	s.reason = reason
	s.flips++
	return true, nil
}

// Twenty concurrent crash reports past the threshold must produce exactly
// one effective transition.
func Test_Evaluate_IdempotentUnderConcurrency(t *testing.T) {
	store := &casStore{
		status: db.StatusActive,
		stats: db.ReleaseStats{
			ReleaseID:     "rel-1",
			TotalInstalls: 150,
			TotalCrashes:  10,
		},
	}
	evaluator := New(store, noopNotifier{})

	var wg sync.WaitGroup
	var mu sync.Mutex
	effective := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if evaluator.Evaluate(context.Background(), "app-1", "rel-1") {
				mu.Lock()
				effective++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, effective)
	assert.Equal(t, 1, store.flips)
	assert.Equal(t, db.StatusRolledBack, store.status)
	assert.Equal(t, AutoRollbackReason, store.reason)
}
