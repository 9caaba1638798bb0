package stats

import (
	"context"
	"errors"
	"testing"

	"bundlenudge/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func Test_Record(t *testing.T) {
	cases := []struct {
		name       string
		eventType  string
		setupStore func(t *testing.T) store
		expectErr  bool
	}{
		{
			name:      "download increments totalDownloads",
			eventType: db.EventUpdateDownloaded,
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().IncrementReleaseStat(mock.Anything, "rel-1", db.CounterDownloads, int64(1)).Return(nil)
				return s
			},
		},
		{
			name:      "install increments totalInstalls",
			eventType: db.EventUpdateApplied,
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().IncrementReleaseStat(mock.Anything, "rel-1", db.CounterInstalls, int64(1)).Return(nil)
				return s
			},
		},
		{
			name:      "rollback increments totalRollbacks",
			eventType: db.EventRollbackTriggered,
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().IncrementReleaseStat(mock.Anything, "rel-1", db.CounterRollbacks, int64(1)).Return(nil)
				return s
			},
		},
		{
			name:      "crash increments totalCrashes",
			eventType: db.EventCrashDetected,
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().IncrementReleaseStat(mock.Anything, "rel-1", db.CounterCrashes, int64(1)).Return(nil)
				return s
			},
		},
		{
			name:      "unmapped kind is a no-op",
			eventType: db.EventUpdateCheck,
			setupStore: func(t *testing.T) store {
				return NewMockstore(t)
			},
		},
		{
			name:      "store error surfaces",
			eventType: db.EventUpdateApplied,
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().IncrementReleaseStat(mock.Anything, "rel-1", db.CounterInstalls, int64(1)).Return(errors.New("failed"))
				return s
			},
			expectErr: true,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			aggregator := New(tt.setupStore(t))
			err := aggregator.Record(context.Background(), "rel-1", tt.eventType)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Batches group per (release, counter) so a full batch issues a bounded
// number of increments.
func Test_RecordBatch_Groups(t *testing.T) {
	events := []db.TelemetryEvent{
		{ReleaseID: strPtr("rel-1"), EventType: db.EventUpdateDownloaded},
		{ReleaseID: strPtr("rel-1"), EventType: db.EventUpdateDownloaded},
		{ReleaseID: strPtr("rel-1"), EventType: db.EventUpdateApplied},
		{ReleaseID: strPtr("rel-2"), EventType: db.EventUpdateDownloaded},
		{ReleaseID: strPtr("rel-2"), EventType: db.EventUpdateCheck},
		{ReleaseID: nil, EventType: db.EventUpdateDownloaded},
	}

	s := NewMockstore(t)
	s.EXPECT().IncrementReleaseStat(mock.Anything, "rel-1", db.CounterDownloads, int64(2)).Return(nil)
	s.EXPECT().IncrementReleaseStat(mock.Anything, "rel-1", db.CounterInstalls, int64(1)).Return(nil)
	s.EXPECT().IncrementReleaseStat(mock.Anything, "rel-2", db.CounterDownloads, int64(1)).Return(nil)

	aggregator := New(s)
	assert.NoError(t, aggregator.RecordBatch(context.Background(), events))
}
