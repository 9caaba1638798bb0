package telemetry

import (
	"context"
	"errors"
	"sync"
	"testing"

	"bundlenudge/internal/background"
	"bundlenudge/internal/db"
	"bundlenudge/internal/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

// syncExecutor runs submitted tasks inline so the test can assert on
// secondary effects without timing games.
type syncExecutor struct{}

func (syncExecutor) Submit(task background.Task) bool {
	task.Run(context.Background())
	return true
}

type fakeAggregator struct {
	mu      sync.Mutex
	singles []string
	batches [][]db.TelemetryEvent
	err     error
}

func (f *fakeAggregator) Record(ctx context.Context, releaseID, eventType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.singles = append(f.singles, releaseID+":"+eventType)
	return f.err
}

func (f *fakeAggregator) RecordBatch(ctx context.Context, events []db.TelemetryEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, events)
	return f.err
}

type fakeEvaluator struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeEvaluator) Evaluate(ctx context.Context, appID, releaseID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, appID+":"+releaseID)
	return false
}

type fakePublisher struct {
	mu      sync.Mutex
	records []stream.TelemetryRecord
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, record stream.TelemetryRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, record)
	return f.err
}

func newTestIngestor(s store) (*Ingestor, *fakeAggregator, *fakeEvaluator, *fakePublisher) {
	aggregator := &fakeAggregator{}
	evaluator := &fakeEvaluator{}
	publisher := &fakePublisher{}
	ingestor := New(Config{
		Store:      s,
		Aggregator: aggregator,
		Evaluator:  evaluator,
		Publisher:  publisher,
		Executor:   syncExecutor{},
	})
	return ingestor, aggregator, evaluator, publisher
}

func Test_Record(t *testing.T) {
	cases := []struct {
		name        string
		event       db.TelemetryEvent
		setupStore  func(t *testing.T) store
		expectedErr error
	}{
		{
			name: "valid event is persisted and fanned out",
			event: db.TelemetryEvent{
				AppID:     "app-1",
				DeviceID:  "device-1",
				ReleaseID: strPtr("rel-1"),
				EventType: db.EventUpdateDownloaded,
			},
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().InsertTelemetryEvent(mock.Anything, mock.Anything).Return(nil)
				return s
			},
		},
		{
			name: "unknown event type rejected before the store",
			event: db.TelemetryEvent{
				AppID:     "app-1",
				DeviceID:  "device-1",
				EventType: "telepathy",
			},
			setupStore: func(t *testing.T) store {
				return NewMockstore(t)
			},
			expectedErr: ErrInvalidEventType,
		},
		{
			name: "insert failure fails the request",
			event: db.TelemetryEvent{
				AppID:     "app-1",
				DeviceID:  "device-1",
				EventType: db.EventUpdateApplied,
			},
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().InsertTelemetryEvent(mock.Anything, mock.Anything).Return(db.ErrInsertFailed)
				return s
			},
			expectedErr: db.ErrInsertFailed,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			ingestor, aggregator, _, publisher := newTestIngestor(tt.setupStore(t))
			err := ingestor.Record(context.Background(), tt.event)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, aggregator.batches)
				assert.Empty(t, publisher.records)
				return
			}
			assert.NoError(t, err)
			if assert.Len(t, aggregator.batches, 1) {
				assert.Equal(t, tt.event.EventType, aggregator.batches[0][0].EventType)
			}
			if assert.Len(t, publisher.records, 1) {
				assert.Equal(t, tt.event.DeviceID, publisher.records[0].DeviceID)
			}
		})
	}
}

func Test_RecordBatch(t *testing.T) {
	makeEvents := func(n int) []db.TelemetryEvent {
		events := make([]db.TelemetryEvent, n)
		for i := range events {
			events[i] = db.TelemetryEvent{
				AppID:     "app-1",
				DeviceID:  "device-1",
				EventType: db.EventUpdateDownloaded,
			}
		}
		return events
	}

	cases := []struct {
		name        string
		events      []db.TelemetryEvent
		setupStore  func(t *testing.T) store
		expectedErr error
	}{
		{
			name:   "full batch persisted in one transaction",
			events: makeEvents(3),
			setupStore: func(t *testing.T) store {
				s := NewMockstore(t)
				s.EXPECT().InsertTelemetryEvents(mock.Anything, mock.Anything).Return(nil)
				return s
			},
		},
		{
			name:   "empty batch rejected",
			events: nil,
			setupStore: func(t *testing.T) store {
				return NewMockstore(t)
			},
			expectedErr: ErrEmptyBatch,
		},
		{
			name:   "oversized batch rejected",
			events: makeEvents(MaxBatchSize + 1),
			setupStore: func(t *testing.T) store {
				return NewMockstore(t)
			},
			expectedErr: ErrBatchTooLarge,
		},
		{
			name: "one bad event fails the whole batch",
			events: append(makeEvents(2), db.TelemetryEvent{
				AppID:     "app-1",
				DeviceID:  "device-1",
				EventType: "telepathy",
			}),
			setupStore: func(t *testing.T) store {
				return NewMockstore(t)
			},
			expectedErr: ErrInvalidEventType,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			ingestor, aggregator, _, publisher := newTestIngestor(tt.setupStore(t))
			err := ingestor.RecordBatch(context.Background(), tt.events)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, aggregator.batches)
				return
			}
			assert.NoError(t, err)
			if assert.Len(t, aggregator.batches, 1) {
				assert.Len(t, aggregator.batches[0], len(tt.events))
			}
			assert.Len(t, publisher.records, len(tt.events))
		})
	}
}

func Test_RecordCrash(t *testing.T) {
	s := NewMockstore(t)
	s.EXPECT().InsertTelemetryEvent(mock.Anything, mock.MatchedBy(func(event db.TelemetryEvent) bool {
		return event.EventType == db.EventCrashDetected
	})).Return(nil)
	s.EXPECT().IncrementDeviceCrashCount(mock.Anything, "app-1", "device-1").Return(nil)

	ingestor, aggregator, evaluator, publisher := newTestIngestor(s)
	err := ingestor.RecordCrash(context.Background(), db.TelemetryEvent{
		AppID:     "app-1",
		DeviceID:  "device-1",
		ReleaseID: strPtr("rel-1"),
		EventType: db.EventUpdateFailed, // overridden on the crash path
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"rel-1:" + db.EventCrashDetected}, aggregator.singles)
	assert.Equal(t, []string{"app-1:rel-1"}, evaluator.calls)
	if assert.Len(t, publisher.records, 1) {
		assert.Equal(t, db.EventCrashDetected, publisher.records[0].EventType)
	}
}

func Test_RecordCrash_WithoutRelease(t *testing.T) {
	s := NewMockstore(t)
	s.EXPECT().InsertTelemetryEvent(mock.Anything, mock.Anything).Return(nil)
	s.EXPECT().IncrementDeviceCrashCount(mock.Anything, "app-1", "device-1").Return(nil)

	ingestor, aggregator, evaluator, _ := newTestIngestor(s)
	err := ingestor.RecordCrash(context.Background(), db.TelemetryEvent{
		AppID:    "app-1",
		DeviceID: "device-1",
	})
	assert.NoError(t, err)
	assert.Empty(t, aggregator.singles)
	assert.Empty(t, evaluator.calls)
}

// Secondary failures must not fail the crash report; the raw event is
// already durable.
func Test_RecordCrash_SecondaryFailuresTolerated(t *testing.T) {
	s := NewMockstore(t)
	s.EXPECT().InsertTelemetryEvent(mock.Anything, mock.Anything).Return(nil)
	s.EXPECT().IncrementDeviceCrashCount(mock.Anything, "app-1", "device-1").Return(errors.New("failed"))

	aggregator := &fakeAggregator{err: errors.New("failed")}
	evaluator := &fakeEvaluator{}
	publisher := &fakePublisher{err: errors.New("failed")}
	ingestor := New(Config{
		Store:      s,
		Aggregator: aggregator,
		Evaluator:  evaluator,
		Publisher:  publisher,
		Executor:   syncExecutor{},
	})

	err := ingestor.RecordCrash(context.Background(), db.TelemetryEvent{
		AppID:     "app-1",
		DeviceID:  "device-1",
		ReleaseID: strPtr("rel-1"),
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"app-1:rel-1"}, evaluator.calls)
}
