package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bundlenudge/internal/background"
	"bundlenudge/internal/db"
	"bundlenudge/internal/stream"
)

const MaxBatchSize = 100

var (
	ErrInvalidEventType = errors.New("invalid telemetry event type")
	ErrBatchTooLarge    = errors.New("telemetry batch exceeds maximum size")
	ErrEmptyBatch       = errors.New("telemetry batch is empty")
)

type store interface {
	InsertTelemetryEvent(ctx context.Context, event db.TelemetryEvent) error
	InsertTelemetryEvents(ctx context.Context, events []db.TelemetryEvent) error
	IncrementDeviceCrashCount(ctx context.Context, appID, deviceID string) error
}

type aggregator interface {
	Record(ctx context.Context, releaseID, eventType string) error
	RecordBatch(ctx context.Context, events []db.TelemetryEvent) error
}

type evaluator interface {
	Evaluate(ctx context.Context, appID, releaseID string) bool
}

type publisher interface {
	Publish(ctx context.Context, record stream.TelemetryRecord) error
}

type executor interface {
	Submit(task background.Task) bool
}

type Config struct {
	Store      store
	Aggregator aggregator
	Evaluator  evaluator
	Publisher  publisher
	Executor   executor
}

// Ingestor accepts device telemetry. The raw event insert is the durable,
// user-visible part; counter increments, stream publishes and rollback
// evaluation are secondary. A dropped secondary update is a missed
// opportunity on one event, not a correctness problem, because every later
// event re-runs the same convergent logic.
type Ingestor struct {
	store      store
	aggregator aggregator
	evaluator  evaluator
	publisher  publisher
	executor   executor
}

func New(cfg Config) *Ingestor {
	return &Ingestor{
		store:      cfg.Store,
		aggregator: cfg.Aggregator,
		evaluator:  cfg.Evaluator,
		publisher:  cfg.Publisher,
		executor:   cfg.Executor,
	}
}

func (i *Ingestor) Record(ctx context.Context, event db.TelemetryEvent) error {
	const fn = "Ingestor:Record"
	if !db.ValidEventType(event.EventType) {
		return fmt.Errorf("%s:%w:%s", fn, ErrInvalidEventType, event.EventType)
	}
	if err := i.store.InsertTelemetryEvent(ctx, event); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	i.deferSecondary([]db.TelemetryEvent{event})
	return nil
}

func (i *Ingestor) RecordBatch(ctx context.Context, events []db.TelemetryEvent) error {
	const fn = "Ingestor:RecordBatch"
	if len(events) == 0 {
		return fmt.Errorf("%s:%w", fn, ErrEmptyBatch)
	}
	if len(events) > MaxBatchSize {
		return fmt.Errorf("%s:%w:%d", fn, ErrBatchTooLarge, len(events))
	}
	for _, event := range events {
		if !db.ValidEventType(event.EventType) {
			return fmt.Errorf("%s:%w:%s", fn, ErrInvalidEventType, event.EventType)
		}
	}
	if err := i.store.InsertTelemetryEvents(ctx, events); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	i.deferSecondary(events)
	return nil
}

// RecordCrash ingests a crash report. Unlike the other paths the crash
// counter increment and the rollback evaluation run before returning, so
// the release can be halted by the very report that crossed the
// threshold. Both stay best-effort: only the raw event write can fail the
// request.
func (i *Ingestor) RecordCrash(ctx context.Context, event db.TelemetryEvent) error {
	const fn = "Ingestor:RecordCrash"
	event.EventType = db.EventCrashDetected
	if err := i.store.InsertTelemetryEvent(ctx, event); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}

	if err := i.store.IncrementDeviceCrashCount(ctx, event.AppID, event.DeviceID); err != nil {
		slog.ErrorContext(ctx, "Device crash count update failed",
			"app_id", event.AppID, "device_id", event.DeviceID, "error", err)
	}

	if event.ReleaseID != nil {
		if err := i.aggregator.Record(ctx, *event.ReleaseID, event.EventType); err != nil {
			slog.ErrorContext(ctx, "Crash counter update failed",
				"release_id", *event.ReleaseID, "error", err)
		}
		i.evaluator.Evaluate(ctx, event.AppID, *event.ReleaseID)
	}

	i.publish(event)
	return nil
}

// deferSecondary hands counter updates and stream publishes to the
// background executor.
func (i *Ingestor) deferSecondary(events []db.TelemetryEvent) {
	batch := make([]db.TelemetryEvent, len(events))
	copy(batch, events)
	i.executor.Submit(background.Task{
		Name: "aggregate-telemetry",
		Run: func(ctx context.Context) {
			if err := i.aggregator.RecordBatch(ctx, batch); err != nil {
				slog.ErrorContext(ctx, "Aggregating telemetry failed", "error", err)
			}
		},
	})
	for _, event := range events {
		i.publish(event)
	}
}

func (i *Ingestor) publish(event db.TelemetryEvent) {
	if i.publisher == nil {
		return
	}
	record := stream.TelemetryRecord{
		AppID:     event.AppID,
		DeviceID:  event.DeviceID,
		EventType: event.EventType,
		Timestamp: event.ClientTimestamp,
	}
	if event.ReleaseID != nil {
		record.ReleaseID = *event.ReleaseID
	}
	i.executor.Submit(background.Task{
		Name: "publish-telemetry",
		Run: func(ctx context.Context) {
			if err := i.publisher.Publish(ctx, record); err != nil {
				slog.ErrorContext(ctx, "Publishing telemetry failed", "device_id", record.DeviceID, "error", err)
			}
		},
	})
}
