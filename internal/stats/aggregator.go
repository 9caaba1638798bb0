package stats

import (
	"context"
	"fmt"

	"bundlenudge/internal/db"
)

type store interface {
	IncrementReleaseStat(ctx context.Context, releaseID, counter string, delta int64) error
}

// counterForEvent maps the event kinds that feed aggregates. Kinds outside
// this map are stored as raw telemetry and leave the counters alone.
var counterForEvent = map[string]string{
	db.EventUpdateDownloaded:  db.CounterDownloads,
	db.EventUpdateApplied:     db.CounterInstalls,
	db.EventRollbackTriggered: db.CounterRollbacks,
	db.EventCrashDetected:     db.CounterCrashes,
}

// Aggregator folds telemetry into per-release counters. Every write is an
// atomic insert-or-increment keyed by release, so concurrent reports from
// many devices never lose updates.
type Aggregator struct {
	store store
}

func New(store store) *Aggregator {
	return &Aggregator{store: store}
}

func (a *Aggregator) Record(ctx context.Context, releaseID, eventType string) error {
	const fn = "Aggregator:Record"
	counter, ok := counterForEvent[eventType]
	if !ok {
		return nil
	}
	if err := a.store.IncrementReleaseStat(ctx, releaseID, counter, 1); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	return nil
}

// RecordBatch groups events by (release, counter) first so a 100-event
// batch issues at most a handful of increments.
func (a *Aggregator) RecordBatch(ctx context.Context, events []db.TelemetryEvent) error {
	const fn = "Aggregator:RecordBatch"
	type key struct {
		releaseID string
		counter   string
	}
	grouped := make(map[key]int64)
	for _, event := range events {
		if event.ReleaseID == nil {
			continue
		}
		counter, ok := counterForEvent[event.EventType]
		if !ok {
			continue
		}
		grouped[key{releaseID: *event.ReleaseID, counter: counter}]++
	}
	for k, delta := range grouped {
		if err := a.store.IncrementReleaseStat(ctx, k.releaseID, k.counter, delta); err != nil {
			return fmt.Errorf("%s:%w", fn, err)
		}
	}
	return nil
}
