package rollback

import (
	"context"
	"errors"
	"log/slog"

	"bundlenudge/internal/db"
	"bundlenudge/internal/stream"
)

const (
	// DefaultCrashThreshold applies when an app has no configured
	// crash-rollback threshold, as a percentage of installs.
	DefaultCrashThreshold = 5

	// minInstallSample keeps a handful of early crashes from killing a
	// rollout before the numbers mean anything.
	minInstallSample = 100

	AutoRollbackReason = "Automatic rollback: crash rate exceeded threshold"
)

type store interface {
	GetApp(ctx context.Context, appID string) (db.App, error)
	GetReleaseStats(ctx context.Context, releaseID string) (db.ReleaseStats, error)
	MarkRolledBackIfActive(ctx context.Context, releaseID, reason string) (bool, error)
}

type notifier interface {
	Publish(ctx context.Context, record stream.TransitionRecord) error
}

// Evaluator checks a release's crash rate after each crash report and
// halts the rollout once it crosses the app's threshold. Strictly
// best-effort: it never retries and never surfaces an error to the device
// that reported the crash, because the next crash re-runs it.
type Evaluator struct {
	store    store
	notifier notifier
}

func New(store store, notifier notifier) *Evaluator {
	return &Evaluator{store: store, notifier: notifier}
}

// Evaluate reports whether this call performed the rollback transition.
// Under concurrent crash reports only the caller whose conditional update
// observes the release active returns true; the rest are no-ops.
func (e *Evaluator) Evaluate(ctx context.Context, appID, releaseID string) bool {
	app, err := e.store.GetApp(ctx, appID)
	if err != nil {
		slog.ErrorContext(ctx, "Rollback evaluation skipped, app lookup failed", "app_id", appID, "error", err)
		return false
	}
	threshold := DefaultCrashThreshold
	if app.CrashRollbackThreshold != nil {
		threshold = *app.CrashRollbackThreshold
	}

	stats, err := e.store.GetReleaseStats(ctx, releaseID)
	if err != nil {
		// No stats row yet means no installs counted; nothing to judge.
		if !errors.Is(err, db.ErrNotFound) {
			slog.ErrorContext(ctx, "Rollback evaluation skipped, stats lookup failed", "release_id", releaseID, "error", err)
		}
		return false
	}
	if stats.TotalInstalls < minInstallSample {
		return false
	}

	crashRate := float64(stats.TotalCrashes) / float64(stats.TotalInstalls) * 100
	if crashRate < float64(threshold) {
		return false
	}

	flipped, err := e.store.MarkRolledBackIfActive(ctx, releaseID, AutoRollbackReason)
	if err != nil {
		slog.ErrorContext(ctx, "Automatic rollback update failed", "release_id", releaseID, "error", err)
		return false
	}
	if !flipped {
		return false
	}

	slog.InfoContext(ctx, "Automatic rollback triggered",
		"app_id", appID,
		"release_id", releaseID,
		"crash_rate", crashRate,
		"threshold", threshold,
	)
	if e.notifier != nil {
		err := e.notifier.Publish(ctx, stream.TransitionRecord{
			AppID:     appID,
			ReleaseID: releaseID,
			From:      db.StatusActive,
			To:        db.StatusRolledBack,
			Reason:    AutoRollbackReason,
		})
		if err != nil {
			slog.ErrorContext(ctx, "Publishing rollback transition failed", "release_id", releaseID, "error", err)
		}
	}
	return true
}
