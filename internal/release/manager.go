package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bundlenudge/internal/blob"
	"bundlenudge/internal/db"
	"bundlenudge/internal/stream"
)

const ManualRollbackReason = "Manual rollback"

var (
	ErrInvalidRollout = errors.New("rollout percentage must be between 0 and 100")
	ErrEmptyVersion   = errors.New("release version is required")
)

type store interface {
	CreateRelease(ctx context.Context, appID, version string, minAppVersion, maxAppVersion, releaseNotes *string) (db.Release, error)
	GetRelease(ctx context.Context, releaseID string) (db.Release, error)
	ListReleases(ctx context.Context, appID string) ([]db.Release, error)
	AttachBundle(ctx context.Context, releaseID, bundleURL, bundleHash string, bundleSize int64) error
	ActivateRelease(ctx context.Context, releaseID string, rolloutPercentage int) error
	PauseRelease(ctx context.Context, releaseID string) error
	RollbackRelease(ctx context.Context, appID, targetReleaseID, reason string) error
}

type notifier interface {
	Publish(ctx context.Context, record stream.TransitionRecord) error
}

type Config struct {
	Store    store
	Blobs    blob.Store
	Notifier notifier
}

// Manager owns the release state machine: paused on create, active once a
// bundle is attached and the release is activated, rolled_back only from
// active. Transitions go through conditional updates in the store, so the
// manager never needs a lock of its own.
type Manager struct {
	store    store
	blobs    blob.Store
	notifier notifier
}

func New(cfg Config) *Manager {
	return &Manager{
		store:    cfg.Store,
		blobs:    cfg.Blobs,
		notifier: cfg.Notifier,
	}
}

func (m *Manager) Create(ctx context.Context, appID, version string, minAppVersion, maxAppVersion, releaseNotes *string) (db.Release, error) {
	const fn = "Manager:Create"
	if version == "" {
		return db.Release{}, fmt.Errorf("%s:%w", fn, ErrEmptyVersion)
	}
	release, err := m.store.CreateRelease(ctx, appID, version, minAppVersion, maxAppVersion, releaseNotes)
	if err != nil {
		return db.Release{}, fmt.Errorf("%s:%w", fn, err)
	}
	return release, nil
}

// AttachBundle stores the uploaded content and records its locator, hash
// and size on the release. The release stays paused.
func (m *Manager) AttachBundle(ctx context.Context, releaseID string, content io.Reader) (db.Release, error) {
	const fn = "Manager:AttachBundle"
	release, err := m.store.GetRelease(ctx, releaseID)
	if err != nil {
		return db.Release{}, fmt.Errorf("%s:%w", fn, err)
	}

	object, err := m.blobs.Put(ctx, release.AppID, content)
	if err != nil {
		return db.Release{}, fmt.Errorf("%s:%w", fn, err)
	}

	if err := m.store.AttachBundle(ctx, releaseID, object.Locator, object.Hash, object.Size); err != nil {
		return db.Release{}, fmt.Errorf("%s:%w", fn, err)
	}

	release.BundleURL = object.Locator
	release.BundleHash = object.Hash
	release.BundleSize = object.Size
	return release, nil
}

func (m *Manager) Activate(ctx context.Context, releaseID string, rolloutPercentage int) error {
	const fn = "Manager:Activate"
	if rolloutPercentage < 0 || rolloutPercentage > 100 {
		return fmt.Errorf("%s:%w", fn, ErrInvalidRollout)
	}
	if err := m.store.ActivateRelease(ctx, releaseID, rolloutPercentage); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	m.publishTransition(ctx, releaseID, db.StatusPaused, db.StatusActive, "")
	return nil
}

func (m *Manager) Pause(ctx context.Context, releaseID string) error {
	const fn = "Manager:Pause"
	if err := m.store.PauseRelease(ctx, releaseID); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	m.publishTransition(ctx, releaseID, db.StatusActive, db.StatusPaused, "")
	return nil
}

// Rollback forces the target release active and every other active
// release of the app to rolled_back with the given reason.
func (m *Manager) Rollback(ctx context.Context, appID, targetReleaseID, reason string) error {
	const fn = "Manager:Rollback"
	if reason == "" {
		reason = ManualRollbackReason
	}
	if err := m.store.RollbackRelease(ctx, appID, targetReleaseID, reason); err != nil {
		return fmt.Errorf("%s:%w", fn, err)
	}
	m.publishTransition(ctx, targetReleaseID, db.StatusRolledBack, db.StatusActive, reason)
	return nil
}

func (m *Manager) List(ctx context.Context, appID string) ([]db.Release, error) {
	const fn = "Manager:List"
	releases, err := m.store.ListReleases(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}
	return releases, nil
}

// Transition announcements are best-effort; the row in Postgres is the
// source of truth and the webhook dispatcher reconciles from the topic.
func (m *Manager) publishTransition(ctx context.Context, releaseID, from, to, reason string) {
	if m.notifier == nil {
		return
	}
	release, err := m.store.GetRelease(ctx, releaseID)
	if err != nil {
		slog.ErrorContext(ctx, "Transition lookup failed", "release_id", releaseID, "error", err)
		return
	}
	err = m.notifier.Publish(ctx, stream.TransitionRecord{
		AppID:     release.AppID,
		ReleaseID: release.ID,
		Version:   release.Version,
		From:      from,
		To:        to,
		Reason:    reason,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Publishing transition failed", "release_id", releaseID, "error", err)
	}
}
