package update

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bundlenudge/internal/auth"
	"bundlenudge/internal/background"
	"bundlenudge/internal/db"
)

const AppStoreMessage = "A new app version is required. Please update from the app store."

type store interface {
	GetApp(ctx context.Context, appID string) (db.App, error)
	GetServableRelease(ctx context.Context, appID string) (db.Release, error)
	TouchDevice(ctx context.Context, appID, deviceID, platform, appVersion, bundleVersion, bundleHash string) error
	InsertTelemetryEvent(ctx context.Context, event db.TelemetryEvent) error
}

type tokenVerifier interface {
	Verify(token, signingSecret string) (string, error)
}

// nativeGate is the external native-module compatibility checker. It is
// consulted as an opaque verdict; a nil gate means no native constraint
// beyond the release's version window.
type nativeGate interface {
	RequiresAppStoreUpdate(ctx context.Context, release db.Release, appVersion string) (bool, error)
}

type executor interface {
	Submit(task background.Task) bool
}

type Request struct {
	AppID                string
	DeviceID             string
	Platform             string
	AppVersion           string
	CurrentBundleVersion string
	CurrentBundleHash    string
	DeviceToken          string
}

type ReleasePayload struct {
	ReleaseID    string
	Version      string
	BundleURL    string
	Hash         string
	Size         int64
	ReleaseNotes string
}

type Decision struct {
	UpdateAvailable        bool
	RequiresAppStoreUpdate bool
	AppStoreMessage        string
	Release                *ReleasePayload
}

type Config struct {
	Store      store
	Verifier   tokenVerifier
	NativeGate nativeGate
	Executor   executor
}

// Engine decides, per device, whether the current servable release should
// be offered. Each gate short-circuits; a negative verdict is a normal
// response, never an error.
type Engine struct {
	store      store
	verifier   tokenVerifier
	nativeGate nativeGate
	executor   executor
}

func New(cfg Config) *Engine {
	return &Engine{
		store:      cfg.Store,
		verifier:   cfg.Verifier,
		nativeGate: cfg.NativeGate,
		executor:   cfg.Executor,
	}
}

func (e *Engine) Check(ctx context.Context, req Request) (Decision, error) {
	const fn = "Engine:Check"

	// Unknown app is a plain negative so update-check cannot be used to
	// probe which app IDs exist.
	app, err := e.store.GetApp(ctx, req.AppID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Decision{}, nil
		}
		return Decision{}, fmt.Errorf("%s:%w", fn, err)
	}

	// Anonymous first-run devices have no token yet; verification only
	// applies when one is presented.
	if req.DeviceToken != "" {
		deviceID, err := e.verifier.Verify(req.DeviceToken, app.SigningSecret)
		if err != nil {
			return Decision{}, fmt.Errorf("%s:%w", fn, err)
		}
		if deviceID != req.DeviceID {
			return Decision{}, fmt.Errorf("%s:%w", fn, auth.ErrInvalidToken)
		}
	}

	release, err := e.store.GetServableRelease(ctx, req.AppID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Decision{}, nil
		}
		return Decision{}, fmt.Errorf("%s:%w", fn, err)
	}

	// Already current, by version or by content hash.
	if req.CurrentBundleVersion == release.Version {
		return Decision{}, nil
	}
	if req.CurrentBundleHash != "" && req.CurrentBundleHash == release.BundleHash {
		return Decision{}, nil
	}

	if release.MinAppVersion != nil && compareVersions(req.AppVersion, *release.MinAppVersion) < 0 {
		return Decision{RequiresAppStoreUpdate: true, AppStoreMessage: AppStoreMessage}, nil
	}
	if release.MaxAppVersion != nil && compareVersions(req.AppVersion, *release.MaxAppVersion) > 0 {
		return Decision{RequiresAppStoreUpdate: true, AppStoreMessage: AppStoreMessage}, nil
	}
	if e.nativeGate != nil {
		required, err := e.nativeGate.RequiresAppStoreUpdate(ctx, release, req.AppVersion)
		if err != nil {
			return Decision{}, fmt.Errorf("%s:%w", fn, err)
		}
		if required {
			return Decision{RequiresAppStoreUpdate: true, AppStoreMessage: AppStoreMessage}, nil
		}
	}

	if !inRollout(req.DeviceID, release.RolloutPercentage) {
		return Decision{}, nil
	}

	e.recordServed(req, release)

	notes := ""
	if release.ReleaseNotes != nil {
		notes = *release.ReleaseNotes
	}
	return Decision{
		UpdateAvailable: true,
		Release: &ReleasePayload{
			ReleaseID:    release.ID,
			Version:      release.Version,
			BundleURL:    release.BundleURL,
			Hash:         release.BundleHash,
			Size:         release.BundleSize,
			ReleaseNotes: notes,
		},
	}, nil
}

// recordServed schedules the device touch and the update_check telemetry
// row off the request path. Failures here never change the verdict.
func (e *Engine) recordServed(req Request, release db.Release) {
	releaseID := release.ID
	e.executor.Submit(background.Task{
		Name: "device-touch",
		Run: func(ctx context.Context) {
			err := e.store.TouchDevice(ctx, req.AppID, req.DeviceID, req.Platform,
				req.AppVersion, req.CurrentBundleVersion, req.CurrentBundleHash)
			if err != nil {
				slog.ErrorContext(ctx, "Device touch failed", "device_id", req.DeviceID, "error", err)
			}
		},
	})
	e.executor.Submit(background.Task{
		Name: "update-check-event",
		Run: func(ctx context.Context) {
			err := e.store.InsertTelemetryEvent(ctx, db.TelemetryEvent{
				AppID:           req.AppID,
				DeviceID:        req.DeviceID,
				ReleaseID:       &releaseID,
				EventType:       db.EventUpdateCheck,
				ClientTimestamp: time.Now().UnixMilli(),
			})
			if err != nil {
				slog.ErrorContext(ctx, "Recording update_check event failed", "device_id", req.DeviceID, "error", err)
			}
		},
	})
}
