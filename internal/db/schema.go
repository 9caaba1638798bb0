package db

import "time"

// Release lifecycle states. Releases are never deleted; a row keeps its
// history through these states.
const (
	StatusPaused     = "paused"
	StatusActive     = "active"
	StatusRolledBack = "rolled_back"
)

// Telemetry event kinds reported by devices. The first four feed the
// release_stats counters; the rest are raw telemetry only.
const (
	EventUpdateCheck       = "update_check"
	EventUpdateDownloaded  = "update_downloaded"
	EventUpdateApplied     = "update_applied"
	EventUpdateFailed      = "update_failed"
	EventRollbackTriggered = "rollback_triggered"
	EventCrashDetected     = "crash_detected"
	EventRouteFailure      = "route_failure"
)

var eventTypes = map[string]bool{
	EventUpdateCheck:       true,
	EventUpdateDownloaded:  true,
	EventUpdateApplied:     true,
	EventUpdateFailed:      true,
	EventRollbackTriggered: true,
	EventCrashDetected:     true,
	EventRouteFailure:      true,
}

func ValidEventType(eventType string) bool {
	return eventTypes[eventType]
}

type App struct {
	ID                     string    `db:"id"`
	Name                   string    `db:"name"`
	SigningSecret          string    `db:"signing_secret"`
	CrashRollbackThreshold *int      `db:"crash_rollback_threshold"`
	CreatedAt              time.Time `db:"created_at"`
}

type Release struct {
	ID                string    `db:"id"`
	AppID             string    `db:"app_id"`
	Version           string    `db:"version"`
	BundleURL         string    `db:"bundle_url"`
	BundleHash        string    `db:"bundle_hash"`
	BundleSize        int64     `db:"bundle_size"`
	Status            string    `db:"status"`
	RolloutPercentage int       `db:"rollout_percentage"`
	MinAppVersion     *string   `db:"min_app_version"`
	MaxAppVersion     *string   `db:"max_app_version"`
	ReleaseNotes      *string   `db:"release_notes"`
	RollbackReason    *string   `db:"rollback_reason"`
	CreatedAt         time.Time `db:"created_at"`
}

type Device struct {
	ID                   string    `db:"id"`
	AppID                string    `db:"app_id"`
	DeviceID             string    `db:"device_id"`
	Platform             string    `db:"platform"`
	AppVersion           string    `db:"app_version"`
	CurrentBundleVersion string    `db:"current_bundle_version"`
	CurrentBundleHash    string    `db:"current_bundle_hash"`
	CrashCount           int       `db:"crash_count"`
	LastSeenAt           time.Time `db:"last_seen_at"`
}

type TelemetryEvent struct {
	ID              int64     `db:"id"`
	AppID           string    `db:"app_id"`
	DeviceID        string    `db:"device_id"`
	ReleaseID       *string   `db:"release_id"`
	EventType       string    `db:"event_type"`
	ErrorDetail     *string   `db:"error_detail"`
	ClientTimestamp int64     `db:"client_timestamp"`
	ReceivedAt      time.Time `db:"received_at"`
}

type ReleaseStats struct {
	ReleaseID      string    `db:"release_id"`
	TotalDownloads int64     `db:"total_downloads"`
	TotalInstalls  int64     `db:"total_installs"`
	TotalRollbacks int64     `db:"total_rollbacks"`
	TotalCrashes   int64     `db:"total_crashes"`
	LastUpdatedAt  time.Time `db:"last_updated_at"`
}
