package api

import "time"

type UpdateCheckRequest struct {
	AppID                string `json:"app_id"`
	DeviceID             string `json:"device_id"`
	Platform             string `json:"platform"`
	AppVersion           string `json:"app_version"`
	CurrentBundleVersion string `json:"current_bundle_version"`
	CurrentBundleHash    string `json:"current_bundle_hash"`
}

type UpdateCheckResponse struct {
	UpdateAvailable        bool             `json:"update_available"`
	RequiresAppStoreUpdate bool             `json:"requires_app_store_update,omitempty"`
	AppStoreMessage        string           `json:"app_store_message,omitempty"`
	Release                *ReleasePayload  `json:"release,omitempty"`
}

type ReleasePayload struct {
	ReleaseID    string `json:"release_id"`
	Version      string `json:"version"`
	BundleURL    string `json:"bundle_url"`
	Hash         string `json:"hash"`
	Size         int64  `json:"size"`
	ReleaseNotes string `json:"release_notes,omitempty"`
}

type TelemetryEventRequest struct {
	AppID       string  `json:"app_id"`
	DeviceID    string  `json:"device_id"`
	EventType   string  `json:"event_type"`
	ReleaseID   *string `json:"release_id,omitempty"`
	ErrorDetail *string `json:"error_detail,omitempty"`
	Timestamp   int64   `json:"timestamp"`
}

type TelemetryBatchRequest struct {
	Events []TelemetryEventRequest `json:"events"`
}

type CreateAppRequest struct {
	Name                   string `json:"name"`
	SigningSecret          string `json:"signing_secret"`
	CrashRollbackThreshold *int   `json:"crash_rollback_threshold,omitempty"`
}

type AppResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReleaseRequest struct {
	Version       string  `json:"version"`
	MinAppVersion *string `json:"min_app_version,omitempty"`
	MaxAppVersion *string `json:"max_app_version,omitempty"`
	ReleaseNotes  *string `json:"release_notes,omitempty"`
}

type ReleaseResponse struct {
	ID                string    `json:"id"`
	AppID             string    `json:"app_id"`
	Version           string    `json:"version"`
	BundleURL         string    `json:"bundle_url,omitempty"`
	BundleHash        string    `json:"bundle_hash,omitempty"`
	BundleSize        int64     `json:"bundle_size,omitempty"`
	Status            string    `json:"status"`
	RolloutPercentage int       `json:"rollout_percentage"`
	MinAppVersion     *string   `json:"min_app_version,omitempty"`
	MaxAppVersion     *string   `json:"max_app_version,omitempty"`
	ReleaseNotes      *string   `json:"release_notes,omitempty"`
	RollbackReason    *string   `json:"rollback_reason,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type ActivateReleaseRequest struct {
	RolloutPercentage *int `json:"rollout_percentage"`
}

type RollbackRequest struct {
	TargetReleaseID string `json:"target_release_id"`
	Reason          string `json:"reason,omitempty"`
}

type ListReleasesResponse struct {
	Releases []ReleaseResponse `json:"releases"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
