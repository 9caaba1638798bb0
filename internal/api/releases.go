package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"bundlenudge/internal/db"

	"github.com/go-chi/chi/v5"
)

// Bundles are zipped JS payloads; anything bigger than this is a client
// mistake, not a real bundle.
const maxBundleSize = 200 << 20

func releaseResponse(release db.Release) ReleaseResponse {
	return ReleaseResponse{
		ID:                release.ID,
		AppID:             release.AppID,
		Version:           release.Version,
		BundleURL:         release.BundleURL,
		BundleHash:        release.BundleHash,
		BundleSize:        release.BundleSize,
		Status:            release.Status,
		RolloutPercentage: release.RolloutPercentage,
		MinAppVersion:     release.MinAppVersion,
		MaxAppVersion:     release.MaxAppVersion,
		ReleaseNotes:      release.ReleaseNotes,
		RollbackReason:    release.RollbackReason,
		CreatedAt:         release.CreatedAt,
	}
}

func (a *API) CreateRelease(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "app_id")
	var req CreateReleaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", errValidation))
		return
	}
	release, err := a.releases.Create(r.Context(), appID, req.Version, req.MinAppVersion, req.MaxAppVersion, req.ReleaseNotes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, releaseResponse(release))
}

func (a *API) UploadBundle(w http.ResponseWriter, r *http.Request) {
	releaseID := chi.URLParam(r, "release_id")
	body := http.MaxBytesReader(w, r.Body, maxBundleSize)
	release, err := a.releases.AttachBundle(r.Context(), releaseID, body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, releaseResponse(release))
}

func (a *API) ActivateRelease(w http.ResponseWriter, r *http.Request) {
	releaseID := chi.URLParam(r, "release_id")
	var req ActivateReleaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", errValidation))
		return
	}
	rollout := 100
	if req.RolloutPercentage != nil {
		rollout = *req.RolloutPercentage
	}
	if err := a.releases.Activate(r.Context(), releaseID, rollout); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) PauseRelease(w http.ResponseWriter, r *http.Request) {
	releaseID := chi.URLParam(r, "release_id")
	if err := a.releases.Pause(r.Context(), releaseID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) RollbackRelease(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "app_id")
	var req RollbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", errValidation))
		return
	}
	if req.TargetReleaseID == "" {
		writeError(w, fmt.Errorf("%w: target_release_id is required", errValidation))
		return
	}
	if err := a.releases.Rollback(r.Context(), appID, req.TargetReleaseID, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) ListReleases(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "app_id")
	releases, err := a.releases.List(r.Context(), appID)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := ListReleasesResponse{Releases: make([]ReleaseResponse, 0, len(releases))}
	for _, release := range releases {
		resp.Releases = append(resp.Releases, releaseResponse(release))
	}
	writeJSON(w, http.StatusOK, resp)
}
