package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"bundlenudge/internal/update"
)

func (a *API) CheckForUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", errValidation))
		return
	}
	if req.AppID == "" || req.DeviceID == "" || req.AppVersion == "" {
		writeError(w, fmt.Errorf("%w: app_id, device_id and app_version are required", errValidation))
		return
	}

	decision, err := a.engine.Check(r.Context(), update.Request{
		AppID:                req.AppID,
		DeviceID:             req.DeviceID,
		Platform:             req.Platform,
		AppVersion:           req.AppVersion,
		CurrentBundleVersion: req.CurrentBundleVersion,
		CurrentBundleHash:    req.CurrentBundleHash,
		DeviceToken:          bearerToken(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := UpdateCheckResponse{
		UpdateAvailable:        decision.UpdateAvailable,
		RequiresAppStoreUpdate: decision.RequiresAppStoreUpdate,
		AppStoreMessage:        decision.AppStoreMessage,
	}
	if decision.Release != nil {
		resp.Release = &ReleasePayload{
			ReleaseID:    decision.Release.ReleaseID,
			Version:      decision.Release.Version,
			BundleURL:    decision.Release.BundleURL,
			Hash:         decision.Release.Hash,
			Size:         decision.Release.Size,
			ReleaseNotes: decision.Release.ReleaseNotes,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
