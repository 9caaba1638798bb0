package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"bundlenudge/internal/db"
)

func eventFromRequest(req TelemetryEventRequest) db.TelemetryEvent {
	return db.TelemetryEvent{
		AppID:           req.AppID,
		DeviceID:        req.DeviceID,
		ReleaseID:       req.ReleaseID,
		EventType:       req.EventType,
		ErrorDetail:     req.ErrorDetail,
		ClientTimestamp: req.Timestamp,
	}
}

func validateEventRequest(req TelemetryEventRequest) error {
	if req.AppID == "" || req.DeviceID == "" {
		return fmt.Errorf("%w: app_id and device_id are required", errValidation)
	}
	return nil
}

func (a *API) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req TelemetryEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", errValidation))
		return
	}
	if err := validateEventRequest(req); err != nil {
		writeError(w, err)
		return
	}
	if err := a.ingestor.Record(r.Context(), eventFromRequest(req)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (a *API) RecordEventBatch(w http.ResponseWriter, r *http.Request) {
	var req TelemetryBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", errValidation))
		return
	}
	events := make([]db.TelemetryEvent, 0, len(req.Events))
	for _, eventReq := range req.Events {
		if err := validateEventRequest(eventReq); err != nil {
			writeError(w, err)
			return
		}
		events = append(events, eventFromRequest(eventReq))
	}
	if err := a.ingestor.RecordBatch(r.Context(), events); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// RecordCrash is the dedicated crash endpoint: it also bumps the device
// crash count and runs the auto-rollback evaluation inside the ingestor.
func (a *API) RecordCrash(w http.ResponseWriter, r *http.Request) {
	var req TelemetryEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", errValidation))
		return
	}
	if err := validateEventRequest(req); err != nil {
		writeError(w, err)
		return
	}
	if err := a.ingestor.RecordCrash(r.Context(), eventFromRequest(req)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
