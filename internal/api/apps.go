package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (a *API) CreateApp(w http.ResponseWriter, r *http.Request) {
	var req CreateAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", errValidation))
		return
	}
	if req.Name == "" {
		writeError(w, fmt.Errorf("%w: name is required", errValidation))
		return
	}
	app, err := a.apps.CreateApp(r.Context(), req.Name, req.SigningSecret, req.CrashRollbackThreshold)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, AppResponse{
		ID:        app.ID,
		Name:      app.Name,
		CreatedAt: app.CreatedAt,
	})
}
