package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"bundlenudge/internal/auth"
	"bundlenudge/internal/db"
	"bundlenudge/internal/release"
	"bundlenudge/internal/telemetry"
)

// Error codes surfaced to clients. Everything unrecognized collapses to
// internal_error so storage details never leak.
const (
	codeNotFound         = "not_found"
	codeInvalidToken     = "invalid_token"
	codeValidationError  = "validation_error"
	codeDuplicateVersion = "duplicate_version"
	codeInvalidState     = "invalid_state"
	codeInternalError    = "internal_error"
)

var errValidation = errors.New("validation error")

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, codeInternalError
	switch {
	case errors.Is(err, db.ErrNotFound):
		status, code = http.StatusNotFound, codeNotFound
	case errors.Is(err, auth.ErrInvalidToken):
		status, code = http.StatusUnauthorized, codeInvalidToken
	case errors.Is(err, db.ErrDuplicateVersion):
		status, code = http.StatusConflict, codeDuplicateVersion
	case errors.Is(err, db.ErrInvalidState):
		status, code = http.StatusConflict, codeInvalidState
	case errors.Is(err, errValidation),
		errors.Is(err, release.ErrInvalidRollout),
		errors.Is(err, release.ErrEmptyVersion),
		errors.Is(err, telemetry.ErrInvalidEventType),
		errors.Is(err, telemetry.ErrBatchTooLarge),
		errors.Is(err, telemetry.ErrEmptyBatch):
		status, code = http.StatusBadRequest, codeValidationError
	}
	writeJSON(w, status, ErrorResponse{Error: code})
}
