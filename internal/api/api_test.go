package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bundlenudge/internal/auth"
	"bundlenudge/internal/db"
	"bundlenudge/internal/release"
	"bundlenudge/internal/telemetry"
	"bundlenudge/internal/update"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

type apiMocks struct {
	engine   *MockupdateEngine
	releases *MockreleaseManager
	ingestor *Mockingestor
	apps     *MockappStore
}

func newTestAPI(t *testing.T) (*API, apiMocks) {
	mocks := apiMocks{
		engine:   NewMockupdateEngine(t),
		releases: NewMockreleaseManager(t),
		ingestor: NewMockingestor(t),
		apps:     NewMockappStore(t),
	}
	a := New(Config{
		Engine:   mocks.engine,
		Releases: mocks.releases,
		Ingestor: mocks.ingestor,
		Apps:     mocks.apps,
	})
	return a, mocks
}

func doJSON(t *testing.T, a *API, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, req)
	return rec
}

func Test_Health(t *testing.T) {
	a, _ := newTestAPI(t)
	rec := doJSON(t, a, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func Test_CheckForUpdate(t *testing.T) {
	cases := []struct {
		name           string
		body           any
		setup          func(m apiMocks)
		expectedStatus int
		check          func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "update offered",
			body: UpdateCheckRequest{
				AppID:      "app-1",
				DeviceID:   "device-1",
				AppVersion: "2.0.0",
			},
			setup: func(m apiMocks) {
				m.engine.EXPECT().Check(mock.Anything, mock.Anything).Return(update.Decision{
					UpdateAvailable: true,
					Release: &update.ReleasePayload{
						ReleaseID: "rel-1",
						Version:   "1.2.0",
						BundleURL: "https://cdn.example.com/bundle.zip",
						Hash:      "abc",
						Size:      1024,
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp UpdateCheckResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.UpdateAvailable)
				if assert.NotNil(t, resp.Release) {
					assert.Equal(t, "1.2.0", resp.Release.Version)
				}
			},
		},
		{
			name: "no update available",
			body: UpdateCheckRequest{
				AppID:      "app-1",
				DeviceID:   "device-1",
				AppVersion: "2.0.0",
			},
			setup: func(m apiMocks) {
				m.engine.EXPECT().Check(mock.Anything, mock.Anything).Return(update.Decision{}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp UpdateCheckResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.False(t, resp.UpdateAvailable)
				assert.Nil(t, resp.Release)
			},
		},
		{
			name: "app store update required",
			body: UpdateCheckRequest{
				AppID:      "app-1",
				DeviceID:   "device-1",
				AppVersion: "1.0.0",
			},
			setup: func(m apiMocks) {
				m.engine.EXPECT().Check(mock.Anything, mock.Anything).Return(update.Decision{
					RequiresAppStoreUpdate: true,
					AppStoreMessage:        update.AppStoreMessage,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp UpdateCheckResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.RequiresAppStoreUpdate)
				assert.Equal(t, update.AppStoreMessage, resp.AppStoreMessage)
			},
		},
		{
			name: "missing fields rejected",
			body: UpdateCheckRequest{AppID: "app-1"},
			setup: func(m apiMocks) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid token is unauthorized",
			body: UpdateCheckRequest{
				AppID:      "app-1",
				DeviceID:   "device-1",
				AppVersion: "2.0.0",
			},
			setup: func(m apiMocks) {
				m.engine.EXPECT().Check(mock.Anything, mock.Anything).Return(update.Decision{}, auth.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "invalid_token", resp.Error)
			},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			a, mocks := newTestAPI(t)
			tt.setup(mocks)
			rec := doJSON(t, a, http.MethodPost, "/v1/update-check", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func Test_CheckForUpdate_ForwardsBearerToken(t *testing.T) {
	a, mocks := newTestAPI(t)
	mocks.engine.EXPECT().Check(mock.Anything, mock.MatchedBy(func(req update.Request) bool {
		return req.DeviceToken == "token-123"
	})).Return(update.Decision{}, nil)

	raw, _ := json.Marshal(UpdateCheckRequest{AppID: "app-1", DeviceID: "device-1", AppVersion: "2.0.0"})
	req := httptest.NewRequest(http.MethodPost, "/v1/update-check", bytes.NewReader(raw))
	req.Header.Set("Authorization", "Bearer token-123")
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_RecordEvent(t *testing.T) {
	cases := []struct {
		name           string
		body           any
		setup          func(m apiMocks)
		expectedStatus int
	}{
		{
			name: "event accepted",
			body: TelemetryEventRequest{
				AppID:     "app-1",
				DeviceID:  "device-1",
				EventType: db.EventUpdateApplied,
				ReleaseID: strPtr("rel-1"),
			},
			setup: func(m apiMocks) {
				m.ingestor.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing device rejected",
			body: TelemetryEventRequest{AppID: "app-1", EventType: db.EventUpdateApplied},
			setup: func(m apiMocks) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown event type rejected",
			body: TelemetryEventRequest{
				AppID:     "app-1",
				DeviceID:  "device-1",
				EventType: "telepathy",
			},
			setup: func(m apiMocks) {
				m.ingestor.EXPECT().Record(mock.Anything, mock.Anything).Return(telemetry.ErrInvalidEventType)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			a, mocks := newTestAPI(t)
			tt.setup(mocks)
			rec := doJSON(t, a, http.MethodPost, "/v1/telemetry", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func Test_RecordEventBatch(t *testing.T) {
	a, mocks := newTestAPI(t)
	mocks.ingestor.EXPECT().RecordBatch(mock.Anything, mock.MatchedBy(func(events []db.TelemetryEvent) bool {
		return len(events) == 2
	})).Return(nil)

	rec := doJSON(t, a, http.MethodPost, "/v1/telemetry/batch", TelemetryBatchRequest{
		Events: []TelemetryEventRequest{
			{AppID: "app-1", DeviceID: "device-1", EventType: db.EventUpdateDownloaded},
			{AppID: "app-1", DeviceID: "device-1", EventType: db.EventUpdateApplied},
		},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func Test_RecordEventBatch_TooLarge(t *testing.T) {
	a, mocks := newTestAPI(t)
	mocks.ingestor.EXPECT().RecordBatch(mock.Anything, mock.Anything).Return(telemetry.ErrBatchTooLarge)

	events := make([]TelemetryEventRequest, telemetry.MaxBatchSize+1)
	for i := range events {
		events[i] = TelemetryEventRequest{AppID: "app-1", DeviceID: "device-1", EventType: db.EventUpdateCheck}
	}
	rec := doJSON(t, a, http.MethodPost, "/v1/telemetry/batch", TelemetryBatchRequest{Events: events})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_RecordCrash(t *testing.T) {
	a, mocks := newTestAPI(t)
	mocks.ingestor.EXPECT().RecordCrash(mock.Anything, mock.MatchedBy(func(event db.TelemetryEvent) bool {
		return event.DeviceID == "device-1"
	})).Return(nil)

	rec := doJSON(t, a, http.MethodPost, "/v1/telemetry/crash", TelemetryEventRequest{
		AppID:     "app-1",
		DeviceID:  "device-1",
		EventType: db.EventCrashDetected,
		ReleaseID: strPtr("rel-1"),
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func Test_CreateApp(t *testing.T) {
	cases := []struct {
		name           string
		body           any
		setup          func(m apiMocks)
		expectedStatus int
	}{
		{
			name: "app created",
			body: CreateAppRequest{Name: "shopping-app", SigningSecret: "secret", CrashRollbackThreshold: intPtr(3)},
			setup: func(m apiMocks) {
				m.apps.EXPECT().CreateApp(mock.Anything, "shopping-app", "secret", intPtr(3)).
					Return(db.App{ID: "app-1", Name: "shopping-app"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "name required",
			body: CreateAppRequest{SigningSecret: "secret"},
			setup: func(m apiMocks) {
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			a, mocks := newTestAPI(t)
			tt.setup(mocks)
			rec := doJSON(t, a, http.MethodPost, "/v1/apps", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func Test_CreateRelease(t *testing.T) {
	cases := []struct {
		name           string
		body           any
		setup          func(m apiMocks)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "release created paused",
			body: CreateReleaseRequest{Version: "1.2.0"},
			setup: func(m apiMocks) {
				m.releases.EXPECT().Create(mock.Anything, "app-1", "1.2.0", (*string)(nil), (*string)(nil), (*string)(nil)).
					Return(db.Release{ID: "rel-1", AppID: "app-1", Version: "1.2.0", Status: db.StatusPaused}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate version conflicts",
			body: CreateReleaseRequest{Version: "1.2.0"},
			setup: func(m apiMocks) {
				m.releases.EXPECT().Create(mock.Anything, "app-1", "1.2.0", (*string)(nil), (*string)(nil), (*string)(nil)).
					Return(db.Release{}, db.ErrDuplicateVersion)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "duplicate_version",
		},
		{
			name: "empty version rejected",
			body: CreateReleaseRequest{},
			setup: func(m apiMocks) {
				m.releases.EXPECT().Create(mock.Anything, "app-1", "", (*string)(nil), (*string)(nil), (*string)(nil)).
					Return(db.Release{}, release.ErrEmptyVersion)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "validation_error",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			a, mocks := newTestAPI(t)
			tt.setup(mocks)
			rec := doJSON(t, a, http.MethodPost, "/v1/apps/app-1/releases", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func Test_UploadBundle(t *testing.T) {
	a, mocks := newTestAPI(t)
	mocks.releases.EXPECT().AttachBundle(mock.Anything, "rel-1", mock.Anything).
		Return(db.Release{
			ID:         "rel-1",
			BundleURL:  "fs:///bundles/app-1/abc",
			BundleHash: "abc",
			BundleSize: 9,
			Status:     db.StatusPaused,
		}, nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/releases/rel-1/bundle", strings.NewReader("bundlezip"))
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ReleaseResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp.BundleHash)
	assert.Equal(t, int64(9), resp.BundleSize)
}

func Test_ActivateRelease(t *testing.T) {
	cases := []struct {
		name           string
		body           any
		setup          func(m apiMocks)
		expectedStatus int
	}{
		{
			name: "explicit rollout",
			body: ActivateReleaseRequest{RolloutPercentage: intPtr(25)},
			setup: func(m apiMocks) {
				m.releases.EXPECT().Activate(mock.Anything, "rel-1", 25).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "rollout defaults to full",
			body: ActivateReleaseRequest{},
			setup: func(m apiMocks) {
				m.releases.EXPECT().Activate(mock.Anything, "rel-1", 100).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "no bundle attached conflicts",
			body: ActivateReleaseRequest{},
			setup: func(m apiMocks) {
				m.releases.EXPECT().Activate(mock.Anything, "rel-1", 100).Return(db.ErrInvalidState)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "rollout out of range rejected",
			body: ActivateReleaseRequest{RolloutPercentage: intPtr(150)},
			setup: func(m apiMocks) {
				m.releases.EXPECT().Activate(mock.Anything, "rel-1", 150).Return(release.ErrInvalidRollout)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			a, mocks := newTestAPI(t)
			tt.setup(mocks)
			rec := doJSON(t, a, http.MethodPost, "/v1/releases/rel-1/activate", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func Test_PauseRelease(t *testing.T) {
	a, mocks := newTestAPI(t)
	mocks.releases.EXPECT().Pause(mock.Anything, "rel-1").Return(nil)

	rec := doJSON(t, a, http.MethodPost, "/v1/releases/rel-1/pause", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func Test_RollbackRelease(t *testing.T) {
	cases := []struct {
		name           string
		body           any
		setup          func(m apiMocks)
		expectedStatus int
	}{
		{
			name: "rollback to target",
			body: RollbackRequest{TargetReleaseID: "rel-old", Reason: "broken navigation"},
			setup: func(m apiMocks) {
				m.releases.EXPECT().Rollback(mock.Anything, "app-1", "rel-old", "broken navigation").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "target required",
			body: RollbackRequest{},
			setup: func(m apiMocks) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown target",
			body: RollbackRequest{TargetReleaseID: "rel-404"},
			setup: func(m apiMocks) {
				m.releases.EXPECT().Rollback(mock.Anything, "app-1", "rel-404", "").Return(db.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			a, mocks := newTestAPI(t)
			tt.setup(mocks)
			rec := doJSON(t, a, http.MethodPost, "/v1/apps/app-1/rollback", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func Test_ListReleases(t *testing.T) {
	a, mocks := newTestAPI(t)
	mocks.releases.EXPECT().List(mock.Anything, "app-1").Return([]db.Release{
		{ID: "rel-2", Version: "1.2.0", Status: db.StatusActive},
		{ID: "rel-1", Version: "1.1.0", Status: db.StatusRolledBack},
	}, nil)

	rec := doJSON(t, a, http.MethodGet, "/v1/apps/app-1/releases", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ListReleasesResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if assert.Len(t, resp.Releases, 2) {
		assert.Equal(t, "1.2.0", resp.Releases[0].Version)
	}
}
