package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	"bundlenudge/internal/db"
	"bundlenudge/internal/update"

	"github.com/go-chi/chi/v5"
)

type updateEngine interface {
	Check(ctx context.Context, req update.Request) (update.Decision, error)
}

type releaseManager interface {
	Create(ctx context.Context, appID, version string, minAppVersion, maxAppVersion, releaseNotes *string) (db.Release, error)
	AttachBundle(ctx context.Context, releaseID string, content io.Reader) (db.Release, error)
	Activate(ctx context.Context, releaseID string, rolloutPercentage int) error
	Pause(ctx context.Context, releaseID string) error
	Rollback(ctx context.Context, appID, targetReleaseID, reason string) error
	List(ctx context.Context, appID string) ([]db.Release, error)
}

type ingestor interface {
	Record(ctx context.Context, event db.TelemetryEvent) error
	RecordBatch(ctx context.Context, events []db.TelemetryEvent) error
	RecordCrash(ctx context.Context, event db.TelemetryEvent) error
}

type appStore interface {
	CreateApp(ctx context.Context, name, signingSecret string, crashThreshold *int) (db.App, error)
}

type API struct {
	engine   updateEngine
	releases releaseManager
	ingestor ingestor
	apps     appStore
}

type Config struct {
	Engine   updateEngine
	Releases releaseManager
	Ingestor ingestor
	Apps     appStore
}

func New(cfg Config) *API {
	return &API{
		engine:   cfg.Engine,
		releases: cfg.Releases,
		ingestor: cfg.Ingestor,
		apps:     cfg.Apps,
	}
}

func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/update-check", a.CheckForUpdate)
		r.Post("/telemetry", a.RecordEvent)
		r.Post("/telemetry/batch", a.RecordEventBatch)
		r.Post("/telemetry/crash", a.RecordCrash)
		r.Post("/apps", a.CreateApp)
		r.Route("/apps/{app_id}", func(r chi.Router) {
			r.Post("/releases", a.CreateRelease)
			r.Get("/releases", a.ListReleases)
			r.Post("/rollback", a.RollbackRelease)
		})
		r.Route("/releases/{release_id}", func(r chi.Router) {
			r.Put("/bundle", a.UploadBundle)
			r.Post("/activate", a.ActivateRelease)
			r.Post("/pause", a.PauseRelease)
		})
	})
	return r
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
