package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Steps:
// 1. Create an app and two releases, activate the first, then the second
// 2. Simulate enough installs on the second release to clear the sample floor
// 3. Report crashes until the crash rate crosses the threshold
// 4. Poll the release list and verify the second release was rolled back

const (
	baseURL      = "http://localhost:8080"
	installCount = 120
	crashCount   = 10
)

type appResponse struct {
	ID string `json:"id"`
}

type releaseResponse struct {
	ID             string  `json:"id"`
	Version        string  `json:"version"`
	Status         string  `json:"status"`
	RollbackReason *string `json:"rollback_reason"`
}

type listReleasesResponse struct {
	Releases []releaseResponse `json:"releases"`
}

func post(path string, body any, out any) {
	payload, _ := json.Marshal(body)
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		panic(fmt.Errorf("POST %s: %s: %s", path, resp.Status, raw))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			panic(err)
		}
	}
}

func createRelease(appID, version string) releaseResponse {
	var release releaseResponse
	post("/v1/apps/"+appID+"/releases", map[string]any{"version": version}, &release)

	req, _ := http.NewRequest(http.MethodPut,
		baseURL+"/v1/releases/"+release.ID+"/bundle",
		bytes.NewBufferString("bundle for "+version))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	resp.Body.Close()

	post("/v1/releases/"+release.ID+"/activate", map[string]any{}, nil)
	return release
}

func main() {
	// Unique name per run so the script can be re-run against the same DB.
	var app appResponse
	post("/v1/apps", map[string]any{
		"name":           "e2e-app-" + uuid.NewString(),
		"signing_secret": "e2e-secret",
	}, &app)

	good := createRelease(app.ID, "1.0.0")
	fmt.Println("good release active:", good.ID)
	bad := createRelease(app.ID, "1.1.0")
	fmt.Println("bad release active:", bad.ID)

	// Enough installs to clear the minimum sample.
	for i := 0; i < installCount; i++ {
		post("/v1/telemetry", map[string]any{
			"app_id":     app.ID,
			"device_id":  fmt.Sprintf("device-%d", i),
			"event_type": "update_applied",
			"release_id": bad.ID,
		}, nil)
	}
	// Install counting runs in the background; give it a moment.
	time.Sleep(2 * time.Second)

	for i := 0; i < crashCount; i++ {
		post("/v1/telemetry/crash", map[string]any{
			"app_id":     app.ID,
			"device_id":  fmt.Sprintf("device-%d", i),
			"event_type": "crash_detected",
			"release_id": bad.ID,
		}, nil)
	}

	resp, err := http.Get(baseURL + "/v1/apps/" + app.ID + "/releases")
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	var list listReleasesResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		panic(err)
	}

	for _, release := range list.Releases {
		reason := ""
		if release.RollbackReason != nil {
			reason = *release.RollbackReason
		}
		fmt.Printf("%s %s -> %s %s\n", release.ID, release.Version, release.Status, reason)
		if release.ID == bad.ID && release.Status != "rolled_back" {
			panic(fmt.Errorf("expected %s rolled back, got %s", bad.ID, release.Status))
		}
	}
	fmt.Println("auto-rollback verified")
}
