package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// Walks a release through its whole lifecycle against a locally running
// server: create app, create release, upload a bundle, activate, then
// check for the update as a device would.

type createAppResponse struct {
	ID string `json:"id"`
}

type releaseResponse struct {
	ID      string `json:"id"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type updateCheckResponse struct {
	UpdateAvailable bool `json:"update_available"`
	Release         *struct {
		Version   string `json:"version"`
		BundleURL string `json:"bundle_url"`
	} `json:"release"`
}

func postJSON(url string, body any, out any) {
	payload, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	fmt.Println("POST", url, "status:", resp.Status)
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		fmt.Println("response body:", string(raw))
		return
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			panic(err)
		}
	}
}

func main() {
	baseURL := "http://localhost:8080"
	deviceID := uuid.NewString()

	// 1. POST /v1/apps
	var app createAppResponse
	postJSON(baseURL+"/v1/apps", map[string]any{
		"name":           "demo-app-" + uuid.NewString(),
		"signing_secret": "demo-secret",
	}, &app)
	fmt.Println("app id:", app.ID)

	// 2. POST /v1/apps/{app_id}/releases
	var release releaseResponse
	postJSON(baseURL+"/v1/apps/"+app.ID+"/releases", map[string]any{
		"version":       "1.0.0",
		"release_notes": "First demo release",
	}, &release)
	fmt.Println("release:", release.ID, release.Status)

	// 3. PUT /v1/releases/{release_id}/bundle
	req, _ := http.NewRequest(http.MethodPut,
		baseURL+"/v1/releases/"+release.ID+"/bundle",
		bytes.NewBufferString("demo bundle content"))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	resp.Body.Close()
	fmt.Println("PUT bundle status:", resp.Status)

	// 4. POST /v1/releases/{release_id}/activate
	postJSON(baseURL+"/v1/releases/"+release.ID+"/activate", map[string]any{
		"rollout_percentage": 100,
	}, nil)

	// 5. POST /v1/update-check as a device on an older bundle
	var check updateCheckResponse
	postJSON(baseURL+"/v1/update-check", map[string]any{
		"app_id":                 app.ID,
		"device_id":              deviceID,
		"platform":               "ios",
		"app_version":            "2.0.0",
		"current_bundle_version": "0.9.0",
	}, &check)
	if check.UpdateAvailable && check.Release != nil {
		fmt.Println("update offered:", check.Release.Version, check.Release.BundleURL)
	} else {
		fmt.Println("no update offered")
	}

	// 6. POST /v1/telemetry reporting the install
	postJSON(baseURL+"/v1/telemetry", map[string]any{
		"app_id":     app.ID,
		"device_id":  deviceID,
		"event_type": "update_applied",
		"release_id": release.ID,
	}, nil)
}
