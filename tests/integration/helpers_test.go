//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("TRIVIA_API_URL", "http://localhost:8080")
}

func postJSON(t *testing.T, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	resp, err := http.Post(baseURL()+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return resp, decodeBody(t, resp)
}

func getJSON(t *testing.T, path string) (*http.Response, map[string]any) {
	t.Helper()

	resp, err := http.Get(baseURL() + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return resp, decodeBody(t, resp)
}

func deleteJSON(t *testing.T, path string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, baseURL()+path, nil)
	if err != nil {
		t.Fatalf("build DELETE %s: %v", path, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s failed: %v", path, err)
	}
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return out
}

func createQuestion(t *testing.T) int {
	t.Helper()

	resp, body := postJSON(t, "/questions", map[string]any{
		"question":   "q",
		"answer":     "a",
		"category":   1,
		"difficulty": 1,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected create status: %d", resp.StatusCode)
	}
	created, ok := body["created"].(float64)
	if !ok || created <= 0 {
		t.Fatalf("invalid created id in response: %v", body["created"])
	}
	return int(created)
}

func questionPath(id int) string {
	return fmt.Sprintf("/questions/%d", id)
}
