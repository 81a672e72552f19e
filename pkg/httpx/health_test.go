package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/httpx"
)

func TestHealthHandler(t *testing.T) {
	h := httpx.HealthHandler(httpx.BuildInfo{
		Service:     "item-demo-api",
		Version:     "1.0.0",
		Environment: "testing",
	})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status: got %q, want %q", resp["status"], "ok")
	}
	if resp["service"] != "item-demo-api" {
		t.Errorf("service: got %q", resp["service"])
	}
	if resp["version"] != "1.0.0" {
		t.Errorf("version: got %q", resp["version"])
	}
	if _, ok := resp["uptime_seconds"]; !ok {
		t.Error("expected uptime_seconds in response")
	}
}
