package httpx

import (
	"net/http"
	"time"
)

// BuildInfo identifies the running service in the health response.
type BuildInfo struct {
	Service     string
	Version     string
	Environment string
}

type healthResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	Environment   string `json:"environment"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// HealthHandler returns a liveness endpoint. The service holds no external
// dependencies (no database, cache, or broker), so a reachable process is a
// healthy process; uptime is measured from handler registration.
func HealthHandler(info BuildInfo) http.HandlerFunc {
	start := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, healthResponse{
			Status:        "ok",
			Service:       info.Service,
			Version:       info.Version,
			Environment:   info.Environment,
			UptimeSeconds: int64(time.Since(start).Seconds()),
		})
	}
}
