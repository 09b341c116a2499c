package handlers

import (
	"net/http"

	"lingo/internal/logger"
	"lingo/middleware"
)

// HealthCheck reports process liveness.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// ReadinessCheck reports readiness to serve traffic.
func ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	logger.HTTPEvent(r.Method, r.URL.Path, http.StatusOK, 0).
		Str("request_id", requestID).
		Msg("readiness check")
	w.WriteHeader(http.StatusOK)
}
