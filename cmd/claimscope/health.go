// cmd/claimscope/health.go
package main

import (
	"net/http"
	"time"
)

// handleHealth provides a simple liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": AppVersion,
		"uptime":  time.Since(startTime).String(),
	})
}

// handleStatus reports metrics plus a summary of recent failures
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	metrics := collectMetrics(s.checker.cache)

	recent := RecentErrors()
	var lastError *ErrorEvent
	if len(recent) > 0 {
		lastError = &recent[len(recent)-1]
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":     statusString(metrics),
		"version":    AppVersion,
		"metrics":    metrics,
		"errorCount": len(recent),
		"lastError":  lastError,
	})
}

// statusString summarizes health: degraded once analysis failures appear
func statusString(m *Metrics) string {
	if m.ChecksTotal > 0 && m.DegradedAnalyses == m.ChecksTotal {
		return "failing"
	}
	if m.DegradedAnalyses > 0 {
		return "degraded"
	}
	return "healthy"
}
