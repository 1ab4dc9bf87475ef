// Package handlers provides HTTP handlers for the credit plan engine.
package handlers

import (
	"net/http"
	"os"
	"time"

	"credit-plan-engine/internal/services/cache"
	"credit-plan-engine/internal/services/database"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	db    *database.DB
	cache *cache.PreviewCache
}

// NewHealthHandler creates a new health handler. Either dependency may be
// nil when the server runs without it.
func NewHealthHandler(db *database.DB, previewCache *cache.PreviewCache) *HealthHandler {
	return &HealthHandler{db: db, cache: previewCache}
}

// HealthResponse is the response structure for health checks.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Stage     string `json:"stage"`
	Database  string `json:"database,omitempty"`
	Cache     string `json:"cache,omitempty"`
}

// Handle processes health check requests.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "credit-plan-engine",
		Version:   getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
		Stage:     getEnvOrDefault("STAGE", "dev"),
	}

	if h.db != nil {
		if err := h.db.HealthCheck(r.Context()); err != nil {
			response.Database = "disconnected"
			response.Status = "degraded"
		} else {
			response.Database = "connected"
		}
	} else {
		response.Database = "not configured"
	}

	if h.cache != nil {
		if err := h.cache.Ping(r.Context()); err != nil {
			response.Cache = "disconnected"
		} else {
			response.Cache = "connected"
		}
	} else {
		response.Cache = "not configured"
	}

	statusCode := http.StatusOK
	if response.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, response)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
