package handlers

import (
	"context"
	"net/http"
	"time"

	"sparkshelf/projects"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Backend   string    `json:"backend"`
}

type HealthHandler struct {
	serviceName string
	version     string
	source      projects.Source
}

func NewHealthHandler(serviceName, version string, src projects.Source) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		source:      src,
	}
}

func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	backend := "up"
	if err := h.source.Ping(pingCtx); err != nil {
		backend = "down"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Backend:   backend,
	})
}
