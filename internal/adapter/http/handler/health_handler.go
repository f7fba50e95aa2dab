package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadinessChecker reports whether the classifier model is loaded.
type ReadinessChecker interface {
	Ready() bool
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	classifier ReadinessChecker
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(classifier ReadinessChecker) *HealthHandler {
	return &HealthHandler{classifier: classifier}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	components := make(map[string]string)
	healthy := true

	if h.classifier == nil {
		components["classifier"] = "not configured"
		healthy = false
	} else if !h.classifier.Ready() {
		components["classifier"] = "model not loaded"
		healthy = false
	} else {
		components["classifier"] = "ok"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.classifier == nil || !h.classifier.Ready() {
		respondError(c, http.StatusServiceUnavailable, "NOT_READY", "model not loaded")
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "ready"})
}
