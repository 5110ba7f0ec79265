package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
//   - /healthz: liveness, always 200 while the process serves HTTP.
//   - /readyz: readiness, 200 once the dataset is loaded.
type HealthHandler struct {
	ready func(ctx context.Context) error
}

// NewHealthHandler constructs a HealthHandler. ready reports whether the
// service can answer queries; nil means always ready.
func NewHealthHandler(ready func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ready: ready}
}

// Register mounts the health and readiness endpoints into the router.
func (h *HealthHandler) Register(r *gin.Engine) {
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// @Summary      Readiness probe
	// @Description  Returns ready once the rental dataset is loaded
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.ready != nil {
			if err := h.ready(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}
