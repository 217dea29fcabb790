package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	"github.com/mohamadfayez/apigee-marketplace/internal/infrastructure/apihub"
)

// HealthHandler serves the health probes
type HealthHandler struct {
	attrs *apihub.AttributeSet
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(attrs *apihub.AttributeSet) *HealthHandler {
	return &HealthHandler{
		attrs: attrs,
	}
}

// Ping basic health check
// @Summary Ping health check
// @Description Check whether the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Readiness readiness check
// @Summary Readiness check
// @Description Report the catalog attribute cache state; empty lists degrade attribute assignment but do not fail the probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":     "ready",
		"attributes": h.attrs.Counts(),
	})
}

// Liveness liveness check
// @Summary Liveness check
// @Description Check whether the service is alive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status": "alive",
	})
}
