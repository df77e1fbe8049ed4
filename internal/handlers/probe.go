package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// UpstreamStatus reports whether the contract call endpoint is answering.
type UpstreamStatus interface {
	Status() (healthy bool, lastError string)
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	upstream UpstreamStatus
}

// NewProbeHandler creates a new probe handler. A nil upstream makes the
// readiness probe always succeed.
func NewProbeHandler(upstream UpstreamStatus) *ProbeHandler {
	return &ProbeHandler{upstream: upstream}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the last upstream probe succeeded.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.upstream != nil {
		if healthy, lastError := h.upstream.Status(); !healthy {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "call endpoint unavailable: " + lastError,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
