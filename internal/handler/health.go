package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	youtubeConfigured bool
	groqConfigured    bool
	startAt           time.Time
}

func NewHealthHandler(youtubeConfigured, groqConfigured bool) *HealthHandler {
	return &HealthHandler{
		youtubeConfigured: youtubeConfigured,
		groqConfigured:    groqConfigured,
		startAt:           time.Now(),
	}
}

// Live handles GET /health/live — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready — reports whether the upstream credentials
// are configured. The service starts without them but every analysis request
// will fail, so readiness degrades.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	status := "healthy"
	if !h.youtubeConfigured || !h.groqConfigured {
		status = "degraded"
	}

	return c.JSON(fiber.Map{
		"status":         status,
		"youtube_api":    configuredLabel(h.youtubeConfigured),
		"groq_api":       configuredLabel(h.groqConfigured),
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}

func configuredLabel(ok bool) string {
	if ok {
		return "configured"
	}
	return "missing"
}
