package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/creatorlens/creatorlens/internal/middleware"
	"github.com/creatorlens/creatorlens/internal/service"
)

type IdeasHandler struct {
	svc *service.PipelineService
}

func NewIdeasHandler(svc *service.PipelineService) *IdeasHandler {
	return &IdeasHandler{svc: svc}
}

type generateIdeasRequest struct {
	Niche string `json:"niche"`
	Count int    `json:"count"`
}

const defaultIdeaCount = 5

// Generate handles POST /api/generate-ideas
func (h *IdeasHandler) Generate(c fiber.Ctx) error {
	var req generateIdeasRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	niche, errMsg := middleware.ValidateNiche(req.Niche)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	count := middleware.ClampInt(req.Count, defaultIdeaCount,
		middleware.MinIdeaCount, middleware.MaxIdeaCount)

	ideas, err := h.svc.GenerateIdeas(c.Context(), niche, count)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"ideas":   ideas,
		"niche":   niche,
	})
}
