package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/creatorlens/creatorlens/internal/middleware"
	"github.com/creatorlens/creatorlens/internal/service"
)

type SearchHandler struct {
	svc *service.PipelineService
}

func NewSearchHandler(svc *service.PipelineService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

type searchChannelsRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

const defaultSearchResults = 10

// Channels handles POST /api/search-channels
func (h *SearchHandler) Channels(c fiber.Ctx) error {
	var req searchChannelsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	query, errMsg := middleware.ValidateQuery(req.Query)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	maxResults := middleware.ClampInt(req.MaxResults, defaultSearchResults,
		middleware.MinSearchResults, middleware.MaxSearchResults)

	channels, err := h.svc.SearchChannels(c.Context(), query, maxResults)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"channels": channels,
	})
}
