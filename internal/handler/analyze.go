package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/creatorlens/creatorlens/internal/middleware"
	"github.com/creatorlens/creatorlens/internal/service"
)

type AnalyzeHandler struct {
	svc *service.PipelineService
}

func NewAnalyzeHandler(svc *service.PipelineService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

type analyzeChannelRequest struct {
	ChannelID string `json:"channel_id"`
	MaxVideos int    `json:"max_videos"`
}

// Channel handles POST /api/analyze-channel
func (h *AnalyzeHandler) Channel(c fiber.Ctx) error {
	var req analyzeChannelRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	ref, errMsg := middleware.ValidateChannelRef(req.ChannelID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	maxVideos := middleware.ClampInt(req.MaxVideos, service.DefaultMaxVideos,
		middleware.MinMaxVideos, middleware.MaxMaxVideos)

	start := time.Now()
	report, err := h.svc.AnalyzeChannel(c.Context(), ref, maxVideos)
	observePipeline("channel", start, err)
	if err != nil {
		return respondError(c, err)
	}

	if report.Analysis.SynthesisError != "" {
		Metrics.GenerationFailures.Inc()
	}
	if report.Strategy.StrategyError != "" {
		Metrics.GenerationFailures.Inc()
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"channel":         report.Channel,
		"analysis":        report.Analysis,
		"strategy":        report.Strategy,
		"videos_analyzed": report.VideosAnalyzed,
	})
}

type analyzeVideoRequest struct {
	VideoID  string `json:"video_id"`
	VideoURL string `json:"videoUrl"`
	URL      string `json:"url"`
}

// ref returns the first populated reference field.
func (r analyzeVideoRequest) ref() string {
	if r.VideoID != "" {
		return r.VideoID
	}
	if r.VideoURL != "" {
		return r.VideoURL
	}
	return r.URL
}

// Video handles POST /api/analyze-video
func (h *AnalyzeHandler) Video(c fiber.Ctx) error {
	var req analyzeVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	ref, errMsg := middleware.ValidateVideoRef(req.ref())
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	start := time.Now()
	report, err := h.svc.AnalyzeVideo(c.Context(), ref)
	observePipeline("video", start, err)
	if err != nil {
		return respondError(c, err)
	}

	if report.Sentiment != nil && report.Sentiment.SentimentError != "" {
		Metrics.GenerationFailures.Inc()
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"video":              report.Video,
		"comments":           report.Comments,
		"sentiment":          report.Sentiment,
		"has_transcript":     report.HasTranscript,
		"transcript_preview": report.TranscriptPreview,
	})
}
