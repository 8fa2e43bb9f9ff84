package main

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/creatorlens/creatorlens/internal/config"
	"github.com/creatorlens/creatorlens/internal/groq"
	"github.com/creatorlens/creatorlens/internal/handler"
	"github.com/creatorlens/creatorlens/internal/middleware"
	"github.com/creatorlens/creatorlens/internal/router"
	"github.com/creatorlens/creatorlens/internal/service"
	"github.com/creatorlens/creatorlens/internal/transcript"
	"github.com/creatorlens/creatorlens/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "creatorlens-api")
	handler.InitMetrics()

	if cfg.YouTubeAPIKey == "" {
		log.Println("warning: YOUTUBE_API_KEY not set, data acquisition will fail")
	}
	if cfg.GroqAPIKey == "" {
		log.Println("warning: GROQ_API_KEY not set, text generation will fail")
	}

	// Upstream clients
	yt := youtube.NewClient(cfg.YouTubeAPIKey)
	transcripts := transcript.NewClient()
	gen := groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel)

	// Pipeline stages
	resolver := service.NewResolverService(yt)
	acquisition := service.NewAcquisitionService(yt, transcripts)
	trends := service.NewTrendService(gen)
	strategy := service.NewStrategyService(gen)
	pipeline := service.NewPipelineService(resolver, acquisition, trends, strategy, yt)

	app := fiber.New(fiber.Config{
		AppName:      "CreatorLens API",
		ServerHeader: "CreatorLens",
	})

	h := &router.Handlers{
		Analyze: handler.NewAnalyzeHandler(pipeline),
		Search:  handler.NewSearchHandler(pipeline),
		Ideas:   handler.NewIdeasHandler(pipeline),
		Health:  handler.NewHealthHandler(cfg.YouTubeAPIKey != "", cfg.GroqAPIKey != ""),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	log.Printf("CreatorLens backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
