package service

import (
	"context"
	"errors"
	"log"

	"github.com/creatorlens/creatorlens/internal/model"
)

const (
	// DefaultMaxVideos bounds a channel analysis when the caller gives no cap.
	DefaultMaxVideos = 20

	videoFlowCommentCap  = 50
	reportCommentCap     = 10
	transcriptPreviewLen = 500
)

// PipelineService sequences the analysis stages. Resolution and primary
// acquisition failures abort a request; generative failures degrade to a
// partial report with embedded error markers.
type PipelineService struct {
	resolver    *ResolverService
	acquisition *AcquisitionService
	trends      *TrendService
	strategy    *StrategyService
	search      ChannelSearcher
}

func NewPipelineService(resolver *ResolverService, acquisition *AcquisitionService,
	trends *TrendService, strategy *StrategyService, search ChannelSearcher) *PipelineService {
	return &PipelineService{
		resolver:    resolver,
		acquisition: acquisition,
		trends:      trends,
		strategy:    strategy,
		search:      search,
	}
}

// AnalyzeChannel runs the full resolve → acquire → analyze → strategize flow.
func (s *PipelineService) AnalyzeChannel(ctx context.Context, ref string, maxVideos int) (*model.ChannelReport, error) {
	if maxVideos <= 0 {
		maxVideos = DefaultMaxVideos
	}

	id, err := s.resolver.ResolveChannel(ctx, ref)
	if err != nil {
		return nil, err
	}

	channel, err := s.acquisition.GetChannelInfo(ctx, id)
	if err != nil {
		return nil, err
	}

	videos, err := s.acquisition.GetChannelVideos(ctx, id, maxVideos)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, &model.AcquisitionError{Kind: model.AcquisitionNoVideos, Subject: "channel " + id.String()}
	}

	analysis, err := s.trends.AnalyzePerformance(ctx, videos)
	if err != nil && !degradable(err) {
		return nil, err
	}
	if err != nil {
		log.Printf("pipeline: trend synthesis degraded for %s: %v", id, err)
	}

	strategy, err := s.strategy.GenerateStrategy(ctx, analysis, channel)
	if err != nil {
		log.Printf("pipeline: strategy generation degraded for %s: %v", id, err)
	}

	return &model.ChannelReport{
		Channel:        channel,
		Analysis:       analysis,
		Strategy:       strategy,
		VideosAnalyzed: len(videos),
	}, nil
}

// AnalyzeVideo runs the reduced single-video flow: video info is fatal on
// failure, comments, transcript, and sentiment are best-effort.
func (s *PipelineService) AnalyzeVideo(ctx context.Context, ref string) (*model.VideoReport, error) {
	id, err := s.resolver.ResolveVideo(ref)
	if err != nil {
		return nil, err
	}

	video, err := s.acquisition.GetVideoInfo(ctx, id)
	if err != nil {
		return nil, err
	}

	comments := s.acquisition.GetVideoComments(ctx, id, videoFlowCommentCap)
	transcriptText := s.acquisition.GetVideoTranscript(ctx, id)

	sentiment, err := s.trends.AnalyzeCommentSentiment(ctx, comments, video.Title)
	if err != nil {
		log.Printf("pipeline: sentiment analysis degraded for %s: %v", id, err)
	}
	if sentiment == nil {
		// A video without comments still reports why sentiment is absent.
		sentiment = &model.SentimentResult{SentimentError: "No comments to analyze"}
	}

	report := &model.VideoReport{
		Video: model.VideoStats{
			ID:       video.ID,
			Title:    video.Title,
			Views:    video.ViewCount,
			Likes:    video.LikeCount,
			Comments: video.CommentCount,
		},
		Comments:      comments[:min(reportCommentCap, len(comments))],
		Sentiment:     sentiment,
		HasTranscript: transcriptText != "",
	}
	if report.HasTranscript {
		// Truncate on rune boundaries so the preview stays valid UTF-8.
		runes := []rune(transcriptText)
		report.TranscriptPreview = string(runes[:min(transcriptPreviewLen, len(runes))])
	}

	return report, nil
}

// SearchChannels searches for channels matching a free-text query.
func (s *PipelineService) SearchChannels(ctx context.Context, query string, maxResults int) ([]model.ChannelSummary, error) {
	results, err := s.search.SearchChannels(ctx, query, maxResults)
	if err != nil {
		return nil, &model.AcquisitionError{Kind: model.AcquisitionUpstream, Subject: "channel search", Cause: err}
	}

	channels := make([]model.ChannelSummary, 0, len(results))
	for _, r := range results {
		channels = append(channels, model.ChannelSummary{
			ID:          r.ChannelID,
			Title:       r.Title,
			Description: r.Description,
			Thumbnail:   r.Thumbnail,
		})
	}

	return channels, nil
}

// GenerateIdeas produces niche video ideas without touching the data API.
func (s *PipelineService) GenerateIdeas(ctx context.Context, niche string, count int) (string, error) {
	return s.strategy.GenerateIdeas(ctx, niche, count)
}

// degradable reports whether an analysis error still produced a usable
// partial result (generation failures do, empty input does not).
func degradable(err error) bool {
	var analysisErr *model.AnalysisError
	return errors.As(err, &analysisErr) && analysisErr.Kind == model.AnalysisGenerationFailed
}
