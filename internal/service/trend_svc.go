package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
)

// Generator is the chat-completion backend consumed by the analysis stages.
type Generator interface {
	Complete(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error)
}

const (
	// Analytical prompts run at low randomness for reproducible structure.
	analysisTemperature = 0.3

	analysisMaxTokens  = 2000
	sentimentMaxTokens = 2500

	// rankedCount videos are ranked; exposedCount appear in the summary.
	rankedCount  = 10
	exposedCount = 5

	// sentimentCommentCap comments are considered; promptCommentCap of their
	// texts are embedded verbatim in the prompt.
	sentimentCommentCap = 50
	promptCommentCap    = 30
)

const analystSystemPrompt = "You are an expert YouTube content analyst. " +
	"Analyze video performance data and identify patterns, trends, and insights. " +
	"Provide structured, actionable analysis."

const sentimentSystemPrompt = "You are an expert at analyzing YouTube comments " +
	"to understand audience sentiment and needs."

// TrendService computes engagement metrics over acquired videos and asks the
// generative backend for a qualitative synthesis.
type TrendService struct {
	gen Generator
}

func NewTrendService(gen Generator) *TrendService {
	return &TrendService{gen: gen}
}

// AnalyzePerformance ranks videos by view count and synthesizes trends.
// When the generative call fails, the returned analysis still carries the
// numeric aggregates alongside a non-nil GenerationFailed error.
func (s *TrendService) AnalyzePerformance(ctx context.Context, videos []model.VideoRecord) (*model.TrendAnalysis, error) {
	if len(videos) == 0 {
		return nil, &model.AnalysisError{Kind: model.AnalysisEmptyInput}
	}

	// Work on a copy: stages never mutate their caller's data.
	ranked := make([]model.VideoRecord, len(videos))
	copy(ranked, videos)

	for i := range ranked {
		ranked[i].EngagementRate = engagementRate(ranked[i])
	}

	// Stable sort so tied view counts keep their original fetch order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViewCount > ranked[j].ViewCount
	})

	top := ranked[:min(rankedCount, len(ranked))]

	var totalViews, totalEngagement float64
	for _, v := range ranked {
		totalViews += float64(v.ViewCount)
		totalEngagement += v.EngagementRate
	}

	// Only the first exposedCount ranked videos leave the stage.
	result := &model.TrendAnalysis{
		TopPerformers:       top[:min(exposedCount, len(top))],
		AverageViews:        totalViews / float64(len(ranked)),
		AverageEngagement:   totalEngagement / float64(len(ranked)),
		TotalVideosAnalyzed: len(ranked),
	}

	prompt := buildAnalysisPrompt(top, len(ranked), result.AverageViews)
	synthesis, err := s.gen.Complete(ctx, analystSystemPrompt, prompt, analysisTemperature, analysisMaxTokens)
	if err != nil {
		result.SynthesisError = fmt.Sprintf("analysis failed: %v", err)
		return result, &model.AnalysisError{Kind: model.AnalysisGenerationFailed, Cause: err}
	}
	result.Synthesis = synthesis

	return result, nil
}

// AnalyzeCommentSentiment asks the backend for sentiment, themes, and pain
// points over the most relevant comments of a video.
func (s *TrendService) AnalyzeCommentSentiment(ctx context.Context, comments []model.CommentRecord, videoTitle string) (*model.SentimentResult, error) {
	if len(comments) == 0 {
		return nil, &model.AnalysisError{Kind: model.AnalysisEmptyInput}
	}

	considered := comments[:min(sentimentCommentCap, len(comments))]
	result := &model.SentimentResult{TotalCommentsAnalyzed: len(comments)}

	prompt := buildSentimentPrompt(considered, videoTitle)
	sentiment, err := s.gen.Complete(ctx, sentimentSystemPrompt, prompt, analysisTemperature, sentimentMaxTokens)
	if err != nil {
		result.SentimentError = fmt.Sprintf("sentiment analysis failed: %v", err)
		return result, &model.AnalysisError{Kind: model.AnalysisGenerationFailed, Cause: err}
	}
	result.Sentiment = sentiment

	return result, nil
}

// engagementRate is (likes + comments) / views, zero for zero views.
func engagementRate(v model.VideoRecord) float64 {
	if v.ViewCount == 0 {
		return 0
	}
	return float64(v.LikeCount+v.CommentCount) / float64(v.ViewCount)
}

func buildAnalysisPrompt(top []model.VideoRecord, totalVideos int, averageViews float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Analyze the following YouTube channel performance data:

CHANNEL OVERVIEW:
- Total videos analyzed: %d
- Average views: %.0f

TOP %d PERFORMING VIDEOS:
`, totalVideos, averageViews, min(exposedCount, len(top)))

	for i, v := range top[:min(exposedCount, len(top))] {
		fmt.Fprintf(&b, `
%d. Title: %s
   - Views: %d
   - Likes: %d
   - Comments: %d
   - Engagement Rate: %.4f
   - Published: %s
   - Tags: %s
`, i+1, v.Title, v.ViewCount, v.LikeCount, v.CommentCount, v.EngagementRate,
			v.PublishedAt.Format("2006-01-02"),
			strings.Join(v.Tags[:min(5, len(v.Tags))], ", "))
	}

	b.WriteString(`
ANALYSIS REQUIRED:
1. What patterns do you see in the top-performing videos (titles, topics, timing)?
2. What title/thumbnail strategies appear most effective?
3. What topics or themes generate the most engagement?
4. What posting patterns correlate with success?
5. What are 3 specific hypotheses about why these videos performed well?

Provide structured, data-driven insights.`)

	return b.String()
}

func buildSentimentPrompt(comments []model.CommentRecord, videoTitle string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the following comments from the YouTube video %q:\n\nCOMMENTS:\n", videoTitle)

	for _, c := range comments[:min(promptCommentCap, len(comments))] {
		fmt.Fprintf(&b, "- %s\n", c.Text)
	}

	b.WriteString(`
ANALYSIS REQUIRED:
1. Overall sentiment (positive/negative/mixed)
2. Main themes and topics discussed
3. Common questions or concerns
4. Audience pain points or desires
5. Content improvement suggestions based on feedback

Provide a structured analysis.`)

	return b.String()
}
