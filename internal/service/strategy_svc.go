package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/creatorlens/creatorlens/internal/model"
)

const (
	// Strategy prompts run at higher randomness for creative variety.
	strategyTemperature = 0.7
	strategyMaxTokens   = 3000

	ideasTemperature = 0.8
	ideasMaxTokens   = 2000

	// quickWinTagDepth tags per video are counted; quickWinTagCount most
	// frequent ones make the recommendation.
	quickWinTagDepth = 3
	quickWinTagCount = 3
)

const strategistSystemPrompt = "You are an expert YouTube content strategist. " +
	"Create detailed, actionable content strategies based on data analysis. " +
	"Always return well-structured, implementable recommendations."

const ideasSystemPrompt = "You are a YouTube content strategy expert specializing in viral content."

// StrategyService turns a trend analysis into a content strategy plus
// deterministic quick wins, and generates standalone niche ideas.
type StrategyService struct {
	gen Generator
}

func NewStrategyService(gen Generator) *StrategyService {
	return &StrategyService{gen: gen}
}

// GenerateStrategy produces the strategy text and quick wins. Quick wins are
// computed deterministically and survive a generative failure: in that case
// the returned strategy carries them alongside a GenerationFailed error.
func (s *StrategyService) GenerateStrategy(ctx context.Context, trend *model.TrendAnalysis, channel *model.ChannelInfo) (*model.ContentStrategy, error) {
	result := &model.ContentStrategy{
		QuickWins:   quickWins(trend),
		GeneratedAt: time.Now().UTC(),
	}

	prompt := buildStrategyPrompt(trend, channel)
	strategy, err := s.gen.Complete(ctx, strategistSystemPrompt, prompt, strategyTemperature, strategyMaxTokens)
	if err != nil {
		result.StrategyError = fmt.Sprintf("strategy generation failed: %v", err)
		return result, &model.AnalysisError{Kind: model.AnalysisGenerationFailed, Cause: err}
	}
	result.Strategy = strategy

	return result, nil
}

// GenerateIdeas produces count video ideas for a niche.
func (s *StrategyService) GenerateIdeas(ctx context.Context, niche string, count int) (string, error) {
	prompt := fmt.Sprintf(`Generate %d viral YouTube video ideas for the niche: %s

For each idea provide:
1. Video Title (clickable, SEO-optimized)
2. Description (2 sentences)
3. Target Keywords
4. Hook (first 10 seconds)
5. Why it will go viral

Make them trending, data-driven, and actionable.`, count, niche)

	ideas, err := s.gen.Complete(ctx, ideasSystemPrompt, prompt, ideasTemperature, ideasMaxTokens)
	if err != nil {
		return "", &model.AnalysisError{Kind: model.AnalysisGenerationFailed, Cause: err}
	}
	return ideas, nil
}

// quickWins derives non-generative action items from the trend analysis:
// the most frequent tags among the top performers, a view benchmark, and two
// fixed recommendations.
func quickWins(trend *model.TrendAnalysis) []string {
	var wins []string

	if tags := topTags(trend.TopPerformers); len(tags) > 0 {
		wins = append(wins, "Focus on tags: "+strings.Join(tags, ", "))
	}

	if trend.AverageViews > 0 {
		wins = append(wins, fmt.Sprintf("Target view benchmark: %.0f views", trend.AverageViews))
	}

	wins = append(wins,
		"Analyze top 3 video titles for pattern replication",
		"Engage with comments within first 24 hours of posting",
	)

	return wins
}

// topTags counts the first quickWinTagDepth tags of each top-5 performer and
// returns the quickWinTagCount most frequent, ties broken by first-seen order.
func topTags(performers []model.VideoRecord) []string {
	counts := make(map[string]int)
	var order []string

	for _, v := range performers[:min(exposedCount, len(performers))] {
		for _, tag := range v.Tags[:min(quickWinTagDepth, len(v.Tags))] {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	return order[:min(quickWinTagCount, len(order))]
}

func buildStrategyPrompt(trend *model.TrendAnalysis, channel *model.ChannelInfo) string {
	subscribers := "Hidden"
	if channel.Subscribers != nil {
		subscribers = fmt.Sprintf("%d", *channel.Subscribers)
	}

	synthesis := trend.Synthesis
	if synthesis == "" {
		synthesis = "No analysis available"
	}

	type performer struct {
		Title string `json:"title"`
		Views int64  `json:"views"`
	}
	top3 := make([]performer, 0, 3)
	for _, v := range trend.TopPerformers[:min(3, len(trend.TopPerformers))] {
		top3 = append(top3, performer{Title: v.Title, Views: v.ViewCount})
	}
	topJSON, _ := json.MarshalIndent(top3, "", "  ")

	return fmt.Sprintf(`Based on the following YouTube channel analysis, create a comprehensive content strategy:

CHANNEL: %s
SUBSCRIBERS: %s

PERFORMANCE ANALYSIS:
%s

TOP PERFORMING VIDEOS:
%s

TASK: Generate a detailed content strategy with:

1. **5 SPECIFIC VIDEO IDEAS**
   For each idea provide:
   - Video title (attention-grabbing, SEO-optimized)
   - Video description (2-3 sentences)
   - Target audience
   - Key talking points (3-5 bullet points)
   - Why this will perform well (based on data)

2. **CONTENT CALENDAR**
   - Optimal posting schedule (days/times)
   - Content mix (topic distribution)
   - Frequency recommendation

3. **OPTIMIZATION STRATEGIES**
   - Title/thumbnail best practices
   - SEO keywords to target
   - Engagement tactics

4. **GROWTH RECOMMENDATIONS**
   - Trending topics to cover
   - Collaboration opportunities
   - Community engagement strategies

Make it actionable and data-driven. Format as structured JSON.`, channel.Title, subscribers, synthesis, topJSON)
}
