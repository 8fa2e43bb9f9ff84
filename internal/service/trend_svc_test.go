package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/creatorlens/creatorlens/internal/model"
)

// fakeGenerator captures completion calls and serves a canned response.
type fakeGenerator struct {
	calls      int
	lastSystem string
	lastUser   string
	lastTemp   float32
	lastTokens int
	response   string
	err        error
}

func (f *fakeGenerator) Complete(_ context.Context, system, user string, temperature float32, maxTokens int) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	f.lastTemp = temperature
	f.lastTokens = maxTokens
	return f.response, f.err
}

func testVideo(id string, views, likes, comments int64) model.VideoRecord {
	return model.VideoRecord{
		ID:           model.VideoID(id),
		Title:        "Video " + id,
		PublishedAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ViewCount:    views,
		LikeCount:    likes,
		CommentCount: comments,
	}
}

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name  string
		video model.VideoRecord
		want  float64
	}{
		{"typical", testVideo("a", 100, 5, 3), 0.08},
		{"zero views", testVideo("b", 0, 10, 10), 0},
		{"no interactions", testVideo("c", 500, 0, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engagementRate(tt.video); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("engagementRate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzePerformance_RankingAndAverages(t *testing.T) {
	videos := []model.VideoRecord{
		testVideo("a", 10, 1, 0),
		testVideo("b", 50, 5, 0),
		testVideo("c", 50, 2, 0),
		testVideo("d", 5, 0, 0),
	}

	gen := &fakeGenerator{response: "synthesis text"}
	svc := NewTrendService(gen)

	analysis, err := svc.AnalyzePerformance(context.Background(), videos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Descending views with tied counts keeping fetch order: b before c.
	gotOrder := make([]string, 0, len(analysis.TopPerformers))
	for _, v := range analysis.TopPerformers {
		gotOrder = append(gotOrder, string(v.ID))
	}
	want := []string{"b", "c", "a", "d"}
	for i := range want {
		if gotOrder[i] != want[i] {
			t.Fatalf("order = %v, want %v", gotOrder, want)
		}
	}

	if analysis.AverageViews != 28.75 {
		t.Errorf("averageViews = %v, want 28.75", analysis.AverageViews)
	}
	if analysis.TotalVideosAnalyzed != 4 {
		t.Errorf("totalVideosAnalyzed = %d, want 4", analysis.TotalVideosAnalyzed)
	}
	if analysis.Synthesis != "synthesis text" {
		t.Errorf("synthesis = %q", analysis.Synthesis)
	}
	if gen.lastTemp != 0.3 || gen.lastTokens != 2000 {
		t.Errorf("generation params = %v/%d, want 0.3/2000", gen.lastTemp, gen.lastTokens)
	}

	// The input slice must not be mutated by the stage.
	if videos[0].ID != "a" || videos[0].EngagementRate != 0 {
		t.Errorf("input slice mutated: %+v", videos[0])
	}
}

func TestAnalyzePerformance_ExposesTopFive(t *testing.T) {
	videos := make([]model.VideoRecord, 0, 15)
	for i := 0; i < 15; i++ {
		videos = append(videos, testVideo(string(rune('a'+i)), int64(100-i), 0, 0))
	}

	svc := NewTrendService(&fakeGenerator{response: "ok"})

	analysis, err := svc.AnalyzePerformance(context.Background(), videos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(analysis.TopPerformers) != 5 {
		t.Errorf("topPerformers = %d, want the 5 exposed videos", len(analysis.TopPerformers))
	}
	if analysis.TopPerformers[0].ID != "a" || analysis.TopPerformers[4].ID != "e" {
		t.Errorf("unexpected exposed ranking: %v", analysis.TopPerformers)
	}
	if analysis.TotalVideosAnalyzed != 15 {
		t.Errorf("totalVideosAnalyzed = %d, want 15", analysis.TotalVideosAnalyzed)
	}

	var payload struct {
		TopPerformers []model.VideoRecord `json:"top_performers"`
	}
	raw, err := json.Marshal(analysis)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(payload.TopPerformers) != 5 {
		t.Errorf("serialized top_performers entries = %d, want 5", len(payload.TopPerformers))
	}
}

func TestAnalyzePerformance_EmptyInput(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewTrendService(gen)

	_, err := svc.AnalyzePerformance(context.Background(), nil)
	var anErr *model.AnalysisError
	if !errors.As(err, &anErr) || anErr.Kind != model.AnalysisEmptyInput {
		t.Fatalf("expected empty_input error, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator must not be called for empty input")
	}
}

func TestAnalyzePerformance_GenerationFailurePartial(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model overloaded")}
	svc := NewTrendService(gen)

	analysis, err := svc.AnalyzePerformance(context.Background(), []model.VideoRecord{
		testVideo("a", 100, 5, 3),
	})

	var anErr *model.AnalysisError
	if !errors.As(err, &anErr) || anErr.Kind != model.AnalysisGenerationFailed {
		t.Fatalf("expected generation_failed error, got %v", err)
	}
	if analysis == nil {
		t.Fatal("partial result expected alongside the error")
	}
	if analysis.AverageViews != 100 {
		t.Errorf("aggregates missing from partial result: %+v", analysis)
	}
	if analysis.SynthesisError == "" || analysis.Synthesis != "" {
		t.Errorf("expected error marker instead of synthesis, got %+v", analysis)
	}
}

func TestAnalyzePerformance_PromptShape(t *testing.T) {
	videos := make([]model.VideoRecord, 0, 8)
	for i := 0; i < 8; i++ {
		v := testVideo(string(rune('a'+i)), int64(100-i), 2, 1)
		v.Tags = []string{"one", "two", "three", "four", "five", "six"}
		videos = append(videos, v)
	}

	gen := &fakeGenerator{response: "ok"}
	svc := NewTrendService(gen)

	if _, err := svc.AnalyzePerformance(context.Background(), videos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.lastSystem != analystSystemPrompt {
		t.Errorf("system prompt = %q", gen.lastSystem)
	}
	if !strings.Contains(gen.lastUser, "TOP 5 PERFORMING VIDEOS") {
		t.Errorf("prompt should expose 5 videos:\n%s", gen.lastUser)
	}
	if !strings.Contains(gen.lastUser, "Published: 2024-03-01") {
		t.Errorf("prompt should truncate dates to day precision:\n%s", gen.lastUser)
	}
	if strings.Contains(gen.lastUser, "six") {
		t.Errorf("prompt should embed at most 5 tags:\n%s", gen.lastUser)
	}
}

func TestAnalyzeCommentSentiment(t *testing.T) {
	comments := make([]model.CommentRecord, 0, 60)
	for i := 0; i < 60; i++ {
		comments = append(comments, model.CommentRecord{Text: "comment"})
	}

	gen := &fakeGenerator{response: "mostly positive"}
	svc := NewTrendService(gen)

	result, err := svc.AnalyzeCommentSentiment(context.Background(), comments, "My Video")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sentiment != "mostly positive" {
		t.Errorf("sentiment = %q", result.Sentiment)
	}
	if result.TotalCommentsAnalyzed != 60 {
		t.Errorf("totalCommentsAnalyzed = %d, want 60", result.TotalCommentsAnalyzed)
	}
	if gen.lastTokens != 2500 {
		t.Errorf("max tokens = %d, want 2500", gen.lastTokens)
	}
	if got := strings.Count(gen.lastUser, "- comment"); got != 30 {
		t.Errorf("prompt embeds %d comments, want 30", got)
	}
	if !strings.Contains(gen.lastUser, `"My Video"`) {
		t.Errorf("prompt should name the video:\n%s", gen.lastUser)
	}
}

func TestAnalyzeCommentSentiment_Empty(t *testing.T) {
	svc := NewTrendService(&fakeGenerator{})

	_, err := svc.AnalyzeCommentSentiment(context.Background(), nil, "My Video")
	var anErr *model.AnalysisError
	if !errors.As(err, &anErr) || anErr.Kind != model.AnalysisEmptyInput {
		t.Fatalf("expected empty_input error, got %v", err)
	}
}
