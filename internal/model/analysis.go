package model

// TrendAnalysis is the output of the performance analysis stage.
// TopPerformers carries at most the five best-ranked videos; the numeric
// aggregates are always populated; Synthesis is empty and SynthesisError set
// when the generative call failed.
type TrendAnalysis struct {
	TopPerformers       []VideoRecord `json:"top_performers"`
	AverageViews        float64       `json:"average_views"`
	AverageEngagement   float64       `json:"average_engagement"`
	Synthesis           string        `json:"groq_analysis"`
	SynthesisError      string        `json:"groq_analysis_error,omitempty"`
	TotalVideosAnalyzed int           `json:"total_videos_analyzed"`
}

// SentimentResult is the output of comment sentiment analysis. Purely
// qualitative: a generation failure leaves only the error marker.
type SentimentResult struct {
	Sentiment             string `json:"sentiment_analysis"`
	SentimentError        string `json:"sentiment_analysis_error,omitempty"`
	TotalCommentsAnalyzed int    `json:"total_comments_analyzed"`
}
