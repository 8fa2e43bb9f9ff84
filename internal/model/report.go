package model

// ChannelReport is the aggregate response of the channel analysis pipeline.
// Analysis and Strategy may carry embedded error markers when their
// generative calls failed; the report itself still represents a success.
type ChannelReport struct {
	Channel        *ChannelInfo     `json:"channel"`
	Analysis       *TrendAnalysis   `json:"analysis"`
	Strategy       *ContentStrategy `json:"strategy"`
	VideosAnalyzed int              `json:"videos_analyzed"`
}

// VideoReport is the aggregate response of the single-video flow.
type VideoReport struct {
	Video             VideoStats       `json:"video"`
	Comments          []CommentRecord  `json:"comments"`
	Sentiment         *SentimentResult `json:"sentiment"`
	HasTranscript     bool             `json:"has_transcript"`
	TranscriptPreview string           `json:"transcript_preview,omitempty"`
}
