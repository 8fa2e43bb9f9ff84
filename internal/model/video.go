package model

import (
	"regexp"
	"time"
)

// videoIDRe matches canonical 11-character YouTube video IDs.
var videoIDRe = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// VideoID is a validated canonical video identifier.
type VideoID string

// NewVideoID validates the canonical 11-character video ID shape.
func NewVideoID(s string) (VideoID, error) {
	if !videoIDRe.MatchString(s) {
		return "", &ResolutionError{Kind: ResolutionMalformed, Ref: s}
	}
	return VideoID(s), nil
}

// IsVideoID reports whether s already has the canonical video ID shape.
func IsVideoID(s string) bool {
	return videoIDRe.MatchString(s)
}

func (id VideoID) String() string { return string(id) }

// VideoRecord is one acquired video with its engagement statistics.
// EngagementRate is zero until the trend analysis stage computes it; the
// raw counts alone are not enough to rank a video.
type VideoRecord struct {
	ID             VideoID   `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PublishedAt    time.Time `json:"published_at"`
	Thumbnail      string    `json:"thumbnail"`
	ViewCount      int64     `json:"view_count"`
	LikeCount      int64     `json:"like_count"`
	CommentCount   int64     `json:"comment_count"`
	Duration       string    `json:"duration"`
	Tags           []string  `json:"tags"`
	EngagementRate float64   `json:"engagement_rate"`
}

// NewVideoRecord builds a VideoRecord, clamping negative counts to zero so
// downstream arithmetic never sees invalid statistics.
func NewVideoRecord(id VideoID, title, description string, publishedAt time.Time,
	thumbnail string, views, likes, comments int64, duration string, tags []string) VideoRecord {
	return VideoRecord{
		ID:           id,
		Title:        title,
		Description:  description,
		PublishedAt:  publishedAt,
		Thumbnail:    thumbnail,
		ViewCount:    max(views, 0),
		LikeCount:    max(likes, 0),
		CommentCount: max(comments, 0),
		Duration:     duration,
		Tags:         tags,
	}
}

// VideoStats is the compact video summary returned by the single-video flow.
type VideoStats struct {
	ID       VideoID `json:"id"`
	Title    string  `json:"title"`
	Views    int64   `json:"views"`
	Likes    int64   `json:"likes"`
	Comments int64   `json:"comments"`
}
