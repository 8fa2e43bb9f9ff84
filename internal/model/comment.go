package model

import "time"

// CommentRecord is a single top-level comment, ordered by upstream relevance.
type CommentRecord struct {
	Text        string    `json:"text"`
	Author      string    `json:"author"`
	LikeCount   int64     `json:"like_count"`
	PublishedAt time.Time `json:"published_at"`
}
