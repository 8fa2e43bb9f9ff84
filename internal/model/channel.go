package model

import "regexp"

// channelIDRe matches canonical YouTube channel IDs: "UC" plus 22 characters.
var channelIDRe = regexp.MustCompile(`^UC[0-9A-Za-z_-]{22}$`)

// ChannelID is a validated canonical channel identifier.
type ChannelID string

// NewChannelID validates the canonical 24-character channel ID shape.
func NewChannelID(s string) (ChannelID, error) {
	if !channelIDRe.MatchString(s) {
		return "", &ResolutionError{Kind: ResolutionMalformed, Ref: s}
	}
	return ChannelID(s), nil
}

// IsChannelID reports whether s already has the canonical channel ID shape.
func IsChannelID(s string) bool {
	return channelIDRe.MatchString(s)
}

func (id ChannelID) String() string { return string(id) }

// ChannelInfo is the channel metadata snapshot taken once per request.
// Subscribers is nil when the channel hides its subscriber count.
type ChannelInfo struct {
	ID          ChannelID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subscribers *int64    `json:"subscriber_count"`
	VideoCount  int64     `json:"video_count"`
	ViewCount   int64     `json:"view_count"`
	Thumbnail   string    `json:"thumbnail"`
}

// ChannelSummary is a single channel search result.
type ChannelSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}
