package youtube

import (
	"strconv"
	"time"
)

// Channel holds channel metadata plus the uploads playlist used to list its
// videos. Subscribers is nil when the channel hides its subscriber count.
type Channel struct {
	ID              string
	Title           string
	Description     string
	Subscribers     *int64
	VideoCount      int64
	ViewCount       int64
	Thumbnail       string
	UploadsPlaylist string
}

// Video is one video's snippet, statistics, and duration.
type Video struct {
	ID           string
	Title        string
	Description  string
	PublishedAt  time.Time
	Thumbnail    string
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
	Duration     string
	Tags         []string
}

// PlaylistPage is one page of video IDs from a playlist listing.
type PlaylistPage struct {
	VideoIDs      []string
	NextPageToken string
}

// Comment is a single top-level comment.
type Comment struct {
	Text        string
	Author      string
	LikeCount   int64
	PublishedAt time.Time
}

// CommentPage is one page of a comment-thread listing.
type CommentPage struct {
	Comments      []Comment
	NextPageToken string
}

// ChannelResult is one channel search hit.
type ChannelResult struct {
	ChannelID   string
	Title       string
	Description string
	Thumbnail   string
}

// parseCount converts the API's string-typed counters; absent or malformed
// values become 0.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// --- API wire formats ---

type thumbnails struct {
	Default struct {
		URL string `json:"url"`
	} `json:"default"`
	Medium struct {
		URL string `json:"url"`
	} `json:"medium"`
}

type channelListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string     `json:"title"`
			Description string     `json:"description"`
			Thumbnails  thumbnails `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount       string `json:"subscriberCount"`
			HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"`
			VideoCount            string `json:"videoCount"`
			ViewCount             string `json:"viewCount"`
		} `json:"statistics"`
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	Items []struct {
		Snippet struct {
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string     `json:"title"`
			Description string     `json:"description"`
			PublishedAt string     `json:"publishedAt"`
			Thumbnails  thumbnails `json:"thumbnails"`
			Tags        []string   `json:"tags"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type commentThreadsResponse struct {
	Items []struct {
		Snippet struct {
			TopLevelComment struct {
				Snippet struct {
					TextDisplay       string `json:"textDisplay"`
					AuthorDisplayName string `json:"authorDisplayName"`
					LikeCount         int64  `json:"likeCount"`
					PublishedAt       string `json:"publishedAt"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

type searchListResponse struct {
	Items []struct {
		Snippet struct {
			ChannelID   string     `json:"channelId"`
			Title       string     `json:"title"`
			Description string     `json:"description"`
			Thumbnails  thumbnails `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
