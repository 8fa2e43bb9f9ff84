// Package youtube provides a client for the YouTube Data API v3 using
// API-key authentication.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com"

// ErrNotFound is returned when a lookup by ID yields no items.
var ErrNotFound = errors.New("youtube: not found")

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// Client is a YouTube Data API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
}

// NewClient creates a new YouTube API client with the given API key.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Channel fetches channel metadata, statistics, and the uploads playlist ID.
// Returns ErrNotFound when the ID matches no channel.
func (c *Client) Channel(ctx context.Context, channelID string) (*Channel, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", channelID)

	body, err := c.doRequest(ctx, "/youtube/v3/channels", params)
	if err != nil {
		return nil, err
	}

	var resp channelListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse channel response: %w", err)
	}

	if len(resp.Items) == 0 {
		return nil, ErrNotFound
	}

	item := resp.Items[0]
	ch := &Channel{
		ID:              item.ID,
		Title:           item.Snippet.Title,
		Description:     item.Snippet.Description,
		VideoCount:      parseCount(item.Statistics.VideoCount),
		ViewCount:       parseCount(item.Statistics.ViewCount),
		Thumbnail:       item.Snippet.Thumbnails.Default.URL,
		UploadsPlaylist: item.ContentDetails.RelatedPlaylists.Uploads,
	}
	if !item.Statistics.HiddenSubscriberCount && item.Statistics.SubscriberCount != "" {
		subs := parseCount(item.Statistics.SubscriberCount)
		ch.Subscribers = &subs
	}

	return ch, nil
}

// PlaylistPage fetches one page of video IDs from a playlist. maxResults is
// capped at 50 by the API.
func (c *Client) PlaylistPage(ctx context.Context, playlistID, pageToken string, maxResults int) (*PlaylistPage, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("playlistId", playlistID)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	body, err := c.doRequest(ctx, "/youtube/v3/playlistItems", params)
	if err != nil {
		return nil, err
	}

	var resp playlistItemsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse playlist response: %w", err)
	}

	page := &PlaylistPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		if id := item.Snippet.ResourceID.VideoID; id != "" {
			page.VideoIDs = append(page.VideoIDs, id)
		}
	}

	return page, nil
}

// Videos fetches snippet, statistics, and duration for up to 50 video IDs in
// one batched call. Results follow the order the API returns them in.
func (c *Client) Videos(ctx context.Context, videoIDs []string) ([]Video, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", strings.Join(videoIDs, ","))

	body, err := c.doRequest(ctx, "/youtube/v3/videos", params)
	if err != nil {
		return nil, err
	}

	var resp videoListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse videos response: %w", err)
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		videos = append(videos, Video{
			ID:           item.ID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			PublishedAt:  publishedAt,
			Thumbnail:    item.Snippet.Thumbnails.Medium.URL,
			ViewCount:    parseCount(item.Statistics.ViewCount),
			LikeCount:    parseCount(item.Statistics.LikeCount),
			CommentCount: parseCount(item.Statistics.CommentCount),
			Duration:     item.ContentDetails.Duration,
			Tags:         item.Snippet.Tags,
		})
	}

	return videos, nil
}

// CommentPage fetches one page of top-level comments for a video, ordered by
// relevance. maxResults is capped at 100 by the API.
func (c *Client) CommentPage(ctx context.Context, videoID, pageToken string, maxResults int) (*CommentPage, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", videoID)
	params.Set("order", "relevance")
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	body, err := c.doRequest(ctx, "/youtube/v3/commentThreads", params)
	if err != nil {
		return nil, err
	}

	var resp commentThreadsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse comment threads response: %w", err)
	}

	page := &CommentPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		snippet := item.Snippet.TopLevelComment.Snippet
		publishedAt, _ := time.Parse(time.RFC3339, snippet.PublishedAt)
		page.Comments = append(page.Comments, Comment{
			Text:        snippet.TextDisplay,
			Author:      snippet.AuthorDisplayName,
			LikeCount:   snippet.LikeCount,
			PublishedAt: publishedAt,
		})
	}

	return page, nil
}

// SearchChannels searches for channels matching the free-text query.
func (c *Client) SearchChannels(ctx context.Context, query string, maxResults int) ([]ChannelResult, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "channel")
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))

	body, err := c.doRequest(ctx, "/youtube/v3/search", params)
	if err != nil {
		return nil, err
	}

	var resp searchListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	results := make([]ChannelResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, ChannelResult{
			ChannelID:   item.Snippet.ChannelID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Thumbnail:   item.Snippet.Thumbnails.Default.URL,
		})
	}

	return results, nil
}

// doRequest performs an authenticated GET and returns the response body.
func (c *Client) doRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("youtube api error (status %d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("youtube api error: status %d", resp.StatusCode)
	}

	return body, nil
}
