// Package transcript fetches video caption text from the timedtext endpoint.
// Callers treat every failure as "no transcript available".
package transcript

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://video.google.com"

// ErrNoCaptions is returned when the video has no caption track.
var ErrNoCaptions = errors.New("transcript: no captions available")

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

// Client fetches caption tracks.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	language   string
}

// NewClient creates a transcript client requesting English captions.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		language:   "en",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch returns the concatenated caption text for a video.
func (c *Client) Fetch(ctx context.Context, videoID string) (string, error) {
	params := url.Values{}
	params.Set("lang", c.language)
	params.Set("v", videoID)
	reqURL := c.baseURL + "/timedtext?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timedtext error: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	// Videos without captions return an empty body rather than an error status.
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", ErrNoCaptions
	}

	var doc transcriptXML
	if err := xml.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("failed to parse transcript: %w", err)
	}

	parts := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		// Caption text is escaped twice: once by XML, once by the service.
		line := strings.TrimSpace(html.UnescapeString(t.Value))
		if line != "" {
			parts = append(parts, line)
		}
	}

	if len(parts) == 0 {
		return "", ErrNoCaptions
	}

	return strings.Join(parts, " "), nil
}

type transcriptXML struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}
