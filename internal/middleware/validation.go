package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Request field limits. References can be full URLs, so they get more room
// than bare IDs.
const (
	MaxRefLen   = 200
	MaxQueryLen = 100
	MaxNicheLen = 100

	MinMaxVideos = 1
	MaxMaxVideos = 50

	MinSearchResults = 1
	MaxSearchResults = 25

	MinIdeaCount = 1
	MaxIdeaCount = 10
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateChannelRef checks a free-form channel reference (ID, URL, handle).
func ValidateChannelRef(ref string) (string, string) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "channel_id is required"
	}
	if len(ref) > MaxRefLen {
		return "", "channel_id must be at most 200 characters"
	}
	return ref, ""
}

// ValidateVideoRef checks a free-form video reference (ID or URL).
func ValidateVideoRef(ref string) (string, string) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "video_id is required"
	}
	if len(ref) > MaxRefLen {
		return "", "video_id must be at most 200 characters"
	}
	return ref, ""
}

// ValidateQuery checks a channel search query.
func ValidateQuery(q string) (string, string) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", "query is required"
	}
	if len(q) > MaxQueryLen {
		return "", "query must be at most 100 characters"
	}
	return q, ""
}

// ValidateNiche checks a content niche description.
func ValidateNiche(niche string) (string, string) {
	niche = strings.TrimSpace(niche)
	if niche == "" {
		return "", "niche is required"
	}
	if len(niche) > MaxNicheLen {
		return "", "niche must be at most 100 characters"
	}
	return niche, ""
}

// ClampInt returns v bounded to [lo, hi], or def when v is zero.
func ClampInt(v, def, lo, hi int) int {
	if v == 0 {
		v = def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
