package service

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/youtube"
)

// ChannelSearcher issues a channel-type search against the data API.
type ChannelSearcher interface {
	SearchChannels(ctx context.Context, query string, maxResults int) ([]youtube.ChannelResult, error)
}

var (
	// channelURLRe matches the known channel URL shapes: a direct
	// /channel/<id>, or a /c/, /user/, @handle segment to resolve via search.
	channelURLRe = regexp.MustCompile(`youtube\.com/(?:channel/([A-Za-z0-9_-]+)|c/([^/?#]+)|user/([^/?#]+)|@([^/?#]+))`)

	videoParamRe = regexp.MustCompile(`[?&]v=([0-9A-Za-z_-]{11})`)
	shortLinkRe  = regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`)
	embedRe      = regexp.MustCompile(`/embed/([0-9A-Za-z_-]{11})`)
	vPathRe      = regexp.MustCompile(`/v/([0-9A-Za-z_-]{11})`)
)

// ResolverService normalizes free-form channel and video references into
// canonical IDs. Channel resolution may issue a single search call; video
// resolution never touches the network.
type ResolverService struct {
	search ChannelSearcher
}

func NewResolverService(search ChannelSearcher) *ResolverService {
	return &ResolverService{search: search}
}

// ResolveChannel turns a channel ID, URL, or @handle into a canonical
// channel ID. Unmatched input falls back to a raw-string search, mirroring
// the leniency of URL-pasting users.
func (s *ResolverService) ResolveChannel(ctx context.Context, ref string) (model.ChannelID, error) {
	cleaned := cleanRef(ref)
	if cleaned == "" {
		return "", &model.ResolutionError{Kind: model.ResolutionMalformed, Ref: ref}
	}

	if model.IsChannelID(cleaned) {
		return model.ChannelID(cleaned), nil
	}

	candidate := cleaned
	switch m := channelURLRe.FindStringSubmatch(cleaned); {
	case m != nil && m[1] != "":
		if model.IsChannelID(m[1]) {
			return model.ChannelID(m[1]), nil
		}
		// /channel/ segment without the canonical shape: treat as a name.
		candidate = m[1]
	case m != nil:
		for _, g := range m[2:] {
			if g != "" {
				candidate = g
				break
			}
		}
	case strings.HasPrefix(cleaned, "@"):
		candidate = strings.TrimPrefix(cleaned, "@")
	default:
		log.Printf("resolver: no structural match for %q, searching raw input", cleaned)
	}

	return s.searchChannel(ctx, ref, candidate)
}

// ResolveVideo extracts a canonical 11-character video ID from an ID, watch
// URL, short link, or embed URL. There is no search fallback for videos.
func (s *ResolverService) ResolveVideo(ref string) (model.VideoID, error) {
	trimmed := strings.TrimSpace(ref)
	cleaned := cleanRef(ref)
	if cleaned == "" {
		return "", &model.ResolutionError{Kind: model.ResolutionMalformed, Ref: ref}
	}

	if model.IsVideoID(cleaned) {
		return model.VideoID(cleaned), nil
	}

	// The v= parameter lives in the query string, so match the uncleaned input.
	if m := videoParamRe.FindStringSubmatch(trimmed); m != nil {
		return model.VideoID(m[1]), nil
	}

	for _, re := range []*regexp.Regexp{shortLinkRe, embedRe, vPathRe} {
		if m := re.FindStringSubmatch(cleaned); m != nil {
			return model.VideoID(m[1]), nil
		}
	}

	return "", &model.ResolutionError{Kind: model.ResolutionMalformed, Ref: ref}
}

// searchChannel issues a single channel-type search capped to one result.
func (s *ResolverService) searchChannel(ctx context.Context, ref, candidate string) (model.ChannelID, error) {
	results, err := s.search.SearchChannels(ctx, candidate, 1)
	if err != nil {
		return "", &model.ResolutionError{Kind: model.ResolutionUpstream, Ref: ref, Cause: err}
	}
	if len(results) == 0 {
		return "", &model.ResolutionError{Kind: model.ResolutionNotFound, Ref: ref}
	}

	id, err := model.NewChannelID(results[0].ChannelID)
	if err != nil {
		return "", &model.ResolutionError{Kind: model.ResolutionUpstream, Ref: ref, Cause: err}
	}
	return id, nil
}

// cleanRef trims whitespace, drops everything from the first query or
// fragment marker onward, and strips trailing slashes.
func cleanRef(ref string) string {
	s := strings.TrimSpace(ref)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "/")
}
