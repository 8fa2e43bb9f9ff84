package service

import (
	"context"
	"errors"
	"log"

	"github.com/creatorlens/creatorlens/internal/model"
	"github.com/creatorlens/creatorlens/internal/youtube"
)

// pageSize is the per-call cap the data API enforces on listing endpoints.
const pageSize = 50

// VideoAPI is the slice of the data API the acquisition stage consumes.
type VideoAPI interface {
	Channel(ctx context.Context, channelID string) (*youtube.Channel, error)
	PlaylistPage(ctx context.Context, playlistID, pageToken string, maxResults int) (*youtube.PlaylistPage, error)
	Videos(ctx context.Context, videoIDs []string) ([]youtube.Video, error)
	CommentPage(ctx context.Context, videoID, pageToken string, maxResults int) (*youtube.CommentPage, error)
}

// TranscriptFetcher fetches caption text for a video.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

// AcquisitionService fetches channel metadata, capped video listings,
// comments, and transcripts. Comments and transcripts are best-effort.
type AcquisitionService struct {
	api         VideoAPI
	transcripts TranscriptFetcher
}

func NewAcquisitionService(api VideoAPI, transcripts TranscriptFetcher) *AcquisitionService {
	return &AcquisitionService{api: api, transcripts: transcripts}
}

// GetChannelInfo fetches the channel metadata snapshot.
func (s *AcquisitionService) GetChannelInfo(ctx context.Context, id model.ChannelID) (*model.ChannelInfo, error) {
	ch, err := s.api.Channel(ctx, id.String())
	if err != nil {
		if errors.Is(err, youtube.ErrNotFound) {
			return nil, &model.AcquisitionError{Kind: model.AcquisitionNotFound, Subject: "channel " + id.String()}
		}
		return nil, &model.AcquisitionError{Kind: model.AcquisitionUpstream, Subject: "channel " + id.String(), Cause: err}
	}

	return &model.ChannelInfo{
		ID:          id,
		Title:       ch.Title,
		Description: ch.Description,
		Subscribers: ch.Subscribers,
		VideoCount:  ch.VideoCount,
		ViewCount:   ch.ViewCount,
		Thumbnail:   ch.Thumbnail,
	}, nil
}

// GetChannelVideos fetches up to maxResults videos from the channel's
// uploads playlist, following the continuation cursor page by page and
// batching one detail call per page. Failing to resolve the uploads playlist
// is fatal; a failure on a later page truncates the list to what was already
// collected.
func (s *AcquisitionService) GetChannelVideos(ctx context.Context, id model.ChannelID, maxResults int) ([]model.VideoRecord, error) {
	ch, err := s.api.Channel(ctx, id.String())
	if err != nil {
		if errors.Is(err, youtube.ErrNotFound) {
			return nil, &model.AcquisitionError{Kind: model.AcquisitionNotFound, Subject: "channel " + id.String()}
		}
		return nil, &model.AcquisitionError{Kind: model.AcquisitionUpstream, Subject: "uploads playlist for " + id.String(), Cause: err}
	}

	videos := make([]model.VideoRecord, 0, maxResults)
	pageToken := ""

	for len(videos) < maxResults {
		want := min(pageSize, maxResults-len(videos))

		page, err := s.api.PlaylistPage(ctx, ch.UploadsPlaylist, pageToken, want)
		if err != nil {
			log.Printf("acquisition: playlist page failed for %s, returning %d videos: %v", id, len(videos), err)
			break
		}

		details, err := s.api.Videos(ctx, page.VideoIDs)
		if err != nil {
			log.Printf("acquisition: video details failed for %s, returning %d videos: %v", id, len(videos), err)
			break
		}

		for _, v := range details {
			if len(videos) >= maxResults {
				break
			}
			videos = append(videos, videoRecord(v))
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return videos, nil
}

// GetVideoInfo fetches a single video's statistics.
func (s *AcquisitionService) GetVideoInfo(ctx context.Context, id model.VideoID) (*model.VideoRecord, error) {
	details, err := s.api.Videos(ctx, []string{id.String()})
	if err != nil {
		return nil, &model.AcquisitionError{Kind: model.AcquisitionUpstream, Subject: "video " + id.String(), Cause: err}
	}
	if len(details) == 0 {
		return nil, &model.AcquisitionError{Kind: model.AcquisitionNotFound, Subject: "video " + id.String()}
	}

	rec := videoRecord(details[0])
	return &rec, nil
}

// GetVideoComments fetches up to maxResults relevance-ordered comments.
// A failure mid-loop returns whatever was accumulated: comments are
// supplementary and never block the pipeline.
func (s *AcquisitionService) GetVideoComments(ctx context.Context, id model.VideoID, maxResults int) []model.CommentRecord {
	comments := make([]model.CommentRecord, 0, maxResults)
	pageToken := ""

	for len(comments) < maxResults {
		want := min(pageSize, maxResults-len(comments))

		page, err := s.api.CommentPage(ctx, id.String(), pageToken, want)
		if err != nil {
			log.Printf("acquisition: comment page failed for %s, returning %d comments: %v", id, len(comments), err)
			break
		}

		for _, c := range page.Comments {
			if len(comments) >= maxResults {
				break
			}
			comments = append(comments, model.CommentRecord{
				Text:        c.Text,
				Author:      c.Author,
				LikeCount:   c.LikeCount,
				PublishedAt: c.PublishedAt,
			})
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return comments
}

// GetVideoTranscript fetches caption text, collapsing every failure to an
// empty string.
func (s *AcquisitionService) GetVideoTranscript(ctx context.Context, id model.VideoID) string {
	text, err := s.transcripts.Fetch(ctx, id.String())
	if err != nil {
		log.Printf("acquisition: transcript unavailable for %s: %v", id, err)
		return ""
	}
	return text
}

func videoRecord(v youtube.Video) model.VideoRecord {
	return model.NewVideoRecord(model.VideoID(v.ID), v.Title, v.Description, v.PublishedAt,
		v.Thumbnail, v.ViewCount, v.LikeCount, v.CommentCount, v.Duration, v.Tags)
}
