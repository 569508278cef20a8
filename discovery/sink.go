package discovery

import (
	"context"
	"time"

	"github.com/poiesic/vidsift/core"
)

// defaultThumbnailURL derives a thumbnail deterministically from the
// candidate id for entries the provider returned bare.
func defaultThumbnailURL(id string) string {
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}

// accept turns a classified candidate into a VideoRecord, backfills a
// missing thumbnail and persists it idempotently. Persistence failures are
// logged but do not drop the candidate from the session's final list;
// the durable store is best-effort, the stream to the caller is not.
func (s *Session) accept(ctx context.Context, video core.Video, reason string) *core.VideoRecord {
	if video.Thumbnail == "" {
		video.Thumbnail = defaultThumbnailURL(video.ID)
	}

	record := &core.VideoRecord{
		Video:    video,
		AIReason: reason,
		AddedAt:  time.Now().UTC(),
	}

	inserted, err := s.videos.AddVideoIfAbsent(ctx, record)
	if err != nil {
		s.logger.Error("failed to persist video", "video", video.ID, "err", err)
	} else if !inserted {
		s.logger.Debug("video already in library", "video", video.ID)
	}
	return record
}
