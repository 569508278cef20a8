package youtube

import (
	"context"

	"github.com/poiesic/vidsift/core"
	"github.com/poiesic/vidsift/provider"
	"google.golang.org/api/youtube/v3"
)

var _ provider.Searcher = (*Client)(nil)

// Search runs one flat catalog search: a single search.list page followed
// by one batched videos.list call for runtimes. Intra-term order follows
// the provider's relevance ranking.
func (c *Client) Search(ctx context.Context, term string, limit int) ([]core.Video, error) {
	if term == "" {
		return nil, provider.ErrEmptyTerm
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	listing, err := c.svc.Search.List([]string{"snippet"}).
		Q(term).
		Type("video").
		MaxResults(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	videos := make([]core.Video, 0, len(listing.Items))
	ids := make([]string, 0, len(listing.Items))
	for _, item := range listing.Items {
		v := searchResultToVideo(item)
		if v.Title == "" {
			continue
		}
		videos = append(videos, v)
		ids = append(ids, v.ID)
	}

	if len(ids) == 0 {
		return videos, nil
	}

	durations, err := c.fetchDurations(ctx, ids)
	if err != nil {
		// Durations are advisory; the heuristic filter treats 0 as absent.
		c.logger.Debug("duration lookup failed", "term", term, "err", err)
		return videos, nil
	}
	for i := range videos {
		videos[i].Duration = durations[videos[i].ID]
	}
	return videos, nil
}

// fetchDurations resolves runtimes for up to one page of ids in a single
// batched call, keeping the listing flat.
func (c *Client) fetchDurations(ctx context.Context, ids []string) (map[string]int64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	details, err := c.svc.Videos.List([]string{"contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	durations := make(map[string]int64, len(details.Items))
	for _, item := range details.Items {
		if item.ContentDetails == nil {
			continue
		}
		seconds, err := parseISODuration(item.ContentDetails.Duration)
		if err != nil {
			c.logger.Debug("unparsable duration",
				"video", item.Id,
				"duration", item.ContentDetails.Duration)
			continue
		}
		durations[item.Id] = seconds
	}
	return durations, nil
}

// searchResultToVideo maps one provider entry to the domain model.
// Entries without a provider id get a deterministic content-derived one so
// they still deduplicate.
func searchResultToVideo(item *youtube.SearchResult) core.Video {
	var v core.Video
	if item == nil || item.Snippet == nil {
		return v
	}

	v.Title = item.Snippet.Title
	v.Channel = item.Snippet.ChannelTitle
	v.Thumbnail = bestThumbnail(item.Snippet.Thumbnails)

	if item.Id != nil && item.Id.VideoId != "" {
		v.ID = item.Id.VideoId
	} else {
		v.ID = core.IDFromContent(v.Title + "|" + v.Channel)
	}
	return v
}

// bestThumbnail picks the largest available thumbnail variant.
func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, candidate := range []*youtube.Thumbnail{t.High, t.Medium, t.Default} {
		if candidate != nil && candidate.Url != "" {
			return candidate.Url
		}
	}
	return ""
}
