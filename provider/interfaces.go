package provider

import (
	"context"

	"github.com/poiesic/vidsift/core"
)

// Searcher issues one flat catalog search and returns candidate videos in
// provider order. Implementations must be thread-safe; the fetcher calls
// Search from several workers at once.
//
// A flat listing (no per-video detail fetch) is part of the contract:
// implementations are expected to return title, uploader, duration and
// thumbnail from at most a constant number of batched calls per term.
type Searcher interface {
	// Search returns up to limit videos matching term. An error covers the
	// whole call; callers treat it as an empty result for that term.
	Search(ctx context.Context, term string, limit int) ([]core.Video, error)
}
