package ai

import (
	"context"

	"github.com/poiesic/vidsift/core"
)

// Verdict is the classifier's judgment on a single candidate.
type Verdict struct {
	// Valid is true when the video is a primary source appearance of the
	// subject: a full interview, keynote, lecture, fireside chat or
	// documentary where the subject speaks for most of the runtime.
	Valid bool

	// Reason is a short rationale, at most a few words.
	Reason string
}

// Classifier decides whether a candidate video is a primary source
// appearance of a subject. Implementations must be thread-safe for
// concurrent use.
type Classifier interface {
	// Classify judges one candidate. The returned error indicates a call
	// failure (timeout, transport error, unparsable response); callers are
	// expected to fail open on error rather than discard the candidate.
	Classify(ctx context.Context, video core.Video, subject string) (Verdict, error)
}
