package ai

import (
	"context"

	"github.com/poiesic/vidsift/core"
)

// Reasons attached to candidates that skip classification.
const (
	// ReasonSkipped marks candidates accepted because no classification
	// credentials were configured.
	ReasonSkipped = "AI skipped"

	// ReasonBypassed marks candidates accepted because the classifier
	// call failed and the stage failed open.
	ReasonBypassed = "AI bypass (error)"
)

// bypassClassifier accepts every candidate with a fixed reason.
type bypassClassifier struct {
	reason string
}

var _ Classifier = (*bypassClassifier)(nil)

// NewBypass returns a Classifier that accepts every candidate with the
// given reason. It is used when no credentials are configured, degrading
// the funnel to heuristic-only filtering instead of zero results.
func NewBypass(reason string) Classifier {
	if reason == "" {
		reason = ReasonSkipped
	}
	return &bypassClassifier{reason: reason}
}

func (b *bypassClassifier) Classify(ctx context.Context, video core.Video, subject string) (Verdict, error) {
	return Verdict{Valid: true, Reason: b.reason}, nil
}
