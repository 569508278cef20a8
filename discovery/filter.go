package discovery

import (
	"strings"

	"github.com/poiesic/vidsift/core"
)

// minDurationSeconds rejects clips shorter than five minutes. Real
// interviews and talks are long; shorts and teasers are not.
const minDurationSeconds = 300

// bannedTerms mark low-value content regardless of relevance.
var bannedTerms = []string{
	"reaction",
	"react",
	"gameplay",
	"walkthrough",
	"short",
	"#shorts",
	"tiktok",
	"reel",
	"funny moments",
	"compilation",
}

// QueryTokens lower-cases and splits a subject into the tokens used by the
// relevance gate.
func QueryTokens(subject string) []string {
	return strings.Fields(strings.ToLower(subject))
}

// Admit is the heuristic filter: a pure, constant-time predicate that
// eliminates the bulk of the raw volume before any paid or slow call.
//
// A candidate is admitted when its lower-cased title contains at least one
// query token, contains no banned term, and its duration is at least five
// minutes (an absent duration counts as zero and is rejected).
func Admit(video core.Video, queryTokens []string) bool {
	title := strings.ToLower(video.Title)

	relevant := false
	for _, token := range queryTokens {
		if strings.Contains(title, token) {
			relevant = true
			break
		}
	}
	if !relevant {
		return false
	}

	for _, banned := range bannedTerms {
		if strings.Contains(title, banned) {
			return false
		}
	}

	return video.Duration >= minDurationSeconds
}
