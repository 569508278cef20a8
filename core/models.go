package core

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Video is a single candidate produced by a search provider.
// It is immutable once created; the funnel never mutates candidates,
// it only decides whether they survive each stage.
type Video struct {
	ID        string // Provider-assigned identifier, unique within the catalog
	Title     string
	Channel   string // Uploader / channel name, may be empty
	Duration  int64  // Runtime in seconds; 0 when the provider reports none
	Thumbnail string // Optional thumbnail URL
}

// VideoRecord is a candidate that passed both filter stages and was
// accepted into the durable library. AIReason carries the classifier's
// short rationale (or a bypass marker when classification was skipped).
type VideoRecord struct {
	Video
	AIReason string
	AddedAt  time.Time // When the record was first persisted
}

// IDFromContent generates a deterministic identifier from text content
// using BLAKE2b hashing. It is used to synthesize stable IDs for provider
// entries that arrive without one, so that identical entries deduplicate
// to the same key.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
