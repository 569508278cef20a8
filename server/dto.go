package server

import (
	"time"

	"github.com/poiesic/vidsift/core"
)

// videoJSON is the wire shape of a library entry.
type videoJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Channel   string    `json:"channel"`
	Duration  int64     `json:"duration"`
	Thumbnail string    `json:"thumbnail"`
	AIReason  string    `json:"ai_reason"`
	AddedAt   time.Time `json:"added_at"`
}

func toVideoJSON(record *core.VideoRecord) videoJSON {
	return videoJSON{
		ID:        record.ID,
		Title:     record.Title,
		Channel:   record.Channel,
		Duration:  record.Duration,
		Thumbnail: record.Thumbnail,
		AIReason:  record.AIReason,
		AddedAt:   record.AddedAt,
	}
}

func toVideoJSONList(records []*core.VideoRecord) []videoJSON {
	out := make([]videoJSON, 0, len(records))
	for _, record := range records {
		out = append(out, toVideoJSON(record))
	}
	return out
}

// errorJSON is the wire shape of a handler failure.
type errorJSON struct {
	Error string `json:"error"`
}
