package storage

import (
	"context"

	"github.com/poiesic/vidsift/core"
)

// VideoRepository provides operations for the durable video library.
// Implementations must be thread-safe and support concurrent access.
type VideoRepository interface {
	// AddVideoIfAbsent persists a record keyed by its video id unless one
	// with that id already exists. Returns true when the record was newly
	// inserted; a duplicate id is a no-op returning false, never an error.
	// First-written attributes are retained on duplicates.
	AddVideoIfAbsent(ctx context.Context, record *core.VideoRecord) (bool, error)

	// GetVideo retrieves a record by id.
	// Returns ErrNotFound if no record exists.
	GetVideo(ctx context.Context, id string) (*core.VideoRecord, error)

	// ListVideos returns up to limit records, most recently added first.
	// A limit <= 0 returns all records.
	ListVideos(ctx context.Context, limit int) ([]*core.VideoRecord, error)

	// Close releases repository resources.
	Close() error
}

// SettingsRepository provides the persisted key-value settings used to
// configure the classification service. Settings are read once at session
// start and never written during a session.
type SettingsRepository interface {
	// Get retrieves a setting value.
	// Returns ErrNotFound if the key has never been set.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a setting value, replacing any previous one.
	Set(ctx context.Context, key, value string) error

	// All returns every stored setting.
	All(ctx context.Context) (map[string]string, error)

	// Close releases repository resources.
	Close() error
}
