package badger

import (
	"bytes"
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/vidsift/core"
	"github.com/poiesic/vidsift/storage"
)

// VideoRepository implements storage.VideoRepository for BadgerDB.
type VideoRepository struct {
	backend *Backend
}

var _ storage.VideoRepository = (*VideoRepository)(nil)

// NewVideoRepository creates a new VideoRepository.
func NewVideoRepository(backend *Backend) *VideoRepository {
	return &VideoRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *VideoRepository) Close() error {
	return nil
}

// AddVideoIfAbsent persists a record unless its id already exists.
// Duplicate ids are no-ops returning false; first-written attributes win.
func (r *VideoRepository) AddVideoIfAbsent(ctx context.Context, record *core.VideoRecord) (bool, error) {
	if err := core.ValidateVideo(&record.Video); err != nil {
		return false, err
	}

	inserted := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeVideoKey(record.ID)

		_, err := tx.Get(key)
		if err == nil {
			return nil // already present, keep first-written attributes
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		if err := tx.Set(key, storage.MarshalVideoRecord(record)); err != nil {
			return err
		}

		dateKey := makeVideoDateKey(record.AddedAt, record.ID)
		if err := tx.Set(dateKey, []byte(record.ID)); err != nil {
			return err
		}

		inserted = true
		return tx.Commit()
	}, true)

	return inserted, err
}

// GetVideo retrieves a record by id.
func (r *VideoRepository) GetVideo(ctx context.Context, id string) (*core.VideoRecord, error) {
	var result *core.VideoRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVideoKey(id))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			result, err = storage.UnmarshalVideoRecord(val)
			return err
		})
	}, false)
	return result, err
}

// ListVideos returns up to limit records, most recently added first.
func (r *VideoRepository) ListVideos(ctx context.Context, limit int) ([]*core.VideoRecord, error) {
	var results []*core.VideoRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := videoDateKeyPrefix()
		// Seek past the last possible key under the prefix, then walk back.
		seekKey := append(append([]byte{}, prefix...), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)

		for iter.Seek(seekKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if !bytes.HasPrefix(key, prefix) {
				break
			}
			if limit > 0 && len(results) >= limit {
				break
			}

			var id string
			if err := iter.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			}); err != nil {
				return err
			}

			item, err := tx.Get(makeVideoKey(id))
			if err == badger.ErrKeyNotFound {
				continue // dangling index entry
			}
			if err != nil {
				return err
			}
			if err := item.Value(func(val []byte) error {
				record, err := storage.UnmarshalVideoRecord(val)
				if err != nil {
					return err
				}
				results = append(results, record)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	}, false)

	return results, err
}
