package badger

import (
	"bytes"
	"context"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/vidsift/storage"
)

// SettingsRepository implements storage.SettingsRepository for BadgerDB.
// Values are stored as plain UTF-8 bytes.
type SettingsRepository struct {
	backend *Backend
}

var _ storage.SettingsRepository = (*SettingsRepository)(nil)

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(backend *Backend) *SettingsRepository {
	return &SettingsRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *SettingsRepository) Close() error {
	return nil
}

// Get retrieves a setting value.
func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSettingKey(key))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	}, false)
	return value, err
}

// Set stores a setting value, replacing any previous one.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSettingKey(key), []byte(value)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// All returns every stored setting.
func (r *SettingsRepository) All(ctx context.Context) (map[string]string, error) {
	settings := make(map[string]string)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = settingKeyPrefix()

		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := settingKeyPrefix()
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			key := iter.Item().Key()
			if !bytes.HasPrefix(key, prefix) {
				break
			}
			name := strings.TrimPrefix(string(key), string(prefix))
			if err := iter.Item().Value(func(val []byte) error {
				settings[name] = string(val)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	}, false)
	return settings, err
}
