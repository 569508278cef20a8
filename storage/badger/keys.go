package badger

import (
	"encoding/binary"
	"time"
)

// Key prefixes for different data types
const (
	videoRecordPrefix     = "vidrec"
	videoRecordDatePrefix = "vidrecd"
	settingPrefix         = "setting"
)

// makeVideoKey generates a key for a video record by id.
func makeVideoKey(id string) []byte {
	return []byte(videoRecordPrefix + ":" + id)
}

// makeVideoDateKey generates a composite key for the recency index.
// Format: prefix:timestamp:id
func makeVideoDateKey(addedAt time.Time, id string) []byte {
	prefix := videoRecordDatePrefix + ":"
	buf := make([]byte, len(prefix)+8+len(id))
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(addedAt.UnixMicro()))
	offset += 8
	copy(buf[offset:], id)
	return buf
}

// videoDateKeyPrefix is the common prefix of all recency index keys.
func videoDateKeyPrefix() []byte {
	return []byte(videoRecordDatePrefix + ":")
}

// makeSettingKey generates a key for a setting by name.
func makeSettingKey(key string) []byte {
	return []byte(settingPrefix + ":" + key)
}

// settingKeyPrefix is the common prefix of all setting keys.
func settingKeyPrefix() []byte {
	return []byte(settingPrefix + ":")
}
