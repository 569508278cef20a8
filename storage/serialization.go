// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/vidsift/core"
)

// VideoRecord values are stored in MUS format, field by field in struct
// order, with AddedAt reduced to Unix microseconds. The serializer is
// hand-written; one small record type does not warrant a code generator.

// MarshalVideoRecord serializes a VideoRecord to bytes.
func MarshalVideoRecord(record *core.VideoRecord) []byte {
	bs := make([]byte, sizeVideoRecord(record))
	marshalVideoRecord(record, bs)
	return bs
}

// UnmarshalVideoRecord deserializes a VideoRecord from bytes.
func UnmarshalVideoRecord(data []byte) (*core.VideoRecord, error) {
	var (
		record core.VideoRecord
		off    int
		n      int
		err    error
	)

	if record.ID, n, err = ord.String.Unmarshal(data[off:]); err != nil {
		return nil, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	off += n
	if record.Title, n, err = ord.String.Unmarshal(data[off:]); err != nil {
		return nil, fmt.Errorf("%w: title: %w", ErrSerializationFailed, err)
	}
	off += n
	if record.Channel, n, err = ord.String.Unmarshal(data[off:]); err != nil {
		return nil, fmt.Errorf("%w: channel: %w", ErrSerializationFailed, err)
	}
	off += n
	if record.Duration, n, err = varint.Int64.Unmarshal(data[off:]); err != nil {
		return nil, fmt.Errorf("%w: duration: %w", ErrSerializationFailed, err)
	}
	off += n
	if record.Thumbnail, n, err = ord.String.Unmarshal(data[off:]); err != nil {
		return nil, fmt.Errorf("%w: thumbnail: %w", ErrSerializationFailed, err)
	}
	off += n
	if record.AIReason, n, err = ord.String.Unmarshal(data[off:]); err != nil {
		return nil, fmt.Errorf("%w: ai reason: %w", ErrSerializationFailed, err)
	}
	off += n
	var addedAt int64
	if addedAt, _, err = varint.Int64.Unmarshal(data[off:]); err != nil {
		return nil, fmt.Errorf("%w: added at: %w", ErrSerializationFailed, err)
	}
	record.AddedAt = time.UnixMicro(addedAt).UTC()

	return &record, nil
}

func marshalVideoRecord(record *core.VideoRecord, bs []byte) {
	off := ord.String.Marshal(record.ID, bs)
	off += ord.String.Marshal(record.Title, bs[off:])
	off += ord.String.Marshal(record.Channel, bs[off:])
	off += varint.Int64.Marshal(record.Duration, bs[off:])
	off += ord.String.Marshal(record.Thumbnail, bs[off:])
	off += ord.String.Marshal(record.AIReason, bs[off:])
	varint.Int64.Marshal(record.AddedAt.UnixMicro(), bs[off:])
}

func sizeVideoRecord(record *core.VideoRecord) int {
	return ord.String.Size(record.ID) +
		ord.String.Size(record.Title) +
		ord.String.Size(record.Channel) +
		varint.Int64.Size(record.Duration) +
		ord.String.Size(record.Thumbnail) +
		ord.String.Size(record.AIReason) +
		varint.Int64.Size(record.AddedAt.UnixMicro())
}
