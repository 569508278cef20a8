// Package storage defines the persistence interfaces for the video library
// and the classifier settings, plus the MUS serialization of stored values.
//
// The library uses insert-if-absent semantics: writes are idempotent
// upserts keyed by video id, so concurrent sessions cannot race on
// read-modify-write. Backends live in sub-packages (storage/badger).
package storage
