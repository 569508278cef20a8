package badger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/poiesic/vidsift/core"
	"github.com/poiesic/vidsift/storage"
)

func newRecord(id, title string, addedAt time.Time) *core.VideoRecord {
	return &core.VideoRecord{
		Video: core.Video{
			ID:       id,
			Title:    title,
			Channel:  "Test Channel",
			Duration: 600,
		},
		AIReason: "ok",
		AddedAt:  addedAt,
	}
}

func TestVideoAddAndGet(t *testing.T) {
	videoRepo, settingsRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { settingsRepo.Close(); videoRepo.Close(); backend.Close() }()

	ctx := context.Background()

	inserted, err := videoRepo.AddVideoIfAbsent(ctx, newRecord("abc", "Ada Lovelace lecture", time.Now().UTC()))
	if err != nil {
		t.Fatalf("Failed to add video: %v", err)
	}
	if !inserted {
		t.Fatal("Expected insert to report true")
	}

	got, err := videoRepo.GetVideo(ctx, "abc")
	if err != nil {
		t.Fatalf("Failed to get video: %v", err)
	}
	if got.Title != "Ada Lovelace lecture" {
		t.Fatalf("Expected title to round trip, got %q", got.Title)
	}
}

func TestVideoGetMissing(t *testing.T) {
	videoRepo, settingsRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { settingsRepo.Close(); videoRepo.Close(); backend.Close() }()

	if _, err := videoRepo.GetVideo(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestVideoInsertIsIdempotent(t *testing.T) {
	videoRepo, settingsRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { settingsRepo.Close(); videoRepo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC()

	inserted, err := videoRepo.AddVideoIfAbsent(ctx, newRecord("abc", "first title", now))
	if err != nil || !inserted {
		t.Fatalf("First insert failed: inserted=%v err=%v", inserted, err)
	}

	// Second insert with different attributes must be a no-op.
	inserted, err = videoRepo.AddVideoIfAbsent(ctx, newRecord("abc", "second title", now.Add(time.Hour)))
	if err != nil {
		t.Fatalf("Duplicate insert errored: %v", err)
	}
	if inserted {
		t.Fatal("Duplicate insert reported true")
	}

	got, err := videoRepo.GetVideo(ctx, "abc")
	if err != nil {
		t.Fatalf("Failed to get video: %v", err)
	}
	if got.Title != "first title" {
		t.Fatalf("Expected first-written attributes retained, got title %q", got.Title)
	}

	list, err := videoRepo.ListVideos(ctx, 0)
	if err != nil {
		t.Fatalf("Failed to list videos: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Expected exactly one stored row, got %d", len(list))
	}
}

func TestVideoListOrderAndLimit(t *testing.T) {
	videoRepo, settingsRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { settingsRepo.Close(); videoRepo.Close(); backend.Close() }()

	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("vid%d", i)
		record := newRecord(id, "title "+id, base.Add(time.Duration(i)*time.Minute))
		if _, err := videoRepo.AddVideoIfAbsent(ctx, record); err != nil {
			t.Fatalf("Failed to add %s: %v", id, err)
		}
	}

	list, err := videoRepo.ListVideos(ctx, 0)
	if err != nil {
		t.Fatalf("Failed to list videos: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("Expected 5 videos, got %d", len(list))
	}
	// Most recently added first.
	for i, record := range list {
		want := fmt.Sprintf("vid%d", 4-i)
		if record.ID != want {
			t.Fatalf("Position %d: expected %s, got %s", i, want, record.ID)
		}
	}

	limited, err := videoRepo.ListVideos(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to list with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("Expected 2 videos, got %d", len(limited))
	}
	if limited[0].ID != "vid4" || limited[1].ID != "vid3" {
		t.Fatalf("Unexpected limited order: %s, %s", limited[0].ID, limited[1].ID)
	}
}

func TestVideoAddInvalid(t *testing.T) {
	videoRepo, settingsRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { settingsRepo.Close(); videoRepo.Close(); backend.Close() }()

	record := &core.VideoRecord{AddedAt: time.Now().UTC()}
	if _, err := videoRepo.AddVideoIfAbsent(context.Background(), record); err == nil {
		t.Fatal("Expected validation error for empty video")
	}
}
