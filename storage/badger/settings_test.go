package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/vidsift/storage"
)

func TestSettingsBasics(t *testing.T) {
	videoRepo, settingsRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { settingsRepo.Close(); videoRepo.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := settingsRepo.Get(ctx, "api_key"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for unset key, got %v", err)
	}

	if err := settingsRepo.Set(ctx, "api_key", "sk-test"); err != nil {
		t.Fatalf("Failed to set: %v", err)
	}
	if err := settingsRepo.Set(ctx, "model", "gpt-4o"); err != nil {
		t.Fatalf("Failed to set: %v", err)
	}

	value, err := settingsRepo.Get(ctx, "api_key")
	if err != nil {
		t.Fatalf("Failed to get: %v", err)
	}
	if value != "sk-test" {
		t.Fatalf("Expected 'sk-test', got %q", value)
	}

	// Overwrite
	if err := settingsRepo.Set(ctx, "api_key", "sk-new"); err != nil {
		t.Fatalf("Failed to overwrite: %v", err)
	}
	value, err = settingsRepo.Get(ctx, "api_key")
	if err != nil {
		t.Fatalf("Failed to get after overwrite: %v", err)
	}
	if value != "sk-new" {
		t.Fatalf("Expected 'sk-new', got %q", value)
	}

	all, err := settingsRepo.All(ctx)
	if err != nil {
		t.Fatalf("Failed to get all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 settings, got %d", len(all))
	}
	if all["model"] != "gpt-4o" {
		t.Fatalf("Expected model setting, got %q", all["model"])
	}
}
