package core

import (
	"errors"
	"testing"
)

func TestValidateVideo(t *testing.T) {
	tests := []struct {
		name    string
		video   *Video
		wantErr error
	}{
		{
			name: "valid video",
			video: &Video{
				ID:       "dQw4w9WgXcQ",
				Title:    "Ada Lovelace full interview",
				Channel:  "Computing History",
				Duration: 3600,
			},
			wantErr: nil,
		},
		{
			name: "valid video without channel",
			video: &Video{
				ID:       "abc123",
				Title:    "Keynote",
				Duration: 600,
			},
			wantErr: nil,
		},
		{
			name: "valid video with zero duration",
			video: &Video{
				ID:    "abc123",
				Title: "Lecture",
			},
			wantErr: nil,
		},
		{
			name:    "nil video",
			video:   nil,
			wantErr: ErrInvalidVideo,
		},
		{
			name: "empty id",
			video: &Video{
				Title:    "Lecture",
				Duration: 600,
			},
			wantErr: ErrEmptyID,
		},
		{
			name: "empty title",
			video: &Video{
				ID:       "abc123",
				Duration: 600,
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "negative duration",
			video: &Video{
				ID:       "abc123",
				Title:    "Lecture",
				Duration: -1,
			},
			wantErr: ErrNegativeDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVideo(tt.video)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateSubject(t *testing.T) {
	if err := ValidateSubject("Ada Lovelace"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := ValidateSubject(""); !errors.Is(err, ErrEmptySubject) {
		t.Fatalf("expected ErrEmptySubject, got %v", err)
	}
	if err := ValidateSubject("   \t"); !errors.Is(err, ErrEmptySubject) {
		t.Fatalf("expected ErrEmptySubject, got %v", err)
	}
}

func TestIDFromContent(t *testing.T) {
	a := IDFromContent("some title|some channel")
	b := IDFromContent("some title|some channel")
	c := IDFromContent("other title|some channel")

	if a != b {
		t.Fatalf("identical content produced different ids: %s vs %s", a, b)
	}
	if a == c {
		t.Fatal("different content produced the same id")
	}
	if len(a) != 16 {
		t.Fatalf("expected 16 hex chars, got %d", len(a))
	}
}
