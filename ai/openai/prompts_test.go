package openai

import (
	"strings"
	"testing"

	"github.com/poiesic/vidsift/core"
)

func TestBuildVerdictPrompt(t *testing.T) {
	video := core.Video{
		ID:       "abc123",
		Title:    "Ada Lovelace full interview",
		Channel:  "Computing History",
		Duration: 3725, // 62 minutes
	}

	prompt := buildVerdictPrompt(video, "Ada Lovelace")

	for _, want := range []string{
		`PRIMARY SOURCE videos of "Ada Lovelace"`,
		`"Ada Lovelace full interview" by "Computing History" (62 mins)`,
		`Output JSON ONLY`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
