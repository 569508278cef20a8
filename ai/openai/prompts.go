package openai

import (
	"fmt"

	"github.com/poiesic/vidsift/core"
)

const verdictPromptTemplate = `Role: Senior Content Editor.
Goal: Identify PRIMARY SOURCE videos of "%s".

Criteria for VALID:
- Full Interviews, Keynote Speeches, Lectures, Fireside Chats, Documentaries.
- The person is speaking directly for the majority of the time.

Criteria for INVALID:
- 3rd party commentary/analysis (e.g. "Why he is wrong").
- News reports ABOUT the person.
- Reaction videos.
- Clickbait/Gossip.

Video: "%s" by "%s" (%d mins).

Output JSON ONLY: {"valid": true/false, "reason": "max 5 words"}`

// buildVerdictPrompt renders the classification prompt for one candidate.
func buildVerdictPrompt(video core.Video, subject string) string {
	return fmt.Sprintf(verdictPromptTemplate,
		subject, video.Title, video.Channel, video.Duration/60)
}
