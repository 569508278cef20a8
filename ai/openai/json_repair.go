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


package openai

import "strings"

// repairJSON attempts to fix common formatting issues in LLM output before
// unmarshaling: prose around the object, and trailing commas before a
// closing brace or bracket.
func repairJSON(s string) string {
	// Cut any preamble or trailing chatter around the outermost object.
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		s = s[start : end+1]
	}

	// Drop trailing commas: `,}` and `,]`, with optional whitespace between.
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	inString := false
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if ch == '"' && (i == 0 || runes[i-1] != '\\') {
			inString = !inString
		}

		if ch == ',' && !inString {
			j := i + 1
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\n' || runes[j] == '\t' || runes[j] == '\r') {
				j++
			}
			if j < len(runes) && (runes[j] == '}' || runes[j] == ']') {
				continue // skip the comma, keep the whitespace and closer
			}
		}

		b.WriteRune(ch)
	}
	return b.String()
}
