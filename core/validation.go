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


package core

import (
	"fmt"
	"strings"
)

// ValidateVideo validates a Video according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Title must not be empty
//   - Duration must not be negative
//
// NOT validated:
//   - Channel (providers may omit uploader information)
//   - Thumbnail (backfilled by the result sink when absent)
func ValidateVideo(video *Video) error {
	if video == nil {
		return fmt.Errorf("%w: video is nil", ErrInvalidVideo)
	}

	if video.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidVideo, ErrEmptyID)
	}

	if video.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidVideo, ErrEmptyTitle)
	}

	if video.Duration < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidVideo, ErrNegativeDuration)
	}

	return nil
}

// ValidateSubject validates a discovery subject string.
// A subject must contain at least one non-whitespace character.
func ValidateSubject(subject string) error {
	if strings.TrimSpace(subject) == "" {
		return ErrEmptySubject
	}
	return nil
}
