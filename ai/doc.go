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


// Package ai provides the classification abstraction used by the discovery
// funnel.
//
// The package defines the Classifier interface, which judges whether a
// candidate video is a primary source appearance of a subject, and the
// Config object describing how to reach an OpenAI-compatible chat service.
//
// # Implementation Packages
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Fail-open
//
// Classification is the most expensive and least reliable stage of the
// funnel, so its failure policy is deliberately fail-open: when the service
// is unreachable, the response is unparsable, or no credentials are
// configured at all, candidates are accepted with a bypass reason rather
// than discarded. NewBypass builds a Classifier embodying the
// no-credentials case.
package ai
