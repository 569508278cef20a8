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


// Package discovery implements the narrowing funnel that turns one person
// name into a short list of verified primary-source videos.
//
// The funnel trades volume for precision at decreasing cost per stage:
//
//	query -> Expand -> bounded fetch (x5) -> Admit -> Deduplicator -> cap -> Classifier -> sink
//
// Expansion defeats the provider's per-query result cap by probing a
// matrix of content types and recent years. The fetch stage runs those
// probes through a fixed-size worker pool and swallows per-term failures.
// The heuristic filter kills the bulk of the volume locally before the
// classifier, the only expensive stage, sees the capped remainder one
// candidate at a time.
//
// Progress flows to the caller as typed Messages through a Reporter;
// transport adapters (websocket, CLI) live outside this package.
package discovery
