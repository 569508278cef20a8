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

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/poiesic/vidsift/ai"
	"github.com/poiesic/vidsift/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	// classifyTimeout bounds one classifier call. Exceeding it is a call
	// failure, never a session failure.
	classifyTimeout = 30 * time.Second

	// verdictMaxTokens caps the model output; the verdict is a tiny JSON
	// object and anything longer is waste.
	verdictMaxTokens = 60
)

// Classifier implements ai.Classifier using OpenAI-compatible chat APIs.
type Classifier struct {
	client llms.Model
	logger *slog.Logger
}

// verdict is an internal type used for JSON unmarshaling.
// It matches the structure requested from the LLM.
type verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

// newClassifier is an internal constructor that returns the concrete type.
func newClassifier(config *ai.Config) (*Classifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	httpClient, err := newHTTPClient(config.ProxyURL)
	if err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.BaseURL),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.Model),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		client: client,
		logger: slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewClassifier creates a classifier backed by an OpenAI-compatible chat
// service. The config must carry credentials; use ai.NewBypass for the
// unconfigured state.
//
// Returns ai.Classifier interface to enforce abstraction.
func NewClassifier(config *ai.Config) (ai.Classifier, error) {
	return newClassifier(config)
}

// newHTTPClient builds the HTTP client used for classifier calls,
// optionally routed through an outbound proxy.
func newHTTPClient(proxyURL string) (*http.Client, error) {
	client := &http.Client{Timeout: classifyTimeout}
	if proxyURL == "" {
		return client, nil
	}

	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url %q: %w", proxyURL, err)
	}
	client.Transport = &http.Transport{Proxy: http.ProxyURL(parsed)}
	return client, nil
}

// Classify judges one candidate with a zero-temperature, JSON-mode
// completion. The call is made exactly once; a transport error, timeout,
// or unparsable response is returned to the caller, which fails open.
func (c *Classifier) Classify(ctx context.Context, video core.Video, subject string) (ai.Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	prompt := buildVerdictPrompt(video, subject)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := c.client.GenerateContent(ctx, content,
		llms.WithTemperature(0.0),
		llms.WithJSONMode(),
		llms.WithMaxTokens(verdictMaxTokens))
	if err != nil {
		c.logger.Warn("classifier call failed", "video", video.ID, "err", err)
		return ai.Verdict{}, err
	}

	if len(response.Choices) < 1 {
		return ai.Verdict{}, ErrEmptyResponse
	}

	// Strip markdown code fences if present
	responseText := strings.TrimSpace(response.Choices[0].Content)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = repairJSON(responseText)

	var v verdict
	if err := json.Unmarshal([]byte(responseText), &v); err != nil {
		c.logger.Warn("error parsing classifier response",
			"video", video.ID,
			"response", responseText,
			"err", err)
		return ai.Verdict{}, fmt.Errorf("%w: %w", ErrUnparsableResponse, err)
	}

	reason := strings.TrimSpace(v.Reason)
	if reason == "" {
		reason = "AI verified"
	}

	return ai.Verdict{Valid: v.Valid, Reason: reason}, nil
}

// Verify checks that the configured credentials actually work by issuing a
// minimal one-token completion. Used when saving new settings.
func Verify(ctx context.Context, config *ai.Config) error {
	c, err := newClassifier(config)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	_, err = llms.GenerateFromSinglePrompt(ctx, c.client, "Hi", llms.WithMaxTokens(1))
	return err
}
