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


package ai

import (
	"errors"
	"net/url"
	"strings"
)

// Config holds configuration for the classification service.
// A Config is resolved once at session start and threaded through the
// pipeline; an empty APIKey is a valid state and means classification is
// bypassed (fail-open) rather than an error.
type Config struct {
	// Provider names the OpenAI-compatible service: "openai", "deepseek",
	// "nvidia" or "siliconflow". It selects the default BaseURL when none
	// is given explicitly.
	Provider string

	// APIKey authenticates against the classification service.
	// Empty means no credentials are configured.
	APIKey string

	// Model is the chat model identifier.
	// Example: "gpt-4o", "deepseek-chat"
	Model string

	// BaseURL is the service endpoint. Empty selects the provider default.
	BaseURL string

	// ProxyURL is an optional outbound HTTP proxy for classifier calls.
	ProxyURL string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithProvider sets the service provider name.
func WithProvider(provider string) ConfigOption {
	return func(c *Config) {
		c.Provider = provider
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithModel sets the chat model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithBaseURL sets an explicit service endpoint.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithProxy sets an outbound HTTP proxy URL.
func WithProxy(proxyURL string) ConfigOption {
	return func(c *Config) {
		c.ProxyURL = proxyURL
	}
}

// Default endpoints for the known providers.
var providerBaseURLs = map[string]string{
	"openai":      "https://api.openai.com/v1",
	"deepseek":    "https://api.deepseek.com",
	"nvidia":      "https://integrate.api.nvidia.com/v1",
	"siliconflow": "https://api.siliconflow.cn/v1",
}

// DefaultConfig returns a Config with sensible defaults and no credentials.
func DefaultConfig() *Config {
	return &Config{
		Provider: "openai",
		Model:    "gpt-4o",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. This is the recommended way to create a Config with
// custom settings.
//
// Example:
//
//	cfg := NewConfig(
//	    WithProvider("deepseek"),
//	    WithAPIKey(key),
//	    WithModel("deepseek-chat"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It fills BaseURL from the provider defaults when unset and trims
// whitespace from every field.
func (c *Config) Normalize() {
	c.Provider = strings.TrimSpace(strings.ToLower(c.Provider))
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.Model = strings.TrimSpace(c.Model)
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.ProxyURL = strings.TrimSpace(c.ProxyURL)

	if c.BaseURL == "" {
		if base, ok := providerBaseURLs[c.Provider]; ok {
			c.BaseURL = base
		}
	}
}

// Validate checks that the configuration is valid and complete enough to
// build a classifier. It automatically normalizes the configuration before
// validation. A missing APIKey is NOT a validation error; callers decide
// whether to bypass classification instead.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.BaseURL == "" {
		return errors.New("ai config: BaseURL is required for unknown provider " + c.Provider)
	}
	if c.ProxyURL != "" {
		if _, err := url.Parse(c.ProxyURL); err != nil {
			return errors.New("ai config: invalid ProxyURL")
		}
	}
	return nil
}

// Configured reports whether classification credentials are present.
func (c *Config) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// MaskedKey returns the API key reduced to its first three and last four
// characters, suitable for display. Short keys mask to the empty string.
func (c *Config) MaskedKey() string {
	if len(c.APIKey) <= 8 {
		return ""
	}
	return c.APIKey[:3] + "..." + c.APIKey[len(c.APIKey)-4:]
}
