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


package youtube

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// searchTimeout bounds one Search call, including the batched duration
	// lookup that follows the listing.
	searchTimeout = 15 * time.Second

	// Conservative defaults, well below YouTube's actual quota, to avoid
	// burning the daily budget on one discovery session.
	defaultRequestsPerSecond = 4.0
	defaultBurstSize         = 5
)

// Client implements provider.Searcher against the YouTube Data API v3.
type Client struct {
	svc     *youtube.Service
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithRateLimit overrides the default request throttle.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger.With("component", "youtube")
	}
}

// New creates a YouTube search client authenticated with an API key.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("youtube: api key is required")
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	c := &Client{
		svc:     svc,
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultBurstSize),
		logger:  slog.Default().With("component", "youtube"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}
