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


package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/poiesic/vidsift/ai"
	"github.com/poiesic/vidsift/ai/openai"
	"github.com/poiesic/vidsift/discovery"
	"github.com/poiesic/vidsift/storage"
)

// Discoverer runs one discovery session, streaming progress to the given
// reporter. The root application type implements it.
type Discoverer interface {
	Discover(ctx context.Context, subject string, reporter discovery.Reporter) error
}

// Server exposes the HTTP and WebSocket API over an echo instance.
type Server struct {
	echo       *echo.Echo
	videos     storage.VideoRepository
	settings   storage.SettingsRepository
	discoverer Discoverer
	resolver   StreamResolver
	logger     *slog.Logger

	// verify checks classifier credentials with a minimal round trip.
	// Overridable so handler tests stay offline.
	verify func(ctx context.Context, config *ai.Config) error
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithStreamResolver sets the resolver backing the stream endpoint.
// Without one the endpoint answers 503.
func WithStreamResolver(resolver StreamResolver) Option {
	return func(s *Server) error {
		s.resolver = resolver
		return nil
	}
}

// New creates a Server over the given collaborators and registers the
// API routes.
func New(
	videos storage.VideoRepository,
	settings storage.SettingsRepository,
	discoverer Discoverer,
	opts ...Option,
) (*Server, error) {
	if videos == nil {
		return nil, ErrVideosRequired
	}
	if settings == nil {
		return nil, ErrSettingsRequired
	}
	if discoverer == nil {
		return nil, ErrDiscovererRequired
	}

	s := &Server{
		echo:       echo.New(),
		videos:     videos,
		settings:   settings,
		discoverer: discoverer,
		logger:     slog.Default(),
		verify:     openai.Verify,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("component", "server")

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())

	s.echo.GET("/api/config", s.handleGetConfig)
	s.echo.POST("/api/config", s.handleSetConfig)
	s.echo.GET("/api/videos", s.handleListVideos)
	s.echo.GET("/api/stream/:id", s.handleStream)
	s.echo.GET("/ws", s.handleDiscoverWS)

	return s, nil
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the given address and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.logger.Info("starting http server", "addr", addr)
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
