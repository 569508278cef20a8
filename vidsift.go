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


package vidsift

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/vidsift/ai"
	"github.com/poiesic/vidsift/ai/openai"
	"github.com/poiesic/vidsift/discovery"
	"github.com/poiesic/vidsift/provider"
	"github.com/poiesic/vidsift/provider/youtube"
	"github.com/poiesic/vidsift/storage"
	"github.com/poiesic/vidsift/storage/badger"
)

// App wires the storage backend, the search provider and per-session
// classifier resolution into one handle the CLI and server build on.
type App struct {
	backend      *badger.Backend
	videoRepo    storage.VideoRepository
	settingsRepo storage.SettingsRepository
	searcher     provider.Searcher
	classifiers  ClassifierFactory
	logger       *slog.Logger
}

// ClassifierFactory builds a classifier from a resolved configuration.
type ClassifierFactory func(config *ai.Config) (ai.Classifier, error)

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	inMemory      bool
	searcher      provider.Searcher
	youtubeAPIKey string
	classifiers   ClassifierFactory
	logger        *slog.Logger
}

// WithInMemory opens the store in memory, for tests and throwaway runs.
func WithInMemory() AppOption {
	return func(o *appOptions) {
		o.inMemory = true
	}
}

// WithSearcher injects a search provider, replacing the YouTube default.
func WithSearcher(searcher provider.Searcher) AppOption {
	return func(o *appOptions) {
		o.searcher = searcher
	}
}

// WithYouTubeAPIKey sets the API key for the default YouTube provider.
func WithYouTubeAPIKey(key string) AppOption {
	return func(o *appOptions) {
		o.youtubeAPIKey = key
	}
}

// WithClassifierFactory overrides how classifiers are built from the
// stored configuration. Used in tests.
func WithClassifierFactory(factory ClassifierFactory) AppOption {
	return func(o *appOptions) {
		o.classifiers = factory
	}
}

// WithAppLogger sets a custom logger.
// Default is slog.Default().
func WithAppLogger(logger *slog.Logger) AppOption {
	return func(o *appOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ErrNoSearcher is returned when neither a searcher nor a YouTube API
// key is configured.
var ErrNoSearcher = errors.New("a searcher or a YouTube API key is required")

// NewApp opens the store at filePath and wires the application.
func NewApp(filePath string, opts ...AppOption) (*App, error) {
	options := &appOptions{
		classifiers: openai.NewClassifier,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	videoRepo := badger.NewVideoRepository(backend)
	settingsRepo := badger.NewSettingsRepository(backend)

	searcher := options.searcher
	if searcher == nil {
		if options.youtubeAPIKey == "" {
			backend.Close()
			return nil, ErrNoSearcher
		}
		searcher, err = youtube.New(context.Background(), options.youtubeAPIKey,
			youtube.WithLogger(options.logger))
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	return &App{
		backend:      backend,
		videoRepo:    videoRepo,
		settingsRepo: settingsRepo,
		searcher:     searcher,
		classifiers:  options.classifiers,
		logger:       options.logger,
	}, nil
}

// Close releases all application resources.
func (a *App) Close() error {
	if err := a.videoRepo.Close(); err != nil {
		a.logger.Error("error closing video repository", "err", err)
		return err
	}
	if err := a.settingsRepo.Close(); err != nil {
		a.logger.Error("error closing settings repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// VideoRepository returns the video library store.
func (a *App) VideoRepository() storage.VideoRepository {
	return a.videoRepo
}

// SettingsRepository returns the settings store.
func (a *App) SettingsRepository() storage.SettingsRepository {
	return a.settingsRepo
}

// Discover runs one discovery session for the subject, streaming
// progress to the reporter. The classifier is resolved from the stored
// configuration at session start: missing credentials degrade to a
// bypass classifier rather than failing the session.
func (a *App) Discover(ctx context.Context, subject string, reporter discovery.Reporter) error {
	classifier := a.resolveClassifier(ctx)

	session, err := discovery.NewSession(a.searcher, classifier, a.videoRepo, reporter,
		discovery.WithLogger(a.logger))
	if err != nil {
		return err
	}
	return session.Run(ctx, subject)
}

func (a *App) resolveClassifier(ctx context.Context) ai.Classifier {
	values, err := a.settingsRepo.All(ctx)
	if err != nil {
		a.logger.Error("failed to load classifier settings", "err", err)
		return ai.NewBypass(ai.ReasonBypassed)
	}

	cfg := ai.FromSettings(values)
	if !cfg.Configured() {
		a.logger.Info("no classifier credentials configured, bypassing classification")
		return ai.NewBypass(ai.ReasonSkipped)
	}
	if err := cfg.Validate(); err != nil {
		a.logger.Warn("invalid classifier configuration, bypassing classification", "err", err)
		return ai.NewBypass(ai.ReasonBypassed)
	}

	classifier, err := a.classifiers(cfg)
	if err != nil {
		a.logger.Warn("failed to build classifier, bypassing classification", "err", err)
		return ai.NewBypass(ai.ReasonBypassed)
	}
	return classifier
}
