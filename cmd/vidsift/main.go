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


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/vidsift"
	"github.com/poiesic/vidsift/discovery"
	"github.com/poiesic/vidsift/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "vidsift",
		Usage: "On-demand discovery of primary source videos",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP server",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to TOML config file",
						Value:   defaultConfigPath(),
					},
					&cli.StringFlag{
						Name:  "listen",
						Usage: "Listen address",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory",
					},
					&cli.StringFlag{
						Name:    "youtube-api-key",
						Usage:   "YouTube Data API key",
						EnvVars: []string{"YOUTUBE_API_KEY"},
					},
				},
			},
			{
				Name:      "discover",
				Usage:     "Run one discovery session and print progress to stderr",
				ArgsUsage: "<subject>",
				Action:    discoverCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to TOML config file",
						Value:   defaultConfigPath(),
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory",
					},
					&cli.StringFlag{
						Name:    "youtube-api-key",
						Usage:   "YouTube Data API key",
						EnvVars: []string{"YOUTUBE_API_KEY"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// resolveConfig loads the TOML file and applies flag overrides.
func resolveConfig(c *cli.Context) (fileConfig, error) {
	cfg, err := loadConfig(c.String("config"), c.IsSet("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("listen") {
		cfg.Listen = c.String("listen")
	}
	if c.IsSet("db") {
		cfg.DB = c.String("db")
	}
	if c.IsSet("youtube-api-key") {
		cfg.YouTubeAPIKey = c.String("youtube-api-key")
	}
	return cfg, nil
}

func serveCommand(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}
	if cfg.YouTubeAPIKey == "" {
		return fmt.Errorf("a YouTube API key is required (flag, config file or YOUTUBE_API_KEY)")
	}

	app, err := vidsift.NewApp(cfg.DB, vidsift.WithYouTubeAPIKey(cfg.YouTubeAPIKey))
	if err != nil {
		return fmt.Errorf("failed to open application: %w", err)
	}
	defer app.Close()

	srv, err := server.New(
		app.VideoRepository(),
		app.SettingsRepository(),
		app,
		server.WithStreamResolver(server.NewYtDlpResolver()),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Listen)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}

func discoverCommand(c *cli.Context) error {
	subject := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if subject == "" {
		return fmt.Errorf("a subject is required")
	}

	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}
	if cfg.YouTubeAPIKey == "" {
		return fmt.Errorf("a YouTube API key is required (flag, config file or YOUTUBE_API_KEY)")
	}

	app, err := vidsift.NewApp(cfg.DB, vidsift.WithYouTubeAPIKey(cfg.YouTubeAPIKey))
	if err != nil {
		return fmt.Errorf("failed to open application: %w", err)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reporter := discovery.NewWriterReporter(os.Stderr)
	if err := app.Discover(ctx, subject, reporter); err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
