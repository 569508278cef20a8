package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poiesic/vidsift/ai"
)

// configJSON is the wire shape of the classifier configuration. The key
// is always masked on the way out.
type configJSON struct {
	Provider   string `json:"provider"`
	APIKey     string `json:"api_key"`
	Model      string `json:"model"`
	BaseURL    string `json:"base_url"`
	Proxy      string `json:"proxy"`
	Configured bool   `json:"configured"`
}

// handleGetConfig returns the stored classifier configuration with the
// API key reduced to a display form.
func (s *Server) handleGetConfig(c echo.Context) error {
	values, err := s.settings.All(c.Request().Context())
	if err != nil {
		s.logger.Error("failed to load settings", "err", err)
		return c.JSON(http.StatusInternalServerError, errorJSON{Error: "failed to load settings"})
	}
	cfg := ai.FromSettings(values)

	return c.JSON(http.StatusOK, configJSON{
		Provider:   cfg.Provider,
		APIKey:     cfg.MaskedKey(),
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		Proxy:      cfg.ProxyURL,
		Configured: cfg.Configured(),
	})
}

// handleSetConfig validates and persists a new classifier configuration.
// When credentials are present they are checked with a minimal completion
// round trip before anything is written; a config without credentials is
// stored as-is and discovery degrades to heuristic-only filtering.
func (s *Server) handleSetConfig(c echo.Context) error {
	var req configJSON
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON{Error: "invalid request body"})
	}

	cfg := ai.NewConfig(
		ai.WithProvider(req.Provider),
		ai.WithAPIKey(req.APIKey),
		ai.WithModel(req.Model),
		ai.WithBaseURL(req.BaseURL),
		ai.WithProxy(req.Proxy),
	)
	if err := cfg.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON{Error: err.Error()})
	}

	ctx := c.Request().Context()
	if cfg.Configured() {
		if err := s.verify(ctx, cfg); err != nil {
			s.logger.Warn("credential check failed", "provider", cfg.Provider, "err", err)
			return c.JSON(http.StatusBadRequest, errorJSON{Error: "credential check failed: " + err.Error()})
		}
	}

	for key, value := range cfg.Settings() {
		if err := s.settings.Set(ctx, key, value); err != nil {
			s.logger.Error("failed to persist setting", "key", key, "err", err)
			return c.JSON(http.StatusInternalServerError, errorJSON{Error: "failed to persist settings"})
		}
	}

	s.logger.Info("classifier configuration updated",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"configured", cfg.Configured())
	return c.JSON(http.StatusOK, configJSON{
		Provider:   cfg.Provider,
		APIKey:     cfg.MaskedKey(),
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		Proxy:      cfg.ProxyURL,
		Configured: cfg.Configured(),
	})
}
