package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the TOML daemon configuration. Every field has a flag
// override; flags win over the file.
type fileConfig struct {
	Listen        string `toml:"listen"`
	DB            string `toml:"db"`
	YouTubeAPIKey string `toml:"youtube_api_key"`
}

func defaultConfig() fileConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return fileConfig{
		Listen: "127.0.0.1:8080",
		DB:     filepath.Join(home, ".vidsift", "db"),
	}
}

// loadConfig reads the TOML file at path over the defaults. A missing
// file is not an error unless the path was given explicitly.
func loadConfig(path string, explicit bool) (fileConfig, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vidsift.toml"
	}
	return filepath.Join(home, ".vidsift", "config.toml")
}
