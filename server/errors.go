package server

import "errors"

var (
	// ErrVideosRequired is returned when no video repository is provided.
	ErrVideosRequired = errors.New("video repository is required")

	// ErrSettingsRequired is returned when no settings repository is provided.
	ErrSettingsRequired = errors.New("settings repository is required")

	// ErrDiscovererRequired is returned when no discoverer is provided.
	ErrDiscovererRequired = errors.New("discoverer is required")

	// ErrNoStream is returned when a playable stream cannot be resolved.
	ErrNoStream = errors.New("no playable stream found")
)
