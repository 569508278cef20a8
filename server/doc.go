// Package server exposes the discovery funnel and video library over
// HTTP: a JSON API for configuration and library listing, a streaming
// proxy for playback, and a WebSocket endpoint that runs one discovery
// session per connection.
package server
