package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// StreamResolver maps a video id to a directly playable media URL.
type StreamResolver interface {
	Resolve(ctx context.Context, videoID string) (string, error)
}

// YtDlpResolver resolves stream URLs by shelling out to yt-dlp. The
// binary must be on PATH.
type YtDlpResolver struct{}

// NewYtDlpResolver creates a resolver backed by the yt-dlp binary.
func NewYtDlpResolver() *YtDlpResolver {
	return &YtDlpResolver{}
}

const resolveTimeout = 30 * time.Second

// Resolve asks yt-dlp for the best progressive mp4 URL of the video.
func (r *YtDlpResolver) Resolve(ctx context.Context, videoID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "yt-dlp",
		"-g",
		"-f", "best[ext=mp4]",
		"https://www.youtube.com/watch?v="+videoID)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("yt-dlp failed for %s: %w", videoID, err)
	}

	url := strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
	if url == "" {
		return "", ErrNoStream
	}
	return url, nil
}

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// streamClient fetches upstream media. No client timeout: media bodies
// stream for as long as the viewer watches; cancellation rides the
// request context instead.
var streamClient = &http.Client{}

// passthroughHeaders are the upstream response headers forwarded to the
// player untouched.
var passthroughHeaders = []string{
	"Content-Type",
	"Content-Length",
	"Content-Range",
	"Accept-Ranges",
}

// handleStream resolves the video's media URL and proxies it, forwarding
// the Range request header upstream and the range response headers back,
// so seeking works in the browser player.
func (s *Server) handleStream(c echo.Context) error {
	if s.resolver == nil {
		return c.JSON(http.StatusServiceUnavailable, errorJSON{Error: "stream resolution is not available"})
	}

	videoID := c.Param("id")
	if !videoIDPattern.MatchString(videoID) {
		return c.JSON(http.StatusBadRequest, errorJSON{Error: "invalid video id"})
	}

	ctx := c.Request().Context()
	mediaURL, err := s.resolver.Resolve(ctx, videoID)
	if err != nil {
		s.logger.Warn("stream resolution failed", "video", videoID, "err", err)
		return c.JSON(http.StatusNotFound, errorJSON{Error: "no playable stream found"})
	}

	upstreamReq, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorJSON{Error: "failed to build upstream request"})
	}
	if rangeHeader := c.Request().Header.Get("Range"); rangeHeader != "" {
		upstreamReq.Header.Set("Range", rangeHeader)
	}

	upstream, err := streamClient.Do(upstreamReq)
	if err != nil {
		s.logger.Warn("upstream media fetch failed", "video", videoID, "err", err)
		return c.JSON(http.StatusBadGateway, errorJSON{Error: "upstream media fetch failed"})
	}
	defer upstream.Body.Close()

	header := c.Response().Header()
	for _, name := range passthroughHeaders {
		if value := upstream.Header.Get(name); value != "" {
			header.Set(name, value)
		}
	}
	c.Response().WriteHeader(upstream.StatusCode)
	_, err = io.Copy(c.Response(), upstream.Body)
	return err
}
