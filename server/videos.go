package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// handleListVideos returns the library contents, newest first. An
// optional limit query parameter bounds the result; absent or zero
// returns everything.
func (s *Server) handleListVideos(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, errorJSON{Error: "invalid limit"})
		}
		limit = parsed
	}

	records, err := s.videos.ListVideos(c.Request().Context(), limit)
	if err != nil {
		s.logger.Error("failed to list videos", "err", err)
		return c.JSON(http.StatusInternalServerError, errorJSON{Error: "failed to list videos"})
	}
	return c.JSON(http.StatusOK, toVideoJSONList(records))
}
