package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/poiesic/vidsift/discovery"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The UI is served from the same process; origin checks add nothing
	// for a local single-user tool.
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsRequest is the first client frame on a discovery socket.
type wsRequest struct {
	Query string `json:"query"`
}

// wsEvent is one progress frame sent to the client.
type wsEvent struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
	Data   any    `json:"data,omitempty"`
}

// handleDiscoverWS runs one discovery session per connection: the client
// sends {"query": ...}, the server streams log frames and finishes with
// exactly one done or error frame. Closing the socket cancels the
// session; already persisted videos remain.
func (s *Server) handleDiscoverWS(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	var req wsRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.logger.Debug("ws handshake read failed", "err", err)
		return nil
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	// Drain the socket so a peer close cancels the session promptly.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	reporter := discovery.ReporterFunc(func(msg discovery.Message) {
		event := wsEvent{Status: msg.Kind.String(), Msg: msg.Text}
		if msg.Kind == discovery.KindDone {
			event.Data = toVideoJSONList(msg.Videos)
		}
		if err := conn.WriteJSON(event); err != nil {
			s.logger.Debug("ws write failed", "err", err)
		}
	})

	if err := s.discoverer.Discover(ctx, req.Query, reporter); err != nil {
		s.logger.Debug("discovery session ended with error", "err", err)
	}
	return nil
}
