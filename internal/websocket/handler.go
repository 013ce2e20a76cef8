package websocket

import (
	"log/slog"
	"net/http"

	ws "github.com/coder/websocket"
)

// HandleWebSocket returns an HTTP handler that upgrades connections to WebSocket
// and runs them as Hub clients. originPatterns lists extra hosts allowed to
// connect besides the serving host.
func HandleWebSocket(hub *Hub, originPatterns []string, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Accept(w, r, &ws.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			logger.Warn("websocket accept", "error", err, "remote", r.RemoteAddr)
			return
		}

		client := NewClient(hub, conn)
		client.Run(r.Context())
	}
}
