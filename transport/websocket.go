package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocket is a connector reading message envelopes from a websocket
// agent link. Each text message is one JSON envelope. It also carries the
// return path: outbound user-action envelopes are written to the same
// connection.
type WebSocket struct {
	conn *websocket.Conn

	writeMu sync.Mutex
}

// DialWebSocket connects to a websocket agent endpoint.
func DialWebSocket(ctx context.Context, url string) (*WebSocket, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: websocket dial %s: %w", url, err)
	}
	return &WebSocket{conn: conn}, nil
}

// Recv returns the next decoded envelope. Binary frames and frames that
// are not JSON objects are skipped. A normal close surfaces as io.EOF.
func (w *WebSocket) Recv(_ context.Context) (map[string]any, error) {
	for {
		messageType, data, err := w.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil, io.EOF
			}
			return nil, err
		}
		if messageType != websocket.TextMessage {
			continue
		}
		var payload map[string]any
		if err := json.Unmarshal(data, &payload); err != nil {
			continue
		}
		return payload, nil
	}
}

// Send writes an outbound envelope (a user-action payload) to the agent.
func (w *WebSocket) Send(payload []byte) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	return w.conn.WriteMessage(websocket.TextMessage, payload)
}

// Close closes the connection, attempting a clean close handshake first.
func (w *WebSocket) Close() error {
	w.writeMu.Lock()
	_ = w.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	w.writeMu.Unlock()
	return w.conn.Close()
}
