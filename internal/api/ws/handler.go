package ws

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Dave-Meloncelli/reliquary-desktop/internal/domain/registry"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/domain/wm"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/infrastructure/logging"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/shared/types"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is enforced by the HTTP middleware layer
	},
}

// client is one connected websocket peer.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Handler manages WebSocket connections
type Handler struct {
	hub     *Hub
	windows *wm.Manager
	apps    *registry.Manager
	logger  *logging.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, windows *wm.Manager, apps *registry.Manager, logger *logging.Logger) *Handler {
	return &Handler{
		hub:     hub,
		windows: windows,
		apps:    apps,
		logger:  logger,
	}
}

// HandleConnection upgrades the request and serves the client until it
// disconnects. Clients drive the same window operations as the REST
// surface and receive a full workspace snapshot after every mutation.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	h.hub.register(cl)
	h.logger.Info("websocket client connected", zap.String("client_id", cl.id))

	go h.writePump(cl)

	// Greet with the current workspace so the client can paint immediately.
	h.sendJSON(cl, map[string]interface{}{
		"type":    "workspace",
		"windows": h.windows.List(),
		"stats":   h.windows.Stats(),
	})

	h.readPump(cl)
}

func (h *Handler) readPump(cl *client) {
	defer func() {
		h.hub.unregister(cl)
		cl.conn.Close()
		h.logger.Info("websocket client disconnected", zap.String("client_id", cl.id))
	}()

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg types.WSMessage
		if err := sonic.Unmarshal(data, &msg); err != nil {
			h.sendError(cl, "malformed message")
			continue
		}
		h.dispatch(cl, msg)
	}
}

func (h *Handler) writePump(cl *client) {
	for payload := range cl.send {
		cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
	// Hub closed the channel; say goodbye.
	cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *Handler) dispatch(cl *client, msg types.WSMessage) {
	switch msg.Type {
	case "open":
		desc, ok := h.apps.Get(msg.AppID)
		if !ok {
			h.sendError(cl, "unknown app_id: "+msg.AppID)
			return
		}
		rec := h.windows.Open(*desc)
		h.sendJSON(cl, map[string]interface{}{"type": "window_opened", "window": rec})
		h.hub.WorkspaceChanged()

	case "close":
		if h.windows.Close(msg.WindowID) {
			h.hub.WorkspaceChanged()
		}

	case "focus":
		if h.windows.Focus(msg.WindowID) {
			h.hub.WorkspaceChanged()
		}

	case "minimize":
		if h.windows.Minimize(msg.WindowID) {
			h.hub.WorkspaceChanged()
		}

	case "maximize":
		if h.windows.Maximize(msg.WindowID) {
			h.hub.WorkspaceChanged()
		}

	case "move":
		if h.windows.Move(msg.WindowID, msg.X, msg.Y) {
			h.hub.WorkspaceChanged()
		}

	case "resize":
		if h.windows.Resize(msg.WindowID, msg.Width, msg.Height) {
			h.hub.WorkspaceChanged()
		}

	case "ping":
		h.sendJSON(cl, map[string]interface{}{"type": "pong"})

	default:
		h.sendError(cl, "unknown message type: "+msg.Type)
	}
}

func (h *Handler) sendJSON(cl *client, data map[string]interface{}) {
	payload, err := sonic.Marshal(data)
	if err != nil {
		h.logger.Error("failed to encode ws payload", zap.Error(err))
		return
	}
	select {
	case cl.send <- payload:
	default:
	}
}

func (h *Handler) sendError(cl *client, msg string) {
	h.sendJSON(cl, map[string]interface{}{
		"type":      "error",
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
}
