package ws

import (
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/Dave-Meloncelli/reliquary-desktop/internal/domain/wm"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/infrastructure/logging"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/infrastructure/monitoring"
)

// Hub fans workspace state out to every connected client. Each mutation of
// the window registry produces one "workspace" event carrying the full
// z-ordered snapshot; clients re-render from the snapshot instead of
// patching, which keeps them correct even if an event is dropped.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	windows *wm.Manager
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewHub creates a hub broadcasting state of the given window manager.
func NewHub(windows *wm.Manager, logger *logging.Logger, metrics *monitoring.Metrics) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		windows: windows,
		logger:  logger,
		metrics: metrics,
	}
}

// WorkspaceChanged broadcasts the current workspace snapshot to all
// connected clients. Implements the http.Notifier contract.
func (h *Hub) WorkspaceChanged() {
	payload, err := sonic.Marshal(map[string]interface{}{
		"type":      "workspace",
		"windows":   h.windows.List(),
		"stats":     h.windows.Stats(),
		"timestamp": time.Now().Unix(),
	})
	if err != nil {
		h.logger.Error("failed to encode workspace event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
			if h.metrics != nil {
				h.metrics.RecordWSMessage("workspace", "out")
			}
		default:
			// Slow consumer; drop the event rather than block the
			// workspace. The next event carries the full state anyway.
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.WSConnect()
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.WSDisconnect()
	}
}
