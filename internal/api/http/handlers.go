package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dave-Meloncelli/reliquary-desktop/internal/domain/registry"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/domain/session"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/domain/wm"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/shared/types"
)

// Notifier is told after every successful mutation so connected clients can
// be sent the new workspace state.
type Notifier interface {
	WorkspaceChanged()
}

// Handlers contains all HTTP handlers
type Handlers struct {
	windows   *wm.Manager
	apps      *registry.Manager
	snapshots *session.Manager
	notifier  Notifier
}

// NewHandlers creates a new handler set
func NewHandlers(windows *wm.Manager, apps *registry.Manager, snapshots *session.Manager, notifier Notifier) *Handlers {
	return &Handlers{
		windows:   windows,
		apps:      apps,
		snapshots: snapshots,
		notifier:  notifier,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Reliquary Desktop (Go)",
		"version": "0.3.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"workspace": h.windows.Stats(),
		"registry":  h.apps.Stats(),
		"snapshots": h.snapshots.Stats(),
	})
}

// ListWindows returns every window record in ascending z-order (render
// order) together with workspace statistics.
func (h *Handlers) ListWindows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"windows": h.windows.List(),
		"stats":   h.windows.Stats(),
	})
}

// GetWindow returns one window record.
func (h *Handlers) GetWindow(c *gin.Context) {
	rec, ok := h.windows.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// OpenWindow instantiates a registered application as a new window.
func (h *Handlers) OpenWindow(c *gin.Context) {
	var req types.OpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	desc, ok := h.apps.Get(req.AppID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown app_id: " + req.AppID})
		return
	}

	rec := h.windows.Open(*desc)
	h.changed()
	c.JSON(http.StatusCreated, rec)
}

// CloseWindow removes a window. A stale id reports success:false rather
// than an error; the operation is total.
func (h *Handlers) CloseWindow(c *gin.Context) {
	windowID := c.Param("id")
	found := h.windows.Close(windowID)
	if found {
		h.changed()
	}
	c.JSON(http.StatusOK, gin.H{"success": found, "window_id": windowID})
}

// FocusWindow raises a window to the top of the stacking order.
func (h *Handlers) FocusWindow(c *gin.Context) {
	windowID := c.Param("id")
	found := h.windows.Focus(windowID)
	if found {
		h.changed()
	}
	c.JSON(http.StatusOK, gin.H{"success": found, "window_id": windowID})
}

// MinimizeWindow toggles a window's minimized state.
func (h *Handlers) MinimizeWindow(c *gin.Context) {
	windowID := c.Param("id")
	found := h.windows.Minimize(windowID)
	if found {
		h.changed()
	}
	c.JSON(http.StatusOK, gin.H{"success": found, "window_id": windowID})
}

// MaximizeWindow toggles a window between maximized and restored.
func (h *Handlers) MaximizeWindow(c *gin.Context) {
	windowID := c.Param("id")
	found := h.windows.Maximize(windowID)
	if found {
		h.changed()
	}
	c.JSON(http.StatusOK, gin.H{"success": found, "window_id": windowID})
}

// MoveWindow updates a window's position (drag gestures; high frequency).
func (h *Handlers) MoveWindow(c *gin.Context) {
	var req types.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	windowID := c.Param("id")
	found := h.windows.Move(windowID, req.X, req.Y)
	if found {
		h.changed()
	}
	c.JSON(http.StatusOK, gin.H{"success": found, "window_id": windowID})
}

// ResizeWindow updates a window's dimensions.
func (h *Handlers) ResizeWindow(c *gin.Context) {
	var req types.ResizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	windowID := c.Param("id")
	found := h.windows.Resize(windowID, req.Width, req.Height)
	if found {
		h.changed()
	}
	c.JSON(http.StatusOK, gin.H{"success": found, "window_id": windowID})
}

// SetWindowTitle updates a window's display title.
func (h *Handlers) SetWindowTitle(c *gin.Context) {
	var req types.TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	windowID := c.Param("id")
	found := h.windows.SetTitle(windowID, req.Title)
	if found {
		h.changed()
	}
	c.JSON(http.StatusOK, gin.H{"success": found, "window_id": windowID})
}

// ListRegistryApps lists registered application descriptors.
func (h *Handlers) ListRegistryApps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"apps":  h.apps.List(),
		"stats": h.apps.Stats(),
	})
}

// GetRegistryApp returns one descriptor.
func (h *Handlers) GetRegistryApp(c *gin.Context) {
	desc, ok := h.apps.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "app not found"})
		return
	}
	c.JSON(http.StatusOK, desc)
}

// RegisterApp adds a descriptor at runtime.
func (h *Handlers) RegisterApp(c *gin.Context) {
	var desc types.Descriptor
	if err := c.ShouldBindJSON(&desc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.apps.Register(desc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"app_id": desc.AppID})
}

// UnregisterApp removes a descriptor. Open windows keep running; a
// descriptor is only a template.
func (h *Handlers) UnregisterApp(c *gin.Context) {
	appID := c.Param("id")
	found := h.apps.Unregister(appID)
	c.JSON(http.StatusOK, gin.H{"success": found, "app_id": appID})
}

// LaunchRegistryApp opens a window for a descriptor by path parameter.
func (h *Handlers) LaunchRegistryApp(c *gin.Context) {
	desc, ok := h.apps.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "app not found"})
		return
	}

	rec := h.windows.Open(*desc)
	h.changed()
	c.JSON(http.StatusCreated, rec)
}

// SaveSnapshot captures the current workspace layout under a name.
func (h *Handlers) SaveSnapshot(c *gin.Context) {
	var req types.SaveSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.snapshots.Save(req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// ListSnapshots lists saved workspace layouts.
func (h *Handlers) ListSnapshots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"snapshots": h.snapshots.List(),
		"stats":     h.snapshots.Stats(),
	})
}

// GetSnapshot returns one saved workspace layout.
func (h *Handlers) GetSnapshot(c *gin.Context) {
	snap, ok := h.snapshots.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// RestoreSnapshot replaces the workspace with a saved layout.
func (h *Handlers) RestoreSnapshot(c *gin.Context) {
	if err := h.snapshots.Restore(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.changed()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteSnapshot removes a saved layout.
func (h *Handlers) DeleteSnapshot(c *gin.Context) {
	snapshotID := c.Param("id")
	found := h.snapshots.Delete(snapshotID)
	c.JSON(http.StatusOK, gin.H{"success": found, "snapshot_id": snapshotID})
}

func (h *Handlers) changed() {
	if h.notifier != nil {
		h.notifier.WorkspaceChanged()
	}
}
