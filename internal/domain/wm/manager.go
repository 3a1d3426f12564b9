package wm

import (
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/Dave-Meloncelli/reliquary-desktop/internal/infrastructure/monitoring"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/shared/id"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/shared/types"
)

// Defaults applied when a descriptor leaves them unset.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultTitle  = "Untitled"
)

// Config defines the desktop surface the manager places windows on.
type Config struct {
	// Desktop is the full surface; it becomes the geometry of a maximized
	// window.
	Desktop types.Geometry
	// Origin is the base position for newly opened windows.
	Origin types.Position
	// SpawnJitter is the maximum random offset (per axis) added to Origin
	// when opening a window, so successive windows do not stack at
	// identical coordinates. Zero disables the offset.
	SpawnJitter int
}

// DefaultConfig returns a manager configuration for a 1920x1080 surface.
func DefaultConfig() Config {
	return Config{
		Desktop:     types.Geometry{X: 0, Y: 0, Width: 1920, Height: 1080},
		Origin:      types.Position{X: 40, Y: 40},
		SpawnJitter: 200,
	}
}

// Manager owns the canonical set of open windows, their stacking order and
// their geometry. It is the only component allowed to mutate a WindowRecord;
// every accessor returns copies.
//
// A single mutex guards both the registry and the z counter so that
// read-then-increment of the counter is atomic under a multi-threaded host.
type Manager struct {
	mu      sync.Mutex
	windows map[string]*types.WindowRecord // Protected by mu
	zTop    int64                          // Protected by mu; never decreases
	ids     *id.Sequence
	cfg     Config
	metrics *monitoring.Metrics
}

// NewManager creates a window manager for the given desktop surface.
func NewManager(cfg Config) *Manager {
	if cfg.Desktop.Width <= 0 || cfg.Desktop.Height <= 0 {
		cfg.Desktop = DefaultConfig().Desktop
	}
	return &Manager{
		windows: make(map[string]*types.WindowRecord),
		ids:     id.NewWindowSequence(),
		cfg:     cfg,
	}
}

// WithMetrics adds metrics tracking to the manager.
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// Open instantiates a new window from a descriptor. Every call creates a
// fresh record with a fresh id, even when the same application is already
// open. Open always succeeds.
func (m *Manager) Open(desc types.Descriptor) *types.WindowRecord {
	size := desc.DefaultSize
	if size.Width <= 0 {
		size.Width = DefaultWidth
	}
	if size.Height <= 0 {
		size.Height = DefaultHeight
	}
	size = clampSize(size, desc.MinSize, desc.MaxSize)

	title := desc.Title
	if title == "" {
		title = DefaultTitle
	}

	geo := types.Geometry{
		X:      m.cfg.Origin.X,
		Y:      m.cfg.Origin.Y,
		Width:  size.Width,
		Height: size.Height,
	}
	if m.cfg.SpawnJitter > 0 {
		geo.X += rand.IntN(m.cfg.SpawnJitter + 1)
		geo.Y += rand.IntN(m.cfg.SpawnJitter + 1)
	}

	rec := &types.WindowRecord{
		ID:       m.ids.Next(),
		AppID:    desc.AppID,
		Title:    title,
		Content:  desc.Content,
		Geometry: geo,
		OpenedAt: time.Now(),
	}

	m.mu.Lock()
	m.zTop++
	rec.ZIndex = m.zTop
	m.windows[rec.ID] = rec
	m.mu.Unlock()

	m.record("open")
	out := *rec
	return &out
}

// Close removes a window from the registry. Closing an unknown id is a
// silent no-op; remaining windows keep their z-indices (focus falls to
// whichever survivor holds the maximum).
func (m *Manager) Close(windowID string) bool {
	m.mu.Lock()
	_, ok := m.windows[windowID]
	if ok {
		delete(m.windows, windowID)
	}
	m.mu.Unlock()

	if ok {
		m.record("close")
	}
	return ok
}

// Focus raises a window to the top of the stacking order and, if it was
// minimized, restores it. Minimize never touches z, so the topmost window
// can itself be minimized; focusing it clears the flag without consuming a
// new z value. Once a window is topmost and visible, further focus calls are
// no-ops: the registry is left untouched and the counter does not grow, so
// repeated focus traffic on the top window cannot produce spurious state
// changes for consumers that diff snapshots.
func (m *Manager) Focus(windowID string) bool {
	m.mu.Lock()
	rec, ok := m.windows[windowID]
	if !ok {
		m.mu.Unlock()
		return false
	}

	if rec.ZIndex == m.currentMaxLocked() {
		if !rec.Minimized {
			m.mu.Unlock()
			m.record("focus_noop")
			return true
		}
		rec.Minimized = false
		m.mu.Unlock()
		m.record("focus")
		return true
	}

	m.zTop++
	rec.ZIndex = m.zTop
	rec.Minimized = false
	m.mu.Unlock()

	m.record("focus")
	return true
}

// Minimize toggles the minimized flag. Nothing else changes: z-order,
// geometry and the maximized flag are all preserved, so un-minimizing a
// maximized window returns it to its maximized state.
func (m *Manager) Minimize(windowID string) bool {
	m.mu.Lock()
	rec, ok := m.windows[windowID]
	if ok {
		rec.Minimized = !rec.Minimized
	}
	m.mu.Unlock()

	if ok {
		m.record("minimize")
	}
	return ok
}

// Maximize toggles the maximized state.
//
// Entering the maximized state captures the current geometry, fills the
// desktop surface and raises the window above the current top. Leaving it
// restores the captured geometry exactly and leaves the z-index alone.
func (m *Manager) Maximize(windowID string) bool {
	m.mu.Lock()
	rec, ok := m.windows[windowID]
	if !ok {
		m.mu.Unlock()
		return false
	}

	if rec.Maximized {
		if rec.PreMaximize != nil {
			rec.Geometry = *rec.PreMaximize
		}
		rec.Maximized = false
	} else {
		prev := rec.Geometry
		rec.PreMaximize = &prev
		rec.Geometry = m.cfg.Desktop
		rec.Maximized = true
		m.zTop++
		rec.ZIndex = m.zTop
	}
	m.mu.Unlock()

	m.record("maximize")
	return true
}

// Move updates a window's position only. Width, height, flags and z-order
// are untouched; in particular, dragging a background window does NOT bring
// it to the front. That diverges from common desktop conventions but is the
// observable behavior of the reference desktop and hosts rely on it, so it
// is intentional rather than an omission.
func (m *Manager) Move(windowID string, x, y int) bool {
	m.mu.Lock()
	rec, ok := m.windows[windowID]
	if ok {
		rec.Geometry.X = x
		rec.Geometry.Y = y
	}
	m.mu.Unlock()

	if ok {
		m.record("move")
	}
	return ok
}

// Resize updates a window's dimensions. Resizing a maximized window is
// ignored so the saved pre-maximize geometry cannot be corrupted mid-toggle.
func (m *Manager) Resize(windowID string, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	m.mu.Lock()
	rec, ok := m.windows[windowID]
	if ok && !rec.Maximized {
		rec.Geometry.Width = width
		rec.Geometry.Height = height
	}
	m.mu.Unlock()

	if ok {
		m.record("resize")
	}
	return ok
}

// SetTitle updates a window's display title.
func (m *Manager) SetTitle(windowID string, title string) bool {
	m.mu.Lock()
	rec, ok := m.windows[windowID]
	if ok {
		rec.Title = title
	}
	m.mu.Unlock()
	return ok
}

// Get retrieves a copy of a window record by id.
func (m *Manager) Get(windowID string) (*types.WindowRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.windows[windowID]
	if !ok {
		return nil, false
	}
	out := *rec
	return &out, true
}

// List returns copies of all window records in ascending z-order, the order
// a render layer paints them in, so the last element is visually on top. Minimized windows are included; filtering is the renderer's concern.
func (m *Manager) List() []*types.WindowRecord {
	m.mu.Lock()
	out := make([]*types.WindowRecord, 0, len(m.windows))
	for _, rec := range m.windows {
		cp := *rec
		out = append(out, &cp)
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

// Focused returns a copy of the window holding the maximum z-index, if any.
func (m *Manager) Focused() (*types.WindowRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	top := m.topLocked()
	if top == nil {
		return nil, false
	}
	out := *top
	return &out, true
}

// Desktop returns the surface geometry maximized windows fill.
func (m *Manager) Desktop() types.Geometry {
	return m.cfg.Desktop
}

// Stats returns manager statistics.
func (m *Manager) Stats() types.WorkspaceStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := types.WorkspaceStats{}
	for _, rec := range m.windows {
		stats.TotalWindows++
		if rec.Minimized {
			stats.MinimizedWindows++
		} else {
			stats.VisibleWindows++
		}
		if rec.Maximized {
			stats.MaximizedWindows++
		}
	}

	if top := m.topLocked(); top != nil {
		focusedID := top.ID
		focusedTitle := top.Title
		stats.FocusedID = &focusedID
		stats.FocusedTitle = &focusedTitle
	}
	return stats
}

// Snapshot captures the current workspace layout for save/restore.
func (m *Manager) Snapshot() types.Workspace {
	windows := m.List()

	ws := types.Workspace{Windows: make([]types.WindowSnapshot, len(windows))}
	for i, rec := range windows {
		ws.Windows[i] = types.WindowSnapshot{
			ID:          rec.ID,
			AppID:       rec.AppID,
			Title:       rec.Title,
			Geometry:    rec.Geometry,
			ZIndex:      rec.ZIndex,
			Minimized:   rec.Minimized,
			Maximized:   rec.Maximized,
			PreMaximize: rec.PreMaximize,
		}
	}
	if len(windows) > 0 {
		focused := windows[len(windows)-1].ID
		ws.FocusedID = &focused
	}
	return ws
}

// currentMaxLocked returns the maximum z-index among open windows, or zero
// when the registry is empty. Callers must hold mu.
func (m *Manager) currentMaxLocked() int64 {
	var max int64
	for _, rec := range m.windows {
		if rec.ZIndex > max {
			max = rec.ZIndex
		}
	}
	return max
}

// topLocked returns the window holding the maximum z-index. Callers must
// hold mu.
func (m *Manager) topLocked() *types.WindowRecord {
	var top *types.WindowRecord
	for _, rec := range m.windows {
		if top == nil || rec.ZIndex > top.ZIndex {
			top = rec
		}
	}
	return top
}

func (m *Manager) record(op string) {
	if m.metrics == nil {
		return
	}
	m.metrics.RecordWindowOp(op)

	stats := m.Stats()
	m.metrics.SetWindowGauges(stats.TotalWindows, stats.MinimizedWindows)
}

func clampSize(size types.Size, min, max *types.Size) types.Size {
	if min != nil {
		if size.Width < min.Width {
			size.Width = min.Width
		}
		if size.Height < min.Height {
			size.Height = min.Height
		}
	}
	if max != nil {
		if max.Width > 0 && size.Width > max.Width {
			size.Width = max.Width
		}
		if max.Height > 0 && size.Height > max.Height {
			size.Height = max.Height
		}
	}
	return size
}
