package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/Dave-Meloncelli/reliquary-desktop/internal/infrastructure/monitoring"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/shared/id"
	"github.com/Dave-Meloncelli/reliquary-desktop/internal/shared/types"
)

// WindowManager is the slice of the wm API snapshot save/restore needs.
// Restore drives the same public operations a host UI would; there is no
// back door into the registry.
type WindowManager interface {
	Open(desc types.Descriptor) *types.WindowRecord
	Close(windowID string) bool
	Focus(windowID string) bool
	Minimize(windowID string) bool
	Maximize(windowID string) bool
	Move(windowID string, x, y int) bool
	Resize(windowID string, width, height int) bool
	List() []*types.WindowRecord
	Snapshot() types.Workspace
}

// DescriptorSource resolves application descriptors when reopening windows.
type DescriptorSource interface {
	Get(appID string) (*types.Descriptor, bool)
}

// Manager keeps named workspace layouts for the lifetime of the process.
// Snapshots are never written to disk; layout persistence across restarts is
// explicitly out of scope.
type Manager struct {
	snapshots    sync.Map
	wm           WindowManager
	descriptors  DescriptorSource
	metrics      *monitoring.Metrics
	mu           sync.RWMutex
	lastSaved    *time.Time // Protected by mu
	lastRestored *time.Time // Protected by mu
}

// NewManager creates a workspace snapshot manager.
func NewManager(wm WindowManager, descriptors DescriptorSource) *Manager {
	return &Manager{
		wm:          wm,
		descriptors: descriptors,
	}
}

// WithMetrics adds metrics tracking to the manager.
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// Save captures the current workspace layout under a name.
func (m *Manager) Save(name, description string) (*types.WorkspaceSnapshot, error) {
	if name == "" {
		return nil, fmt.Errorf("snapshot name is required")
	}

	now := time.Now()
	snapshot := &types.WorkspaceSnapshot{
		ID:          id.NewSnapshotID().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		Workspace:   m.wm.Snapshot(),
	}

	m.snapshots.Store(snapshot.ID, snapshot)

	m.mu.Lock()
	m.lastSaved = &now
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.RecordSnapshotSave()
	}
	return snapshot.Clone(), nil
}

// Restore replaces the current workspace with a saved layout.
//
// Windows are reopened in ascending saved z-order so stacking reproduces
// itself through ordinary Open calls; geometry, minimize and maximize state
// are then replayed through the public operations. New window ids are
// assigned; ids are never reused, so the saved ids cannot come back.
func (m *Manager) Restore(snapshotID string) error {
	val, ok := m.snapshots.Load(snapshotID)
	if !ok {
		return fmt.Errorf("snapshot %s not found", snapshotID)
	}
	snapshot := val.(*types.WorkspaceSnapshot)

	// Clear the current workspace.
	for _, rec := range m.wm.List() {
		m.wm.Close(rec.ID)
	}

	var focusedNewID string
	for i := range snapshot.Workspace.Windows {
		win := &snapshot.Workspace.Windows[i]

		desc, ok := m.descriptors.Get(win.AppID)
		if !ok {
			// The app was unregistered since the save; reopen with a
			// bare descriptor so the layout survives.
			desc = &types.Descriptor{AppID: win.AppID, Title: win.Title}
		}

		rec := m.wm.Open(*desc)

		if win.Maximized {
			// Position at the pre-maximize geometry first so the maximize
			// toggle recaptures it, then fill the surface.
			target := win.Geometry
			if win.PreMaximize != nil {
				target = *win.PreMaximize
			}
			m.wm.Move(rec.ID, target.X, target.Y)
			m.wm.Resize(rec.ID, target.Width, target.Height)
			m.wm.Maximize(rec.ID)
		} else {
			m.wm.Move(rec.ID, win.Geometry.X, win.Geometry.Y)
			m.wm.Resize(rec.ID, win.Geometry.Width, win.Geometry.Height)
		}
		if win.Minimized {
			m.wm.Minimize(rec.ID)
		}

		if snapshot.Workspace.FocusedID != nil && *snapshot.Workspace.FocusedID == win.ID {
			focusedNewID = rec.ID
		}
	}

	if focusedNewID != "" {
		m.wm.Focus(focusedNewID)
	}

	now := time.Now()
	m.mu.Lock()
	m.lastRestored = &now
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.RecordSnapshotRestore()
	}
	return nil
}

// Get retrieves a copy of a snapshot by id.
func (m *Manager) Get(snapshotID string) (*types.WorkspaceSnapshot, bool) {
	val, ok := m.snapshots.Load(snapshotID)
	if !ok {
		return nil, false
	}
	return val.(*types.WorkspaceSnapshot).Clone(), true
}

// List returns metadata for all saved snapshots.
func (m *Manager) List() []types.SnapshotMetadata {
	var metadata []types.SnapshotMetadata
	m.snapshots.Range(func(_, value interface{}) bool {
		snapshot := value.(*types.WorkspaceSnapshot)
		metadata = append(metadata, snapshot.ToMetadata())
		return true
	})
	return metadata
}

// Delete removes a snapshot. Deleting an unknown id reports false.
func (m *Manager) Delete(snapshotID string) bool {
	if _, ok := m.snapshots.Load(snapshotID); !ok {
		return false
	}
	m.snapshots.Delete(snapshotID)
	return true
}

// Stats returns snapshot manager statistics.
func (m *Manager) Stats() types.SessionStats {
	var total int
	m.snapshots.Range(func(_, _ interface{}) bool {
		total++
		return true
	})

	m.mu.RLock()
	lastSaved := m.lastSaved
	lastRestored := m.lastRestored
	m.mu.RUnlock()

	return types.SessionStats{
		TotalSnapshots: total,
		LastSaved:      lastSaved,
		LastRestored:   lastRestored,
	}
}
