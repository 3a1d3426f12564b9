package registry

import (
	"fmt"
	"sync"

	"github.com/Dave-Meloncelli/reliquary-desktop/internal/shared/types"
)

// Manager holds the application descriptors available to the window
// manager. Descriptors are read-only templates; the manager hands out
// copies and never lets callers mutate a stored entry.
type Manager struct {
	mu          sync.RWMutex
	descriptors map[string]*types.Descriptor // Protected by mu
}

// NewManager creates an empty descriptor registry.
func NewManager() *Manager {
	return &Manager{
		descriptors: make(map[string]*types.Descriptor),
	}
}

// Register adds or replaces a descriptor.
func (m *Manager) Register(desc types.Descriptor) error {
	if desc.AppID == "" {
		return fmt.Errorf("descriptor missing app_id")
	}
	if desc.Title == "" {
		return fmt.Errorf("descriptor %s missing title", desc.AppID)
	}

	m.mu.Lock()
	m.descriptors[desc.AppID] = &desc
	m.mu.Unlock()
	return nil
}

// Get retrieves a descriptor by application id.
func (m *Manager) Get(appID string) (*types.Descriptor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	desc, ok := m.descriptors[appID]
	if !ok {
		return nil, false
	}
	cp := *desc
	return &cp, true
}

// List returns copies of all registered descriptors.
func (m *Manager) List() []*types.Descriptor {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*types.Descriptor, 0, len(m.descriptors))
	for _, desc := range m.descriptors {
		cp := *desc
		out = append(out, &cp)
	}
	return out
}

// Unregister removes a descriptor. Removing an unknown id reports false.
func (m *Manager) Unregister(appID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.descriptors[appID]; !ok {
		return false
	}
	delete(m.descriptors, appID)
	return true
}

// Stats returns registry statistics.
func (m *Manager) Stats() types.RegistryStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return types.RegistryStats{TotalApps: len(m.descriptors)}
}
