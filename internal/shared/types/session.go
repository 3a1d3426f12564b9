package types

import "time"

// WindowSnapshot captures one window for workspace save/restore.
type WindowSnapshot struct {
	ID          string    `json:"id"`
	AppID       string    `json:"app_id"`
	Title       string    `json:"title"`
	Geometry    Geometry  `json:"geometry"`
	ZIndex      int64     `json:"z_index"`
	Minimized   bool      `json:"minimized"`
	Maximized   bool      `json:"maximized"`
	PreMaximize *Geometry `json:"pre_maximize,omitempty"`
}

// Workspace is an ordered snapshot of every open window plus focus.
type Workspace struct {
	Windows   []WindowSnapshot `json:"windows"`
	FocusedID *string          `json:"focused_id,omitempty"`
}

// WorkspaceSnapshot is a named, saved workspace layout.
type WorkspaceSnapshot struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Workspace   Workspace `json:"workspace"`
}

// SnapshotMetadata is the listing view of a saved workspace.
type SnapshotMetadata struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	WindowCount int       `json:"window_count"`
}

// ToMetadata converts a snapshot to its listing view.
func (s *WorkspaceSnapshot) ToMetadata() SnapshotMetadata {
	return SnapshotMetadata{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		WindowCount: len(s.Workspace.Windows),
	}
}

// Clone returns a deep copy of the snapshot so callers cannot mutate the
// stored layout through shared slices or pointers.
func (s *WorkspaceSnapshot) Clone() *WorkspaceSnapshot {
	out := *s
	out.Workspace.Windows = make([]WindowSnapshot, len(s.Workspace.Windows))
	for i, win := range s.Workspace.Windows {
		if win.PreMaximize != nil {
			pre := *win.PreMaximize
			win.PreMaximize = &pre
		}
		out.Workspace.Windows[i] = win
	}
	if s.Workspace.FocusedID != nil {
		focused := *s.Workspace.FocusedID
		out.Workspace.FocusedID = &focused
	}
	return &out
}

// SessionStats contains snapshot manager statistics.
type SessionStats struct {
	TotalSnapshots int        `json:"total_snapshots"`
	LastSaved      *time.Time `json:"last_saved,omitempty"`
	LastRestored   *time.Time `json:"last_restored,omitempty"`
}
