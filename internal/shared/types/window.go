package types

import "time"

// Geometry describes a window rectangle in desktop coordinates.
type Geometry struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Size represents window dimensions without a position.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Position represents a window location without dimensions.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WindowRecord is the manager's per-instance state for one open window.
//
// ZIndex values are pairwise distinct across open windows and issued from a
// monotonic counter; the record with the maximum ZIndex is the focused
// window. PreMaximize is nil unless the window is (or has been) maximized;
// it holds the geometry captured at the instant of the last transition into
// the maximized state.
type WindowRecord struct {
	ID          string                 `json:"id"`
	AppID       string                 `json:"app_id"`
	Title       string                 `json:"title"`
	Content     map[string]interface{} `json:"content,omitempty"`
	Geometry    Geometry               `json:"geometry"`
	ZIndex      int64                  `json:"z_index"`
	Minimized   bool                   `json:"minimized"`
	Maximized   bool                   `json:"maximized"`
	PreMaximize *Geometry              `json:"pre_maximize,omitempty"`
	OpenedAt    time.Time              `json:"opened_at"`
}

// WorkspaceStats contains window manager statistics.
type WorkspaceStats struct {
	TotalWindows     int     `json:"total_windows"`
	VisibleWindows   int     `json:"visible_windows"`
	MinimizedWindows int     `json:"minimized_windows"`
	MaximizedWindows int     `json:"maximized_windows"`
	FocusedID        *string `json:"focused_id,omitempty"`
	FocusedTitle     *string `json:"focused_title,omitempty"`
}
