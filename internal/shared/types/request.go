package types

// OpenRequest asks the manager to instantiate a registered application.
type OpenRequest struct {
	AppID string `json:"app_id" binding:"required"`
}

// MoveRequest carries a position update for a window.
type MoveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ResizeRequest carries a size update for a window.
type ResizeRequest struct {
	Width  int `json:"width" binding:"required"`
	Height int `json:"height" binding:"required"`
}

// TitleRequest carries a title update for a window.
type TitleRequest struct {
	Title string `json:"title" binding:"required"`
}

// SaveSnapshotRequest names a workspace snapshot to be saved.
type SaveSnapshotRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// WSMessage represents a WebSocket operation from a client.
type WSMessage struct {
	Type     string `json:"type"`
	AppID    string `json:"app_id,omitempty"`
	WindowID string `json:"window_id,omitempty"`
	X        int    `json:"x,omitempty"`
	Y        int    `json:"y,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}
