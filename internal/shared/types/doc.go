// Package types provides shared data structures for the desktop backend.
//
// This package defines core types used across all backend components,
// ensuring type safety and consistent data structures.
//
// Core Types:
//   - WindowRecord: Per-instance state for one open window
//   - Geometry, Size, Position: Window rectangles in desktop coordinates
//   - Descriptor: External, read-only application template
//   - Workspace, WorkspaceSnapshot: Saved layout state
//
// Request Types:
//   - OpenRequest, MoveRequest, ResizeRequest: HTTP operation bodies
//   - WSMessage: WebSocket communication
//
// Example Usage:
//
//	rec := &types.WindowRecord{
//	    ID:       "win_1",
//	    AppID:    "notes",
//	    Title:    "Notes",
//	    Geometry: types.Geometry{X: 40, Y: 40, Width: 400, Height: 300},
//	}
package types
