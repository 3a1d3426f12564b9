// Package wm provides window and workspace management for the desktop
// backend.
//
// The manager owns the authoritative list of open windows, their stacking
// order (z-index), focus and geometry. Three responsibilities compose into
// one state store:
//
//   - Registry: the canonical set of WindowRecords and the only mutation
//     point
//   - Stacking: distinct, monotonically issued z-indices; the window with
//     the maximum z-index is the focused window (derived, not stored)
//   - Geometry: position updates and save/restore semantics for maximize
//
// Every operation is total over possibly-absent ids: an unknown id is a
// silent no-op, never an error, so stale ids from a host UI (a double-click
// racing a close) cannot crash the process.
//
// Example Usage:
//
//	manager := wm.NewManager(wm.DefaultConfig())
//	rec := manager.Open(descriptor)
//	manager.Focus(rec.ID)
//	manager.Maximize(rec.ID)
package wm
