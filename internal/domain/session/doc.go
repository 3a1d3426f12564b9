// Package session provides named, in-memory workspace snapshots.
//
// A snapshot captures every open window (geometry, stacking order,
// minimize/maximize state) plus the focused window, and can be replayed
// later in the same process. Restore drives the window manager's public
// operations only, so all stacking and geometry invariants hold for
// restored layouts exactly as they do for user-driven ones.
package session
