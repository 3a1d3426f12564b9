// Package ws provides the WebSocket surface of the desktop backend.
//
// A single hub fans workspace state out to every connected render client.
// Clients send window operations and receive full z-ordered workspace
// snapshots after each mutation, from any source, whether their own messages,
// other clients, or the REST API.
//
// Message Types (Client → Server):
//   - open: Instantiate a registered application (app_id)
//   - close, focus, minimize, maximize: Window lifecycle (window_id)
//   - move, resize: Geometry updates (window_id, x/y or width/height)
//   - ping: Keep-alive
//
// Message Types (Server → Client):
//   - workspace: Full snapshot (windows ascending by z, plus stats)
//   - window_opened: The record created for this client's open request
//   - pong, error
package ws
