// Package http provides the REST surface of the desktop backend.
//
// Window operations mirror the total-function contract of the window
// manager: referencing a stale window id yields success:false with HTTP
// 200, never an error response, because stale ids (a double-click racing a
// close) are expected traffic from a host UI. Malformed request bodies are
// 400s, and lookups of entities with their own lifecycle (descriptors,
// snapshots) are 404s when absent.
package http
