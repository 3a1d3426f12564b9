// Command server runs the desktop backend: the window & workspace manager
// behind its REST and WebSocket surfaces.
//
// Configuration comes from environment variables (see
// internal/infrastructure/config). The process shuts down on SIGINT or
// SIGTERM.
package main
