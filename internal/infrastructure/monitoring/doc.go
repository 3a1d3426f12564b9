// Package monitoring provides Prometheus metrics for the desktop backend.
//
// Collected metrics cover the HTTP surface (request counts and latency),
// the window manager (open/minimized gauges, per-operation counters),
// workspace snapshots and WebSocket connections.
//
// Example Usage:
//
//	metrics := monitoring.NewMetrics()
//	router.Use(monitoring.Middleware(metrics))
//	manager := wm.NewManager(cfg).WithMetrics(metrics)
package monitoring
