// Package logging provides structured logging built on zap.
//
// Development builds use a colored console encoder; production builds emit
// JSON with ISO8601 timestamps.
package logging
