// Package registry manages the catalog of application descriptors.
//
// A descriptor is the external, read-only template (id, title, renderable
// content, default/min/max size) used by the window manager to instantiate
// windows. Descriptors come from YAML files in a configured directory and
// from a small built-in default set.
package registry
