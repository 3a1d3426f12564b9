package types

// Descriptor is the external, read-only template used to instantiate a
// window record. The window manager copies Title and DefaultSize at open
// time and carries Content opaquely; it never mutates a descriptor and never
// inspects Content.
type Descriptor struct {
	AppID       string                 `json:"app_id" yaml:"app_id"`
	Title       string                 `json:"title" yaml:"title"`
	Content     map[string]interface{} `json:"content,omitempty" yaml:"content,omitempty"`
	DefaultSize Size                   `json:"default_size" yaml:"default_size"`
	MinSize     *Size                  `json:"min_size,omitempty" yaml:"min_size,omitempty"`
	MaxSize     *Size                  `json:"max_size,omitempty" yaml:"max_size,omitempty"`
}

// RegistryStats contains descriptor registry statistics.
type RegistryStats struct {
	TotalApps int `json:"total_apps"`
}
