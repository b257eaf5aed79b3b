package config

import "context"

// Loader is the contract for a format-specific spec-file loader. How a
// loader obtains its values (HCL, YAML, TOML, or anything else) is a
// swappable concern; the engine only requires a fully-constructed Config.
type Loader interface {
	// Load reads a spec file from path and returns a configuration built on
	// top of the platform defaults.
	Load(ctx context.Context, path string) (*Config, error)
}
