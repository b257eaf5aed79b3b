// Package tomlspec loads build specs written in TOML, mirroring the HCL
// spec shape with tables instead of blocks.
package tomlspec

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/vk/nbuild/internal/config"
	"github.com/vk/nbuild/internal/ctxlog"
)

// Loader loads build specs written in TOML.
type Loader struct{}

// NewLoader creates a new TOML spec loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding TOML spec file.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	var patch config.Patch
	if err := toml.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("failed to decode spec file %s: %w", path, err)
	}

	cfg := config.Default()
	if err := patch.Apply(cfg); err != nil {
		return nil, fmt.Errorf("invalid spec file %s: %w", path, err)
	}
	logger.Debug("Successfully decoded spec file.", "path", path)
	return cfg, nil
}
