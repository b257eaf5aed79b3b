// Package yamlspec loads build specs written in YAML, mirroring the HCL
// spec shape with mapping keys instead of blocks.
package yamlspec

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/nbuild/internal/config"
	"github.com/vk/nbuild/internal/ctxlog"
)

// Loader loads build specs written in YAML.
type Loader struct{}

// NewLoader creates a new YAML spec loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding YAML spec file.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	var patch config.Patch
	if err := yaml.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("failed to decode spec file %s: %w", path, err)
	}

	cfg := config.Default()
	if err := patch.Apply(cfg); err != nil {
		return nil, fmt.Errorf("invalid spec file %s: %w", path, err)
	}
	logger.Debug("Successfully decoded spec file.", "path", path)
	return cfg, nil
}
