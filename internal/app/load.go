package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/nbuild/internal/config"
	"github.com/vk/nbuild/internal/ctxlog"
	"github.com/vk/nbuild/internal/fsutil"
	"github.com/vk/nbuild/internal/hcl"
	"github.com/vk/nbuild/internal/tomlspec"
	"github.com/vk/nbuild/internal/yamlspec"
)

// specExtensions lists the spec-file formats in lookup order.
var specExtensions = []string{".hcl", ".yaml", ".yml", ".toml"}

// loadSpec resolves the configured spec path to a single file, picks the
// loader matching its extension, and loads the configuration.
func (a *App) loadSpec(ctx context.Context) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)

	path := a.config.SpecPath
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("spec path %s: %w", path, err)
	}
	if info.IsDir() {
		path, err = fsutil.FindSpecFile(path, specExtensions...)
		if err != nil {
			return nil, err
		}
		logger.Debug("Resolved spec directory to file.", "path", path)
	}

	loader, err := loaderFor(path)
	if err != nil {
		return nil, err
	}

	logger.Info("Loading configuration from spec file.", "path", path)
	return loader.Load(ctx, path)
}

// loaderFor selects the format binding from the file extension.
func loaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlspec.NewLoader(), nil
	case ".toml":
		return tomlspec.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported spec format %q (expected .hcl, .yaml, .yml or .toml)", filepath.Ext(path))
	}
}
