package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/nbuild/internal/builder"
	"github.com/vk/nbuild/internal/config"
	"github.com/vk/nbuild/internal/ctxlog"
	"github.com/vk/nbuild/internal/executor"
	"github.com/vk/nbuild/internal/export"
	"github.com/vk/nbuild/internal/platform"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	args, err := a.resolveArgs(ctx)
	if err != nil {
		return err
	}

	prefix := a.compilerPrefix()
	full := make([]string, 0, len(prefix)+len(args))
	full = append(full, prefix...)
	full = append(full, args...)
	a.logger.Debug("Resolved compiler command.", "argv", full)

	switch {
	case a.config.ExportPath != "":
		if err := export.WriteScript(a.config.ExportPath, prefix, args); err != nil {
			return err
		}
		a.logger.Info("Wrote build script.", "path", a.config.ExportPath)
	case a.config.DryRun:
		fmt.Fprintln(a.outW, "Dry run. Would run:")
		fmt.Fprintln(a.outW, strings.Join(full, " "))
	default:
		a.logger.Info("Running compiler.")
		if err := executor.New(a.outW, a.errW).Run(ctx, full); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveArgs produces the compiler argument list from the spec file, the
// passthrough arguments, or the platform default configuration.
func (a *App) resolveArgs(ctx context.Context) ([]string, error) {
	switch {
	case a.config.SpecPath != "":
		cfg, err := a.loadSpec(ctx)
		if err != nil {
			return nil, err
		}
		args, err := builder.Build(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize configuration: %w", err)
		}
		return args, nil
	case len(a.config.Passthrough) > 0:
		a.logger.Debug("Using passthrough compiler arguments.", "count", len(a.config.Passthrough))
		return a.config.Passthrough, nil
	default:
		a.logger.Info("No spec or compiler arguments given, using the default configuration.")
		args, err := builder.Build(config.Default())
		if err != nil {
			return nil, fmt.Errorf("failed to serialize configuration: %w", err)
		}
		return args, nil
	}
}

// compilerPrefix resolves the compiler invocation prefix, preferring an
// explicit override from the command line.
func (a *App) compilerPrefix() []string {
	if a.config.Compiler != "" {
		return strings.Fields(a.config.Compiler)
	}
	return platform.DetectCompiler(platform.Host())
}
