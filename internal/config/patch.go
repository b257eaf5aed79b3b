package config

import (
	"fmt"

	"github.com/vk/nbuild/internal/platform"
)

// Patch is the format-agnostic shape of a spec file: every field optional,
// absent fields keeping their platform defaults. The struct tags let the
// YAML and TOML loaders unmarshal into it directly; the HCL loader fills it
// from its own block schema. Apply folds a patch onto a Config.
type Patch struct {
	Build        *BuildPatch        `yaml:"build" toml:"build"`
	Output       *OutputPatch       `yaml:"output" toml:"output"`
	Optimization *OptimizationPatch `yaml:"optimization" toml:"optimization"`
	Parallel     *ParallelPatch     `yaml:"parallel" toml:"parallel"`
	Python       *PythonPatch       `yaml:"python" toml:"python"`
	Compiler     *CompilerPatch     `yaml:"compiler" toml:"compiler"`
	Plugins      *PluginsPatch      `yaml:"plugins" toml:"plugins"`
	Packages     *PackagesPatch     `yaml:"packages" toml:"packages"`
	Data         *DataPatch         `yaml:"data" toml:"data"`
	Windows      *WindowsPatch      `yaml:"windows" toml:"windows"`
	MacOS        *MacOSPatch        `yaml:"macos" toml:"macos"`
	Linux        *LinuxPatch        `yaml:"linux" toml:"linux"`
	Metadata     *MetadataPatch     `yaml:"metadata" toml:"metadata"`
	Debug        *DebugPatch        `yaml:"debug" toml:"debug"`
	Console      *ConsolePatch      `yaml:"console" toml:"console"`
	Cache        *CachePatch        `yaml:"cache" toml:"cache"`
	Deployment   *DeploymentPatch   `yaml:"deployment" toml:"deployment"`
	Environment  *EnvironmentPatch  `yaml:"environment" toml:"environment"`
	PostCompile  *PostCompilePatch  `yaml:"post_compile" toml:"post_compile"`

	// Extras accepts either a single whitespace-delimited string or a list
	// of strings.
	Extras any `yaml:"extras" toml:"extras"`
}

// BuildPatch covers the root-level fields emitted manually by the builder.
type BuildPatch struct {
	Mode     *string `hcl:"mode,optional" yaml:"mode" toml:"mode"`
	ModeFlag *string `hcl:"mode_flag,optional" yaml:"mode_flag" toml:"mode_flag"`
	Entry    *string `hcl:"entry,optional" yaml:"entry" toml:"entry"`
}

// OutputPatch mirrors Output.
type OutputPatch struct {
	Dir          *string `hcl:"dir,optional" yaml:"dir" toml:"dir"`
	Filename     *string `hcl:"filename,optional" yaml:"filename" toml:"filename"`
	RemoveOutput *bool   `hcl:"remove_output,optional" yaml:"remove_output" toml:"remove_output"`
	ShowProgress *bool   `hcl:"show_progress,optional" yaml:"show_progress" toml:"show_progress"`
}

// OptimizationPatch mirrors Optimization.
type OptimizationPatch struct {
	LTO              *string `hcl:"lto,optional" yaml:"lto" toml:"lto"`
	EnableAsserts    *bool   `hcl:"enable_asserts,optional" yaml:"enable_asserts" toml:"enable_asserts"`
	NoOptimize       *bool   `hcl:"nooptimize,optional" yaml:"nooptimize" toml:"nooptimize"`
	PreferSourceCode *bool   `hcl:"prefer_source_code,optional" yaml:"prefer_source_code" toml:"prefer_source_code"`
	StaticLibpython  *string `hcl:"static_libpython,optional" yaml:"static_libpython" toml:"static_libpython"`
}

// ParallelPatch mirrors Parallel.
type ParallelPatch struct {
	Jobs *int `hcl:"jobs,optional" yaml:"jobs" toml:"jobs"`
}

// PythonPatch mirrors Python.
type PythonPatch struct {
	Version *string  `hcl:"version,optional" yaml:"version" toml:"version"`
	Flags   []string `hcl:"flags,optional" yaml:"flags" toml:"flags"`
	PyDebug *bool    `hcl:"python_debug,optional" yaml:"python_debug" toml:"python_debug"`
}

// CompilerPatch mirrors Compiler.
type CompilerPatch struct {
	Backend        *string `hcl:"backend,optional" yaml:"backend" toml:"backend"`
	FollowSymlinks *bool   `hcl:"follow_symlinks,optional" yaml:"follow_symlinks" toml:"follow_symlinks"`
}

// PluginsPatch mirrors Plugins.
type PluginsPatch struct {
	Enabled     []string `hcl:"enabled,optional" yaml:"enabled" toml:"enabled"`
	UserPlugins []string `hcl:"user_plugins,optional" yaml:"user_plugins" toml:"user_plugins"`
	NoDetection *bool    `hcl:"no_detection,optional" yaml:"no_detection" toml:"no_detection"`
	Trace       *bool    `hcl:"trace,optional" yaml:"trace" toml:"trace"`
}

// PackagesPatch mirrors Packages.
type PackagesPatch struct {
	Include         []string `hcl:"include,optional" yaml:"include" toml:"include"`
	Exclude         []string `hcl:"exclude,optional" yaml:"exclude" toml:"exclude"`
	NofollowImports *bool    `hcl:"nofollow_imports,optional" yaml:"nofollow_imports" toml:"nofollow_imports"`
	NofollowTo      []string `hcl:"nofollow_to,optional" yaml:"nofollow_to" toml:"nofollow_to"`
}

// DataPatch mirrors Data.
type DataPatch struct {
	IncludeFiles []string `hcl:"include_files,optional" yaml:"include_files" toml:"include_files"`
	IncludeDirs  []string `hcl:"include_dirs,optional" yaml:"include_dirs" toml:"include_dirs"`
}

// WindowsPatch mirrors WindowsBundle.
type WindowsPatch struct {
	Icon         *string `hcl:"icon,optional" yaml:"icon" toml:"icon"`
	ConsoleMode  *string `hcl:"console_mode,optional" yaml:"console_mode" toml:"console_mode"`
	UACAdmin     *bool   `hcl:"uac_admin,optional" yaml:"uac_admin" toml:"uac_admin"`
	SplashScreen *string `hcl:"splash_screen,optional" yaml:"splash_screen" toml:"splash_screen"`
}

// MacOSPatch mirrors MacOSBundle.
type MacOSPatch struct {
	CreateAppBundle *bool   `hcl:"create_app_bundle,optional" yaml:"create_app_bundle" toml:"create_app_bundle"`
	AppIcon         *string `hcl:"app_icon,optional" yaml:"app_icon" toml:"app_icon"`
	AppName         *string `hcl:"app_name,optional" yaml:"app_name" toml:"app_name"`
	SignedAppName   *string `hcl:"signed_app_name,optional" yaml:"signed_app_name" toml:"signed_app_name"`
	AppVersion      *string `hcl:"app_version,optional" yaml:"app_version" toml:"app_version"`
}

// LinuxPatch mirrors LinuxBundle.
type LinuxPatch struct {
	Icon *string `hcl:"icon,optional" yaml:"icon" toml:"icon"`
}

// MetadataPatch mirrors Metadata.
type MetadataPatch struct {
	CompanyName     *string `hcl:"company_name,optional" yaml:"company_name" toml:"company_name"`
	ProductName     *string `hcl:"product_name,optional" yaml:"product_name" toml:"product_name"`
	FileVersion     *string `hcl:"file_version,optional" yaml:"file_version" toml:"file_version"`
	ProductVersion  *string `hcl:"product_version,optional" yaml:"product_version" toml:"product_version"`
	FileDescription *string `hcl:"file_description,optional" yaml:"file_description" toml:"file_description"`
	Copyright       *string `hcl:"copyright,optional" yaml:"copyright" toml:"copyright"`
	Trademarks      *string `hcl:"trademarks,optional" yaml:"trademarks" toml:"trademarks"`
}

// DebugPatch mirrors Debug.
type DebugPatch struct {
	DebugSymbols   *bool `hcl:"debug_symbols,optional" yaml:"debug_symbols" toml:"debug_symbols"`
	Unstripped     *bool `hcl:"unstripped,optional" yaml:"unstripped" toml:"unstripped"`
	TraceExecution *bool `hcl:"trace_execution,optional" yaml:"trace_execution" toml:"trace_execution"`
	ShowMemory     *bool `hcl:"show_memory,optional" yaml:"show_memory" toml:"show_memory"`
	ShowModules    *bool `hcl:"show_modules,optional" yaml:"show_modules" toml:"show_modules"`
}

// ConsolePatch mirrors Console.
type ConsolePatch struct {
	Verbose   *bool `hcl:"verbose,optional" yaml:"verbose" toml:"verbose"`
	Quiet     *bool `hcl:"quiet,optional" yaml:"quiet" toml:"quiet"`
	ShowScons *bool `hcl:"show_scons,optional" yaml:"show_scons" toml:"show_scons"`
}

// CachePatch mirrors Cache.
type CachePatch struct {
	Disable []string `hcl:"disable,optional" yaml:"disable" toml:"disable"`
	Clean   []string `hcl:"clean,optional" yaml:"clean" toml:"clean"`
}

// DeploymentPatch mirrors Deployment.
type DeploymentPatch struct {
	Deployment        *bool    `hcl:"deployment,optional" yaml:"deployment" toml:"deployment"`
	NoDeploymentFlags []string `hcl:"no_deployment_flags,optional" yaml:"no_deployment_flags" toml:"no_deployment_flags"`
	OnefileTempdir    *string  `hcl:"onefile_tempdir,optional" yaml:"onefile_tempdir" toml:"onefile_tempdir"`
}

// EnvironmentPatch mirrors Environment.
type EnvironmentPatch struct {
	Variables []string `hcl:"variables,optional" yaml:"variables" toml:"variables"`
}

// PostCompilePatch mirrors PostCompile.
type PostCompilePatch struct {
	Run      *bool `hcl:"run,optional" yaml:"run" toml:"run"`
	Debugger *bool `hcl:"debugger,optional" yaml:"debugger" toml:"debugger"`
}

// Apply folds the patch onto cfg. Choice-typed strings are validated here so
// every loader reports the same errors. The bundling block must match the
// configuration's active platform variant.
func (p *Patch) Apply(cfg *Config) error {
	if p.Build != nil {
		if p.Build.Mode != nil {
			mode, err := ParseBuildMode(*p.Build.Mode)
			if err != nil {
				return fmt.Errorf("build.mode: %w", err)
			}
			cfg.Mode = mode
		}
		if p.Build.ModeFlag != nil {
			cfg.ModeFlag = *p.Build.ModeFlag
		}
		if p.Build.Entry != nil {
			cfg.Entry = Path(*p.Build.Entry)
		}
	}
	if p.Output != nil {
		setPath(&cfg.Output.Dir, p.Output.Dir)
		setVal(&cfg.Output.Filename, p.Output.Filename)
		setVal(&cfg.Output.RemoveOutput, p.Output.RemoveOutput)
		setVal(&cfg.Output.ShowProgress, p.Output.ShowProgress)
	}
	if p.Optimization != nil {
		if err := setTristate(&cfg.Optimization.LTO, p.Optimization.LTO, "optimization.lto"); err != nil {
			return err
		}
		setVal(&cfg.Optimization.EnableAsserts, p.Optimization.EnableAsserts)
		setVal(&cfg.Optimization.NoOptimize, p.Optimization.NoOptimize)
		setVal(&cfg.Optimization.PreferSourceCode, p.Optimization.PreferSourceCode)
		if err := setTristate(&cfg.Optimization.StaticLibpython, p.Optimization.StaticLibpython, "optimization.static_libpython"); err != nil {
			return err
		}
	}
	if p.Parallel != nil {
		setVal(&cfg.Parallel.Jobs, p.Parallel.Jobs)
	}
	if p.Python != nil {
		setVal(&cfg.Python.Version, p.Python.Version)
		if p.Python.Flags != nil {
			cfg.Python.Flags = p.Python.Flags
		}
		setVal(&cfg.Python.PyDebug, p.Python.PyDebug)
	}
	if p.Compiler != nil {
		if p.Compiler.Backend != nil {
			backend, err := ParseBackend(*p.Compiler.Backend)
			if err != nil {
				return fmt.Errorf("compiler.backend: %w", err)
			}
			cfg.Compiler.Backend = backend
		}
		setVal(&cfg.Compiler.FollowSymlinks, p.Compiler.FollowSymlinks)
	}
	if p.Plugins != nil {
		if p.Plugins.Enabled != nil {
			cfg.Plugins.Enabled = p.Plugins.Enabled
		}
		if p.Plugins.UserPlugins != nil {
			cfg.Plugins.UserPlugins = toPaths(p.Plugins.UserPlugins)
		}
		setVal(&cfg.Plugins.NoDetection, p.Plugins.NoDetection)
		setVal(&cfg.Plugins.Trace, p.Plugins.Trace)
	}
	if p.Packages != nil {
		if p.Packages.Include != nil {
			cfg.Packages.Include = p.Packages.Include
		}
		if p.Packages.Exclude != nil {
			cfg.Packages.Exclude = p.Packages.Exclude
		}
		setVal(&cfg.Packages.NofollowImports, p.Packages.NofollowImports)
		if p.Packages.NofollowTo != nil {
			cfg.Packages.NofollowTo = p.Packages.NofollowTo
		}
	}
	if p.Data != nil {
		if p.Data.IncludeFiles != nil {
			cfg.Data.IncludeFiles = toPaths(p.Data.IncludeFiles)
		}
		if p.Data.IncludeDirs != nil {
			cfg.Data.IncludeDirs = toPaths(p.Data.IncludeDirs)
		}
	}
	if err := p.applyBundling(cfg); err != nil {
		return err
	}
	if p.Metadata != nil {
		setVal(&cfg.Metadata.CompanyName, p.Metadata.CompanyName)
		setVal(&cfg.Metadata.ProductName, p.Metadata.ProductName)
		setVal(&cfg.Metadata.FileVersion, p.Metadata.FileVersion)
		setVal(&cfg.Metadata.ProductVersion, p.Metadata.ProductVersion)
		setVal(&cfg.Metadata.FileDescription, p.Metadata.FileDescription)
		setVal(&cfg.Metadata.Copyright, p.Metadata.Copyright)
		setVal(&cfg.Metadata.Trademarks, p.Metadata.Trademarks)
	}
	if p.Debug != nil {
		setVal(&cfg.Debug.DebugSymbols, p.Debug.DebugSymbols)
		setVal(&cfg.Debug.Unstripped, p.Debug.Unstripped)
		setVal(&cfg.Debug.TraceExecution, p.Debug.TraceExecution)
		setVal(&cfg.Debug.ShowMemory, p.Debug.ShowMemory)
		setVal(&cfg.Debug.ShowModules, p.Debug.ShowModules)
	}
	if p.Console != nil {
		setVal(&cfg.Console.Verbose, p.Console.Verbose)
		setVal(&cfg.Console.Quiet, p.Console.Quiet)
		setVal(&cfg.Console.ShowScons, p.Console.ShowScons)
	}
	if p.Cache != nil {
		if p.Cache.Disable != nil {
			kinds, err := toCacheKinds(p.Cache.Disable, "cache.disable")
			if err != nil {
				return err
			}
			cfg.Cache.Disable = kinds
		}
		if p.Cache.Clean != nil {
			kinds, err := toCacheKinds(p.Cache.Clean, "cache.clean")
			if err != nil {
				return err
			}
			cfg.Cache.Clean = kinds
		}
	}
	if p.Deployment != nil {
		setVal(&cfg.Deployment.Deployment, p.Deployment.Deployment)
		if p.Deployment.NoDeploymentFlags != nil {
			cfg.Deployment.NoDeploymentFlags = p.Deployment.NoDeploymentFlags
		}
		setVal(&cfg.Deployment.OnefileTempdir, p.Deployment.OnefileTempdir)
	}
	if p.Environment != nil && p.Environment.Variables != nil {
		cfg.Environment.Variables = p.Environment.Variables
	}
	if p.PostCompile != nil {
		setVal(&cfg.PostCompile.Run, p.PostCompile.Run)
		setVal(&cfg.PostCompile.Debugger, p.PostCompile.Debugger)
	}
	return p.applyExtras(cfg)
}

// applyBundling folds the platform block matching the active variant and
// rejects blocks for any other platform.
func (p *Patch) applyBundling(cfg *Config) error {
	if p.Windows != nil {
		if cfg.Bundling.OS != platform.Windows {
			return fmt.Errorf("spec declares a windows block but the host platform is %s", cfg.Bundling.OS)
		}
		w := cfg.Bundling.Windows
		setPath(&w.Icon, p.Windows.Icon)
		if p.Windows.ConsoleMode != nil {
			mode, err := ParseConsoleMode(*p.Windows.ConsoleMode)
			if err != nil {
				return fmt.Errorf("windows.console_mode: %w", err)
			}
			w.ConsoleMode = mode
		}
		setVal(&w.UACAdmin, p.Windows.UACAdmin)
		setPath(&w.SplashScreen, p.Windows.SplashScreen)
	}
	if p.MacOS != nil {
		if cfg.Bundling.OS != platform.MacOS {
			return fmt.Errorf("spec declares a macos block but the host platform is %s", cfg.Bundling.OS)
		}
		m := cfg.Bundling.MacOS
		setVal(&m.CreateAppBundle, p.MacOS.CreateAppBundle)
		setPath(&m.AppIcon, p.MacOS.AppIcon)
		setVal(&m.AppName, p.MacOS.AppName)
		setVal(&m.SignedAppName, p.MacOS.SignedAppName)
		setVal(&m.AppVersion, p.MacOS.AppVersion)
	}
	if p.Linux != nil {
		if cfg.Bundling.OS != platform.Linux {
			return fmt.Errorf("spec declares a linux block but the host platform is %s", cfg.Bundling.OS)
		}
		setPath(&cfg.Bundling.Linux.Icon, p.Linux.Icon)
	}
	return nil
}

// applyExtras accepts a string or a list of strings.
func (p *Patch) applyExtras(cfg *Config) error {
	switch v := p.Extras.(type) {
	case nil:
		return nil
	case string:
		cfg.Extras = Extras{Raw: v}
	case []string:
		cfg.Extras = Extras{List: v}
	case []any:
		list := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("extras: element %v (%T) is not a string", e, e)
			}
			list = append(list, s)
		}
		cfg.Extras = Extras{List: list}
	default:
		return fmt.Errorf("extras: expected a string or a list of strings, got %T", p.Extras)
	}
	return nil
}

func setVal[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setPath(dst *Path, src *string) {
	if src != nil {
		*dst = Path(*src)
	}
}

func setTristate(dst *Tristate, src *string, field string) error {
	if src == nil {
		return nil
	}
	t, err := ParseTristate(*src)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = t
	return nil
}

func toPaths(v []string) []Path {
	out := make([]Path, len(v))
	for i, s := range v {
		out[i] = Path(s)
	}
	return out
}

func toCacheKinds(v []string, field string) ([]CacheKind, error) {
	if v == nil {
		return nil, nil
	}
	out := make([]CacheKind, 0, len(v))
	for _, s := range v {
		kind, err := ParseCacheKind(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		out = append(out, kind)
	}
	return out, nil
}
