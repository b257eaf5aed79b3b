package config

import "github.com/vk/nbuild/internal/serializer"

// Output controls where build artifacts go and how they are named.
type Output struct {
	Dir          Path
	Filename     string
	RemoveOutput bool
	ShowProgress bool
}

// Fields implements Group.
func (o *Output) Fields() []Field {
	return []Field{
		{Name: "output_dir", Flag: "output-dir", Value: optPath(o.Dir)},
		{Name: "output_filename", Flag: "output-filename", Value: optString(o.Filename)},
		{Name: "remove_output", Flag: "remove-output", Value: o.RemoveOutput},
		{Name: "show_progress", Flag: "show-progress", Value: o.ShowProgress},
	}
}

// Optimization holds performance-related toggles.
type Optimization struct {
	LTO              Tristate
	EnableAsserts    bool
	NoOptimize       bool
	PreferSourceCode bool
	StaticLibpython  Tristate
}

// Fields implements Group.
func (o *Optimization) Fields() []Field {
	return []Field{
		{Name: "lto", Value: optChoice(o.LTO)},
		{Name: "enable_asserts", Flag: "enable-asserts", Value: o.EnableAsserts},
		{Name: "nooptimize", Value: o.NoOptimize},
		{Name: "prefer_source_code", Flag: "prefer-source-code", Value: o.PreferSourceCode},
		{Name: "static_libpython", Flag: "static-libpython", Value: optChoice(o.StaticLibpython)},
	}
}

// Parallel controls compilation parallelism.
type Parallel struct {
	// Jobs is the number of parallel C compilation jobs. Zero means leave the
	// decision to the compiler.
	Jobs int
}

// Fields implements Group.
func (p *Parallel) Fields() []Field {
	return []Field{
		{Name: "jobs", Value: optInt(p.Jobs)},
	}
}

// Python holds interpreter version and flag selection.
type Python struct {
	Version string
	Flags   []string
	PyDebug bool
}

// Fields implements Group.
func (p *Python) Fields() []Field {
	return []Field{
		{Name: "python_version", Flag: "python-version", Value: optString(p.Version)},
		{Name: "flags", Emit: serializer.Iterable("python-flag", nil), Value: strSeq(p.Flags)},
		{Name: "python_debug", Flag: "python-debug", Value: p.PyDebug},
	}
}

// Compiler controls the C compiler backend and build mechanics.
type Compiler struct {
	// Backend picks a specific C compiler. Empty lets the downstream tool
	// choose. The backend name is its own flag (--clang, --msvc, ...).
	Backend        Backend
	FollowSymlinks bool
}

// Fields implements Group.
func (c *Compiler) Fields() []Field {
	return []Field{
		{Name: "backend", Emit: serializer.Direct(), Value: optChoice(c.Backend)},
		{Name: "follow_symlinks", Flag: "follow-symlinks", Value: c.FollowSymlinks},
	}
}

// Plugins controls plugin enablement and diagnostics.
type Plugins struct {
	Enabled     []string
	UserPlugins []Path
	NoDetection bool
	Trace       bool
}

// Fields implements Group.
func (p *Plugins) Fields() []Field {
	return []Field{
		{Name: "enabled", Emit: serializer.Iterable("enable-plugin", nil), Value: strSeq(p.Enabled)},
		{Name: "user_plugins", Emit: serializer.Iterable("user-plugin", nil), Value: seq(p.UserPlugins)},
		{Name: "no_detection", Flag: "plugin-no-detection", Value: p.NoDetection},
		{Name: "trace", Flag: "trace-plugins", Value: p.Trace},
	}
}

// Packages handles manual module and package inclusion or exclusion. A later
// exclusion can override an earlier inclusion of the same name, so field
// order here is load-bearing.
type Packages struct {
	Include         []string
	Exclude         []string
	NofollowImports bool
	NofollowTo      []string
}

// Fields implements Group.
func (p *Packages) Fields() []Field {
	return []Field{
		{Name: "include", Emit: serializer.Iterable("include-package", nil), Value: strSeq(p.Include)},
		{Name: "exclude", Emit: serializer.Iterable("exclude-module", nil), Value: strSeq(p.Exclude)},
		{Name: "nofollow_imports", Flag: "nofollow-imports", Value: p.NofollowImports},
		{Name: "nofollow_to", Emit: serializer.Iterable("nofollow-import-to", nil), Value: strSeq(p.NofollowTo)},
	}
}

// Data embeds data files and directories into the build.
type Data struct {
	IncludeFiles []Path
	IncludeDirs  []Path
}

// Fields implements Group.
func (d *Data) Fields() []Field {
	return []Field{
		{Name: "include_files", Emit: serializer.Iterable("include-data-files", nil), Value: seq(d.IncludeFiles)},
		{Name: "include_dirs", Emit: serializer.Iterable("include-data-dir", nil), Value: seq(d.IncludeDirs)},
	}
}

// Metadata carries version resource information stamped into the binary.
type Metadata struct {
	CompanyName     string
	ProductName     string
	FileVersion     string
	ProductVersion  string
	FileDescription string
	Copyright       string
	Trademarks      string
}

// Fields implements Group.
func (m *Metadata) Fields() []Field {
	return []Field{
		{Name: "company_name", Flag: "company-name", Value: optString(m.CompanyName)},
		{Name: "product_name", Flag: "product-name", Value: optString(m.ProductName)},
		{Name: "file_version", Flag: "file-version", Value: optString(m.FileVersion)},
		{Name: "product_version", Flag: "product-version", Value: optString(m.ProductVersion)},
		{Name: "file_description", Flag: "file-description", Value: optString(m.FileDescription)},
		{Name: "copyright", Value: optString(m.Copyright)},
		{Name: "trademarks", Value: optString(m.Trademarks)},
	}
}

// Debug holds debug symbol and runtime tracing toggles.
type Debug struct {
	DebugSymbols   bool
	Unstripped     bool
	TraceExecution bool
	ShowMemory     bool
	ShowModules    bool
}

// Fields implements Group.
func (d *Debug) Fields() []Field {
	return []Field{
		{Name: "debug_symbols", Flag: "debug", Value: d.DebugSymbols},
		{Name: "unstripped", Value: d.Unstripped},
		{Name: "trace_execution", Flag: "trace-execution", Value: d.TraceExecution},
		{Name: "show_memory", Flag: "show-memory", Value: d.ShowMemory},
		{Name: "show_modules", Flag: "show-modules", Value: d.ShowModules},
	}
}

// Console controls compiler console verbosity.
type Console struct {
	Verbose   bool
	Quiet     bool
	ShowScons bool
}

// Fields implements Group.
func (c *Console) Fields() []Field {
	return []Field{
		{Name: "verbose", Value: c.Verbose},
		{Name: "quiet", Value: c.Quiet},
		{Name: "show_scons", Flag: "show-scons", Value: c.ShowScons},
	}
}

// Cache controls the compiler's local cache categories.
type Cache struct {
	Disable []CacheKind
	Clean   []CacheKind
}

// Fields implements Group.
func (c *Cache) Fields() []Field {
	return []Field{
		{Name: "disable", Emit: serializer.Iterable("disable-cache", nil), Value: seq(c.Disable)},
		{Name: "clean", Emit: serializer.Iterable("clean-cache", nil), Value: seq(c.Clean)},
	}
}

// Deployment toggles end-user deployment mode and its opt-outs.
type Deployment struct {
	Deployment        bool
	NoDeploymentFlags []string
	OnefileTempdir    string
}

// Fields implements Group.
func (d *Deployment) Fields() []Field {
	return []Field{
		{Name: "deployment", Value: d.Deployment},
		{Name: "no_deployment_flags", Emit: serializer.Iterable("no-deployment-flag", nil), Value: strSeq(d.NoDeploymentFlags)},
		{Name: "onefile_tempdir", Flag: "onefile-tempdir-spec", Value: optString(d.OnefileTempdir)},
	}
}

// Environment forces environment variables into the compiled program's
// runtime, each given as KEY=VALUE.
type Environment struct {
	Variables []string
}

// Fields implements Group.
func (e *Environment) Fields() []Field {
	return []Field{
		{Name: "variables", Emit: serializer.Iterable("force-runtime-environment-variable", nil), Value: strSeq(e.Variables)},
	}
}

// PostCompile describes actions taken after a successful build. Run is bound
// to a serializer here, but the builder emits it manually and clears it from
// the copy handed to the generic pass, so it is never emitted twice.
type PostCompile struct {
	Run      bool
	Debugger bool
}

// Fields implements Group.
func (p *PostCompile) Fields() []Field {
	return []Field{
		{Name: "run", Emit: serializer.BoolFlag("run"), Value: p.Run},
		{Name: "debugger", Value: p.Debugger},
	}
}
