package config

import (
	"strings"

	"github.com/vk/nbuild/internal/platform"
)

// Extras carries free-form arguments appended verbatim after the generic
// pass. Either a single whitespace-delimited string or an explicit list may
// be given; the list wins when both are set. The string form is split
// naively on whitespace, so arguments containing spaces must use the list.
type Extras struct {
	Raw  string
	List []string
}

// Args resolves the extras into individual fragments.
func (e Extras) Args() []string {
	if len(e.List) > 0 {
		return e.List
	}
	if e.Raw != "" {
		return strings.Fields(e.Raw)
	}
	return nil
}

// Config is the root of the configuration tree. Group order is fixed and
// significant: it determines the order of emitted arguments. Mode, ModeFlag,
// Extras and Entry are handled manually by the builder and never appear in
// the generic field table.
type Config struct {
	// Mode selects the packaging shape. ModeAccelerated emits nothing.
	Mode BuildMode
	// ModeFlag, when set, overrides Mode with a literal bare flag name
	// (emitted as --<ModeFlag>).
	ModeFlag string

	Output       *Output
	Optimization *Optimization
	Parallel     *Parallel
	Python       *Python
	Compiler     *Compiler
	Plugins      *Plugins
	Packages     *Packages
	Data         *Data
	Bundling     *Bundling
	Metadata     *Metadata
	Debug        *Debug
	Console      *Console
	Cache        *Cache
	Deployment   *Deployment
	Environment  *Environment
	PostCompile  *PostCompile

	// Extras are appended after all generic fragments, unvalidated.
	Extras Extras
	// Entry is the script to compile, appended last as a bare positional
	// argument in forward-slash form.
	Entry Path
}

// Fields implements Group. The table covers the nested groups only; the
// manually-emitted root fields are deliberately absent so the generic pass
// cannot duplicate them.
func (c *Config) Fields() []Field {
	return []Field{
		groupField("output", c.Output),
		groupField("optimization", c.Optimization),
		groupField("parallel", c.Parallel),
		groupField("python", c.Python),
		groupField("compiler", c.Compiler),
		groupField("plugins", c.Plugins),
		groupField("packages", c.Packages),
		groupField("data", c.Data),
		groupField("bundling", c.Bundling),
		groupField("metadata", c.Metadata),
		groupField("debug", c.Debug),
		groupField("console", c.Console),
		groupField("cache", c.Cache),
		groupField("deployment", c.Deployment),
		groupField("environment", c.Environment),
		groupField("post_compile", c.PostCompile),
	}
}

// Default returns a fully-populated configuration with host-platform
// defaults resolved.
func Default() *Config {
	return DefaultFor(platform.Host())
}

// DefaultFor returns the default configuration for an explicit host, which
// keeps platform-dependent defaults testable on any machine.
func DefaultFor(host platform.OS) *Config {
	return &Config{
		Mode: ModeStandalone,
		Output: &Output{
			Dir:          "dist",
			Filename:     "my_program",
			RemoveOutput: true,
			ShowProgress: true,
		},
		Optimization: &Optimization{
			LTO:              Yes,
			EnableAsserts:    true,
			PreferSourceCode: true,
		},
		Parallel: &Parallel{Jobs: 4},
		Python:   &Python{Flags: []string{"no_site"}},
		Compiler: &Compiler{},
		Plugins:  &Plugins{},
		Packages: &Packages{},
		Data:     &Data{},
		Bundling: NewBundling(host),
		Metadata: &Metadata{},
		Debug: &Debug{
			DebugSymbols: true,
			Unstripped:   true,
			ShowModules:  true,
		},
		Console:     &Console{},
		Cache:       &Cache{},
		Deployment:  &Deployment{},
		Environment: &Environment{},
		PostCompile: &PostCompile{},
		Entry:       "main.py",
	}
}

// Clean returns a derived copy with the manually-emitted fields neutralized:
// the mode selection is cleared and PostCompile.Run is forced off. The
// receiver is not mutated and remains valid for inspection or reuse.
func (c *Config) Clean() *Config {
	out := *c
	out.Mode = ""
	out.ModeFlag = ""
	if c.PostCompile != nil {
		pc := *c.PostCompile
		pc.Run = false
		out.PostCompile = &pc
	}
	return &out
}
