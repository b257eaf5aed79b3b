package config

import "fmt"

// BuildMode selects the overall packaging shape of the build. It is emitted
// manually by the builder as a single bare flag, never by the generic pass.
type BuildMode string

const (
	// ModeAccelerated is the compiler's own default. It emits no flag at all,
	// leaving the decision to the downstream tool.
	ModeAccelerated BuildMode = "accelerated"
	// ModeModule compiles into an importable extension module.
	ModeModule BuildMode = "module"
	// ModeStandalone produces a self-contained distribution directory.
	ModeStandalone BuildMode = "standalone"
	// ModeOnefile compresses a standalone build into a single binary.
	ModeOnefile BuildMode = "onefile"
)

// ChoiceValue implements serializer.Choice.
func (m BuildMode) ChoiceValue() string { return string(m) }

// ParseBuildMode validates and converts a spec-file string.
func ParseBuildMode(s string) (BuildMode, error) {
	switch m := BuildMode(s); m {
	case ModeAccelerated, ModeModule, ModeStandalone, ModeOnefile:
		return m, nil
	}
	return "", fmt.Errorf("unknown build mode %q (expected accelerated, module, standalone or onefile)", s)
}

// Backend names a C compiler backend. It is serialized directly as a bare
// flag (--clang, --msvc, ...), not under a flag name of its own.
type Backend string

const (
	BackendGCC     Backend = "gcc"
	BackendClang   Backend = "clang"
	BackendMSVC    Backend = "msvc"
	BackendMinGW64 Backend = "mingw64"
)

// ChoiceValue implements serializer.Choice.
func (b Backend) ChoiceValue() string { return string(b) }

// ParseBackend validates and converts a spec-file string.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendGCC, BackendClang, BackendMSVC, BackendMinGW64:
		return b, nil
	}
	return "", fmt.Errorf("unknown compiler backend %q (expected gcc, clang, msvc or mingw64)", s)
}

// Tristate is a yes/no/auto switch for flags the compiler accepts in
// --flag=yes form rather than as bare booleans.
type Tristate string

const (
	Yes  Tristate = "yes"
	No   Tristate = "no"
	Auto Tristate = "auto"
)

// ChoiceValue implements serializer.Choice.
func (t Tristate) ChoiceValue() string { return string(t) }

// ParseTristate validates and converts a spec-file string.
func ParseTristate(s string) (Tristate, error) {
	switch t := Tristate(s); t {
	case Yes, No, Auto:
		return t, nil
	}
	return "", fmt.Errorf("invalid value %q (expected yes, no or auto)", s)
}

// ConsoleMode controls console window handling for Windows builds.
type ConsoleMode string

const (
	ConsoleForce   ConsoleMode = "force"
	ConsoleDisable ConsoleMode = "disable"
	ConsoleAttach  ConsoleMode = "attach"
	ConsoleHide    ConsoleMode = "hide"
)

// ChoiceValue implements serializer.Choice.
func (c ConsoleMode) ChoiceValue() string { return string(c) }

// ParseConsoleMode validates and converts a spec-file string.
func ParseConsoleMode(s string) (ConsoleMode, error) {
	switch c := ConsoleMode(s); c {
	case ConsoleForce, ConsoleDisable, ConsoleAttach, ConsoleHide:
		return c, nil
	}
	return "", fmt.Errorf("unknown console mode %q (expected force, disable, attach or hide)", s)
}

// CacheKind names one of the compiler's cache categories.
type CacheKind string

const (
	CacheAll             CacheKind = "all"
	CacheCcache          CacheKind = "ccache"
	CacheBytecode        CacheKind = "bytecode"
	CacheCompression     CacheKind = "compression"
	CacheDLLDependencies CacheKind = "dll-dependencies"
)

// ChoiceValue implements serializer.Choice.
func (c CacheKind) ChoiceValue() string { return string(c) }

// ParseCacheKind validates and converts a spec-file string.
func ParseCacheKind(s string) (CacheKind, error) {
	switch c := CacheKind(s); c {
	case CacheAll, CacheCcache, CacheBytecode, CacheCompression, CacheDLLDependencies:
		return c, nil
	}
	return "", fmt.Errorf("unknown cache kind %q", s)
}
