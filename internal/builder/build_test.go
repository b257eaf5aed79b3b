package builder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/nbuild/internal/config"
	"github.com/vk/nbuild/internal/platform"
)

func count(frags []string, want string) int {
	n := 0
	for _, f := range frags {
		if f == want {
			n++
		}
	}
	return n
}

func TestBuild_DefaultConfiguration(t *testing.T) {
	t.Parallel()

	args, err := Build(config.DefaultFor(platform.Linux))
	require.NoError(t, err)

	require.NotEmpty(t, args)
	assert.Equal(t, "--standalone", args[0], "the packaging mode flag must come first")
	assert.Contains(t, args, "--lto=yes")
	assert.Equal(t, "main.py", args[len(args)-1], "the entry file must be the trailing positional")
}

func TestBuild_DefaultConfiguration_FullArgv(t *testing.T) {
	t.Parallel()

	args, err := Build(config.DefaultFor(platform.Linux))
	require.NoError(t, err)

	want := []string{
		"--standalone",
		"--output-dir=dist",
		"--output-filename=my_program",
		"--remove-output",
		"--show-progress",
		"--lto=yes",
		"--enable-asserts",
		"--prefer-source-code",
		"--jobs=4",
		"--python-flag=no_site",
		"--debug",
		"--unstripped",
		"--show-modules",
		"main.py",
	}
	require.Empty(t, cmp.Diff(want, args))
}

func TestBuild_ModuleMode(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFor(platform.Linux)
	cfg.Mode = config.ModeModule

	args, err := Build(cfg)
	require.NoError(t, err)

	assert.Contains(t, args, "--module")
	assert.NotContains(t, args, "--standalone")
	assert.NotContains(t, args, "--onefile")
}

func TestBuild_AcceleratedSentinelEmitsNoModeFlag(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFor(platform.Linux)
	cfg.Mode = config.ModeAccelerated

	args, err := Build(cfg)
	require.NoError(t, err)

	assert.NotContains(t, args, "--accelerated")
	assert.NotContains(t, args, "--standalone")
}

func TestBuild_ModeFlagLiteralOverride(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFor(platform.Linux)
	cfg.Mode = config.ModeStandalone
	cfg.ModeFlag = "onefile"

	args, err := Build(cfg)
	require.NoError(t, err)

	assert.Equal(t, "--onefile", args[0])
	assert.NotContains(t, args, "--standalone")
}

func TestBuild_RunFlagEmittedExactlyOnce(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFor(platform.Linux)
	cfg.PostCompile.Run = true

	args, err := Build(cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, count(args, "--run"))
	// The second fragment, right after the mode flag.
	assert.Equal(t, "--run", args[1])
	// Serialization must not flip the caller's configuration.
	assert.True(t, cfg.PostCompile.Run)
}

func TestBuild_RunFlagAbsentWhenFalse(t *testing.T) {
	t.Parallel()

	args, err := Build(config.DefaultFor(platform.Linux))
	require.NoError(t, err)
	assert.Zero(t, count(args, "--run"))
}

func TestBuild_ExtrasString(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFor(platform.Linux)
	cfg.Extras = config.Extras{Raw: "--custom-flag --other=val"}

	args, err := Build(cfg)
	require.NoError(t, err)

	n := len(args)
	require.GreaterOrEqual(t, n, 4)
	assert.Equal(t, "--custom-flag", args[n-3])
	assert.Equal(t, "--other=val", args[n-2])
	assert.Equal(t, "main.py", args[n-1])
}

func TestBuild_ExtrasListAppendedVerbatim(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFor(platform.Linux)
	cfg.Extras = config.Extras{List: []string{"--weird arg with spaces"}}

	args, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, "--weird arg with spaces", args[len(args)-2])
}

func TestBuild_EntryAlwaysLast(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFor(platform.Linux)
	cfg.Entry = `src\app\main.py`
	cfg.Packages.Include = []string{"requests"}
	cfg.Extras = config.Extras{Raw: "--custom"}
	cfg.PostCompile.Run = true

	args, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, "src/app/main.py", args[len(args)-1])
}

func TestBuild_NoEntryNoPositional(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFor(platform.Linux)
	cfg.Entry = ""

	args, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, "--show-modules", args[len(args)-1])
}

func TestBuild_PackageOrderSurvives(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFor(platform.Linux)
	cfg.Packages.Include = []string{"pkg.a", "pkg.b"}
	cfg.Packages.Exclude = []string{"pkg.a"}

	args, err := Build(cfg)
	require.NoError(t, err)

	includeA := -1
	excludeA := -1
	for i, a := range args {
		switch a {
		case "--include-package=pkg.a":
			includeA = i
		case "--exclude-module=pkg.a":
			excludeA = i
		}
	}
	require.NotEqual(t, -1, includeA)
	require.NotEqual(t, -1, excludeA)
	assert.Greater(t, excludeA, includeA, "a later exclusion must be able to override an earlier inclusion")
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFor(platform.Linux)
	cfg.Plugins.Enabled = []string{"tk-inter", "numpy"}
	cfg.Cache.Clean = []config.CacheKind{config.CacheAll}

	first, err := Build(cfg)
	require.NoError(t, err)
	second, err := Build(cfg)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first, second))
}
