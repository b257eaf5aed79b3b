package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/nbuild/internal/config"
)

// specFile is the HCL shape of a build spec: one optional block per option
// group plus a top-level extras attribute. The block bodies decode straight
// into the shared patch types; extras stays an expression because it may be
// either a string or a list.
type specFile struct {
	Build        *config.BuildPatch        `hcl:"build,block"`
	Output       *config.OutputPatch       `hcl:"output,block"`
	Optimization *config.OptimizationPatch `hcl:"optimization,block"`
	Parallel     *config.ParallelPatch     `hcl:"parallel,block"`
	Python       *config.PythonPatch       `hcl:"python,block"`
	Compiler     *config.CompilerPatch     `hcl:"compiler,block"`
	Plugins      *config.PluginsPatch      `hcl:"plugins,block"`
	Packages     *config.PackagesPatch     `hcl:"packages,block"`
	Data         *config.DataPatch         `hcl:"data,block"`
	Windows      *config.WindowsPatch      `hcl:"windows,block"`
	MacOS        *config.MacOSPatch        `hcl:"macos,block"`
	Linux        *config.LinuxPatch        `hcl:"linux,block"`
	Metadata     *config.MetadataPatch     `hcl:"metadata,block"`
	Debug        *config.DebugPatch        `hcl:"debug,block"`
	Console      *config.ConsolePatch      `hcl:"console,block"`
	Cache        *config.CachePatch        `hcl:"cache,block"`
	Deployment   *config.DeploymentPatch   `hcl:"deployment,block"`
	Environment  *config.EnvironmentPatch  `hcl:"environment,block"`
	PostCompile  *config.PostCompilePatch  `hcl:"post_compile,block"`

	Extras hcl.Expression `hcl:"extras,optional"`
}

// patch converts the decoded file into the format-agnostic patch, leaving
// extras for separate expression handling.
func (f *specFile) patch() *config.Patch {
	return &config.Patch{
		Build:        f.Build,
		Output:       f.Output,
		Optimization: f.Optimization,
		Parallel:     f.Parallel,
		Python:       f.Python,
		Compiler:     f.Compiler,
		Plugins:      f.Plugins,
		Packages:     f.Packages,
		Data:         f.Data,
		Windows:      f.Windows,
		MacOS:        f.MacOS,
		Linux:        f.Linux,
		Metadata:     f.Metadata,
		Debug:        f.Debug,
		Console:      f.Console,
		Cache:        f.Cache,
		Deployment:   f.Deployment,
		Environment:  f.Environment,
		PostCompile:  f.PostCompile,
	}
}
