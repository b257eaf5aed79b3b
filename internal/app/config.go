package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// SpecPath points at a spec file or a directory containing exactly one.
	// Empty means translate the platform default configuration.
	SpecPath string
	// Passthrough arguments are handed to the compiler verbatim instead of
	// a translated configuration. Ignored when SpecPath is set.
	Passthrough []string

	DryRun     bool
	ExportPath string
	// Compiler overrides the detected compiler invocation prefix, split on
	// whitespace (e.g. "python -m nuitka").
	Compiler string

	LogFormat string
	LogLevel  string
}
