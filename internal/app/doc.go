// Package app wires the application together: it owns the logger, resolves
// the spec file to a configuration, runs the translator, and dispatches the
// result to a dry-run print, a script export, or an actual compiler run.
package app
