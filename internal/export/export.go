// Package export renders a resolved compiler command into a build script,
// with line continuation syntax appropriate for the target file format.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteScript writes the runner prefix and argument list to path as a .bat,
// .sh or .ps1 script. Any other extension is an error. Tokens are written
// as-is; the argument list carries no shell quoting of its own.
func WriteScript(path string, runner []string, args []string) error {
	head := strings.Join(runner, " ")

	var b strings.Builder
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bat":
		b.WriteString("@echo off\n")
		b.WriteString("REM Generated build script\n\n")
		b.WriteString("setlocal\n\n")
		b.WriteString(head)
		for _, arg := range args {
			b.WriteString(" ^\n    " + arg)
		}
		b.WriteString("\n\nendlocal\n")
	case ".sh":
		b.WriteString("#!/bin/sh\n")
		b.WriteString("# Generated build script\n\n")
		b.WriteString("set -e\n\n")
		b.WriteString(strings.Join(append([]string{head}, args...), " \\\n    "))
		b.WriteString("\n")
	case ".ps1":
		b.WriteString("#!/usr/bin/env pwsh\n")
		b.WriteString("# Generated build script\n\n")
		b.WriteString(head + "`\n")
		for _, arg := range args {
			b.WriteString("    " + arg + "`\n")
		}
		b.WriteString("\n")
	default:
		return fmt.Errorf("unsupported script extension %q (expected .bat, .sh or .ps1)", ext)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o755); err != nil {
		return fmt.Errorf("failed to write build script: %w", err)
	}
	return nil
}
