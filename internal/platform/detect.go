package platform

import (
	"os/exec"
)

// DetectCompiler resolves the invocation prefix for the Nuitka compiler.
// A nuitka binary on PATH wins; otherwise the host's Python interpreter is
// used with -m nuitka; as a last resort the bare command name is returned
// and left to the shell's PATH resolution at execution time.
func DetectCompiler(host OS) []string {
	if path, err := exec.LookPath("nuitka"); err == nil {
		return []string{path}
	}
	python := Pick(host, "python", "python3", "python3", "python3")
	if path, err := exec.LookPath(python); err == nil {
		return []string{path, "-m", "nuitka"}
	}
	return []string{"nuitka"}
}
