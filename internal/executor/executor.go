// Package executor invokes the resolved compiler command as a subprocess.
// Arguments are passed exec-style as a slice; no shell is involved, so the
// token list needs no quoting or escaping.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/vk/nbuild/internal/ctxlog"
)

// Executor runs compiler commands with wired standard streams.
type Executor struct {
	outW io.Writer
	errW io.Writer
}

// New creates an Executor writing the subprocess output to the given writers.
func New(outW, errW io.Writer) *Executor {
	return &Executor{outW: outW, errW: errW}
}

// Run executes argv and blocks until the subprocess exits or the context is
// cancelled. The subprocess inherits stdin for compiler prompts.
func (e *Executor) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executing compiler command.", "argv", argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = e.outW
	cmd.Stderr = e.errW
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("compiler invocation failed: %w", err)
	}
	logger.Debug("Compiler command finished.")
	return nil
}
