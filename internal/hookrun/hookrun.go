// SPDX-License-Identifier: MPL-2.0

// Package hookrun executes the hook scripts a manifest declares for a
// lifecycle event, using the embedded mvdan/sh interpreter so hooks behave
// the same on every platform without relying on a host shell.
package hookrun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"widgetcfg/pkg/types"
	"widgetcfg/pkg/widgetfile"
)

// ErrHookFailed is the sentinel error wrapped by HookFailedError.
var ErrHookFailed = errors.New("hook failed")

// HookFailedError is returned when a hook script exits non-zero or cannot
// be run. It wraps ErrHookFailed for errors.Is() compatibility.
type HookFailedError struct {
	Type     types.HookType
	Src      string
	ExitCode int
	Cause    error
}

// Error implements the error interface.
func (e *HookFailedError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("hook %s (%s) exited with status %d", e.Type, e.Src, e.ExitCode)
	}
	return fmt.Sprintf("hook %s (%s) failed: %v", e.Type, e.Src, e.Cause)
}

// Unwrap returns ErrHookFailed for errors.Is() compatibility.
func (e *HookFailedError) Unwrap() error { return ErrHookFailed }

// Runner executes hook scripts. The zero value is not usable; create one
// with New.
type Runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdIO wires the runner's standard streams.
func WithStdIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger sets the structured logger used for per-hook progress.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// New creates a Runner writing to the process's standard streams unless
// overridden.
func New(opts ...Option) *Runner {
	r := &Runner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every hook the manifest declares for hookType, in document
// order, stopping at the first failure. Scripts are resolved relative to
// the manifest's directory and executed with the manifest directory as the
// working directory. A manifest with no hooks for the event is not an
// error.
func (r *Runner) Run(ctx context.Context, wf *widgetfile.Widgetfile, hookType types.HookType) error {
	if err := hookType.Validate(); err != nil {
		return err
	}

	hooks := wf.HooksByType(hookType)
	if len(hooks) == 0 {
		r.logger.Debug("no hooks declared", "type", hookType)
		return nil
	}

	baseDir := filepath.Dir(wf.Path())
	for _, h := range hooks {
		r.logger.Info("running hook", "type", h.Type, "src", h.Src)
		if err := r.runScript(ctx, baseDir, wf.Path(), h); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runScript(ctx context.Context, baseDir, manifestPath string, h widgetfile.Hook) error {
	scriptPath := h.Src
	if !filepath.IsAbs(scriptPath) {
		scriptPath = filepath.Join(baseDir, scriptPath)
	}

	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return &HookFailedError{Type: h.Type, Src: h.Src, Cause: err}
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(string(script)), h.Src)
	if err != nil {
		return &HookFailedError{Type: h.Type, Src: h.Src, Cause: fmt.Errorf("script syntax error: %w", err)}
	}

	env := append(os.Environ(),
		"WIDGETCFG_HOOK_TYPE="+h.Type.String(),
		"WIDGETCFG_MANIFEST="+manifestPath,
	)
	runner, err := interp.New(
		interp.Dir(baseDir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(r.stdin, r.stdout, r.stderr),
	)
	if err != nil {
		return &HookFailedError{Type: h.Type, Src: h.Src, Cause: err}
	}

	if err := runner.Run(ctx, prog); err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return &HookFailedError{Type: h.Type, Src: h.Src, ExitCode: int(status)}
		}
		return &HookFailedError{Type: h.Type, Src: h.Src, Cause: err}
	}
	return nil
}
