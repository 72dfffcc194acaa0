// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package execx runs external tools with the parent's terminal attached and
// reports their exit status.
package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	// CodeNotFound is reported when the binary could not be started.
	CodeNotFound = 127
	// CodeCanceled is reported when the context ended before the process exited.
	CodeCanceled = 124
)

// Result is the outcome of one process invocation.
type Result struct {
	Code int
	Err  error
}

// OK reports whether the process exited with status 0.
func (r Result) OK() bool { return r.Code == 0 }

// Executor starts a process and waits for it.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// OSExecutor is the production Executor backed by os/exec. Child output is
// streamed, never captured.
type OSExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Trace, when non-nil, receives "+ <command line>" before each spawn.
	Trace io.Writer
}

// NewOSExecutor returns an executor wired to the process's standard streams.
// Tracing is enabled when PKGPUBLISH_DEBUG=1.
func NewOSExecutor() *OSExecutor {
	e := &OSExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if os.Getenv("PKGPUBLISH_DEBUG") == "1" {
		e.Trace = os.Stderr
	}
	return e
}

func (o *OSExecutor) Run(ctx context.Context, name string, args ...string) Result {
	if o.Trace != nil {
		fmt.Fprintf(o.Trace, "+ %s\n", CommandLine(name, args...))
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = o.Stdin
	cmd.Stdout = o.Stdout
	cmd.Stderr = o.Stderr

	err := cmd.Run()
	return Result{Code: exitCode(ctx, err), Err: err}
}

func exitCode(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}
	if ctx.Err() != nil {
		return CodeCanceled
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if code := ee.ExitCode(); code > 0 {
			return code
		}
		// Killed by a signal.
		return 1
	}
	return CodeNotFound
}

// CommandLine joins name and args for display.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
