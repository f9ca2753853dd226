// Package driver spawns the external ffmpeg/ffprobe binaries and captures
// their exit status and output streams.
//
// The orchestrator in package ffmpeg only depends on the Runner interface,
// so tests can substitute a fake process without touching os/exec.
package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Result holds the outcome of a single external process invocation.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Error reports a process that exited non-zero or failed to start.
// ExitCode is -1 when the process never started.
type Error struct {
	ExitCode int
	Stderr   string // trimmed stderr captured from the process
	cause    error
}

func (e *Error) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("process exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("process exited with code %d: %s", e.ExitCode, e.Stderr)
}

// Unwrap returns the underlying exec error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Runner executes an external binary with the given argument vector and
// blocks until it exits.
type Runner interface {
	// Run executes the binary and returns its captured output. A non-zero
	// exit or spawn failure is reported as a *Error.
	Run(ctx context.Context, args []string) (Result, error)
}

// StreamRunner is implemented by runners that can tee stderr to a writer
// while the process runs, line by line as the process produces it. The
// orchestrator uses this for progress parsing when a callback is registered.
type StreamRunner interface {
	RunStream(ctx context.Context, args []string, stderr io.Writer) (Result, error)
}

// ExecRunner runs a fixed binary through os/exec.
type ExecRunner struct {
	binary string
	log    zerolog.Logger
}

// NewExecRunner creates a runner for the given binary name or path.
// An empty name defaults to "ffmpeg".
func NewExecRunner(binary string, log zerolog.Logger) *ExecRunner {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	return &ExecRunner{binary: binary, log: log}
}

// Binary returns the binary name this runner invokes.
func (r *ExecRunner) Binary() string {
	return r.binary
}

// Run executes the binary and captures stdout and stderr.
func (r *ExecRunner) Run(ctx context.Context, args []string) (Result, error) {
	return r.run(ctx, args, nil)
}

// RunStream executes the binary, additionally copying stderr to tap as the
// process produces it.
func (r *ExecRunner) RunStream(ctx context.Context, args []string, tap io.Writer) (Result, error) {
	return r.run(ctx, args, tap)
}

func (r *ExecRunner) run(ctx context.Context, args []string, tap io.Writer) (Result, error) {
	if len(args) == 0 {
		return Result{ExitCode: -1}, &Error{ExitCode: -1, cause: errors.New("empty argument list")}
	}

	r.log.Debug().Str("binary", r.binary).Strs("args", args).Msg("spawning process")

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdin = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout

	var err error
	if tap == nil {
		cmd.Stderr = &stderr
		err = cmd.Run()
	} else {
		// Read stderr on the calling goroutine so tap writes happen
		// synchronously inside the blocking call.
		err = r.runTapped(cmd, &stderr, tap)
	}
	res := Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	} else {
		res.ExitCode = -1
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		res.ExitCode = exitCode
		return res, &Error{
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(stderr.String()),
			cause:    err,
		}
	}

	return res, nil
}

func (r *ExecRunner) runTapped(cmd *exec.Cmd, stderr *bytes.Buffer, tap io.Writer) error {
	pipe, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	// Copy errors mean the pipe closed early; Wait reports the real outcome.
	_, _ = io.Copy(io.MultiWriter(stderr, tap), pipe)
	return cmd.Wait()
}
