package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
)

var ErrToolchain = errors.New("toolchain invocation failed")

// A module toolchain subcommand.
type Op string

const (
	OpDownload Op = "download" // Populates the module cache.
	OpVerify   Op = "verify"   // Checks the cache against the checksum manifest.
	OpVendor   Op = "vendor"   // Materializes the vendor tree from the cache.
)

// Output of a toolchain subcommand execution.
type Result struct {
	ExitCode int    // Exit code of the process.
	Stdout   string // Captured standard output.
	Stderr   string // Captured standard error.
}

// Runs module toolchain subcommands against a module root.
type Runner interface {
	Run(ctx context.Context, op Op, dir string) (*Result, error)
}

// Invokes the real "go" binary.
type GoTool struct {
	binary string
}

// Creates a [GoTool] using the "go" binary from PATH.
func New() *GoTool {
	return &GoTool{binary: "go"}
}

// Runs "go mod <op>" with dir as the working directory.
//
// The argument list is fixed; nothing is passed through a shell. Stdout and
// stderr are captured in full. A non-zero exit code is not treated as an
// error here; the caller decides how to handle it. An error is returned
// only when the process could not be started at all.
func (t *GoTool) Run(ctx context.Context, op Op, dir string) (*Result, error) {
	cmd := exec.CommandContext(ctx, t.binary, "mod", string(op))
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("invoking toolchain", "binary", t.binary, "op", op, "dir", dir)

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("%w: %s mod %s: %w", ErrToolchain, t.binary, op, err)
	}

	return &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
