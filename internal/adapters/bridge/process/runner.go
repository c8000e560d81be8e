package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/bnema/badb/internal/domain"
	"github.com/bnema/badb/internal/ports"
)

type runFunc func(ctx context.Context, path string, args []string) (stdout string, stderr string, err error)

// Runner starts the bridge as a child process of badb.
type Runner struct {
	lookPath func(file string) (string, error)
	run      runFunc
}

var _ ports.BridgeRunner = (*Runner)(nil)

func NewRunner() *Runner {
	return &Runner{lookPath: exec.LookPath, run: runCommand}
}

func (r *Runner) Run(ctx context.Context, program string, args []string) (ports.BridgeResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.BridgeResult{}, err
	}

	path, err := r.lookPath(program)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ports.BridgeResult{}, fmt.Errorf("%w: %s not found in PATH", domain.ErrBridgeUnavailable, program)
		}
		return ports.BridgeResult{}, fmt.Errorf("locate %s: %w", program, err)
	}

	stdout, stderr, err := r.run(ctx, path, args)
	result := ports.BridgeResult{Stdout: stdout, Stderr: stderr}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	return ports.BridgeResult{}, fmt.Errorf("run %s: %w", program, err)
}

func runCommand(ctx context.Context, path string, args []string) (string, string, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
