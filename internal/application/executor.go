package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/badb/internal/domain"
	"github.com/bnema/badb/internal/ports"
	"github.com/rs/zerolog"
)

// ambiguousDeviceError marks a bridge failure caused by several attached
// devices. It never leaves the Executor.
type ambiguousDeviceError struct {
	toolErr *domain.ToolError
}

func (e *ambiguousDeviceError) Error() string {
	return e.toolErr.Error()
}

func (e *ambiguousDeviceError) Unwrap() error {
	return e.toolErr
}

type deviceSelector interface {
	SelectDevice(ctx context.Context) (domain.DeviceID, error)
}

type Executor struct {
	runner   ports.BridgeRunner
	session  *Session
	selector deviceSelector
	opts     Options
	logger   zerolog.Logger
}

func newExecutor(runner ports.BridgeRunner, session *Session, opts Options, logger zerolog.Logger) *Executor {
	return &Executor{
		runner:  runner,
		session: session,
		opts:    opts,
		logger:  logger,
	}
}

// Run issues args against the bridge, scoped to the pinned device if any.
// When the bridge reports several attached devices, the user is asked to pick
// one and args are replayed against it.
func (e *Executor) Run(ctx context.Context, args []string) (string, error) {
	pinned, _ := e.session.PinnedDevice()
	stdout, err := e.runOnce(ctx, pinned, args)

	for attempt := 0; ; attempt++ {
		var ambiguous *ambiguousDeviceError
		if !errors.As(err, &ambiguous) {
			return stdout, err
		}
		if attempt >= e.opts.MaxRetries || e.selector == nil {
			e.logger.Debug().Int("attempts", attempt).Msg("device ambiguity persists after retry")
			return "", ambiguous.toolErr
		}

		selected, selectErr := e.selector.SelectDevice(ctx)
		if selectErr != nil {
			return "", selectErr
		}
		e.logger.Debug().Str("device", string(selected)).Strs("args", args).Msg("replaying command on selected device")

		stdout, err = e.runOnce(ctx, selected, args)
	}
}

// RunOn issues args against device exactly once without touching the session.
// An empty device leaves device selection to the bridge.
func (e *Executor) RunOn(ctx context.Context, device domain.DeviceID, args []string) (string, error) {
	stdout, err := e.runOnce(ctx, device, args)

	var ambiguous *ambiguousDeviceError
	if errors.As(err, &ambiguous) {
		return "", ambiguous.toolErr
	}

	return stdout, err
}

func (e *Executor) runOnce(ctx context.Context, device domain.DeviceID, args []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	argv := bridgeArgs(device, args)
	e.logger.Debug().Str("program", e.opts.Program).Strs("args", argv).Msg("running bridge command")

	result, err := e.runner.Run(ctx, e.opts.Program, argv)
	if err != nil {
		return "", fmt.Errorf("launch %s: %w", e.opts.Program, err)
	}
	if result.Success() {
		return result.Stdout, nil
	}

	toolErr := &domain.ToolError{
		Program:  e.opts.Program,
		Args:     argv,
		ExitCode: result.ExitCode,
		Stderr:   result.Stderr,
	}
	if strings.Contains(result.Stderr, e.opts.AmbiguityMarker) {
		e.logger.Debug().Msg("bridge reported more than one device")
		return "", &ambiguousDeviceError{toolErr: toolErr}
	}

	e.logger.Debug().Int("exit_code", result.ExitCode).Msg("bridge command failed")
	return "", toolErr
}

func bridgeArgs(device domain.DeviceID, args []string) []string {
	if device == "" {
		return append([]string(nil), args...)
	}

	argv := make([]string, 0, len(args)+2)
	argv = append(argv, "-s", string(device))
	return append(argv, args...)
}
