package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bnema/badb/internal/adapters/bridge/process"
	configadapter "github.com/bnema/badb/internal/adapters/config"
	"github.com/bnema/badb/internal/adapters/prompt"
	devicesrender "github.com/bnema/badb/internal/adapters/render/devices"
	"github.com/bnema/badb/internal/application"
	"github.com/bnema/badb/internal/domain"
	"github.com/bnema/badb/internal/logging"
	"github.com/bnema/badb/internal/ports"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	settings       configadapter.Settings
	runner         ports.BridgeRunner
	deviceRenderer func([]domain.Device, devicesrender.RenderOptions) (string, error)
	isTerminal     func(io.Writer) bool
}

// session bundles what one command invocation talks to.
type session struct {
	service  *application.Service
	prompter ports.Prompter
}

func wireApp() (*app, error) {
	settings, err := configadapter.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return &app{
		settings:       settings,
		runner:         process.NewRunner(),
		deviceRenderer: devicesrender.Render,
		isTerminal:     isTerminalWriter,
	}, nil
}

func (a *app) newSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	logger, err := logging.New(cmd.ErrOrStderr(), logging.Config{
		Level: a.settings.LogLevel,
		Debug: opts.verbose,
		Color: a.isTerminal(cmd.ErrOrStderr()),
	})
	if err != nil {
		return nil, err
	}
	if a.settings.ConfigFile != "" {
		logger.Debug().Str("path", a.settings.ConfigFile).Msg("loaded config file")
	}

	prompter := prompt.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr())
	service := application.NewService(
		a.runner,
		prompter,
		application.NewSession(domain.DeviceID(opts.serial)),
		application.Options{
			Program:         a.settings.BridgePath,
			AmbiguityMarker: a.settings.AmbiguityMarker,
			MaxRetries:      a.settings.MaxRetries,
		},
		logger,
	)

	return &session{service: service, prompter: prompter}, nil
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
