package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/badb/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type globalOptions struct {
	serial  string
	yes     bool
	verbose bool
}

func (o *globalOptions) bind(flags *pflag.FlagSet) {
	flags.StringVarP(&o.serial, "serial", "s", "", "Use device with given serial")
	flags.BoolVarP(&o.yes, "yes", "y", false, "Forward commands unknown to badb without asking")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log bridge invocations to stderr")
}

func Execute() error {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(wireApp)
}

func newRootCmdWith(wire func() (*app, error)) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "badb [flags] <command> [args...]",
		Short: "badb: adb with device selection",
		Long: "badb forwards commands to adb. When more than one device is attached it asks which one to use " +
			"and retries the command on it. Commands badb does not know are passed through to adb unchanged.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	opts.bind(rootCmd.PersistentFlags())

	app, err := wire()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runPassthrough(cmd, app, opts, args)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newDevicesCmd(app, opts),
		newListPackagesCmd(app, opts),
	)

	return rootCmd
}

// printError writes err the way the bridge would: tool failures are shown as
// the bridge's own stderr.
func printError(w io.Writer, err error) {
	message := err.Error()

	var toolErr *domain.ToolError
	if errors.As(err, &toolErr) && strings.TrimSpace(toolErr.Stderr) != "" {
		message = toolErr.Stderr
	}
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}

	_, _ = fmt.Fprint(w, message)
}
