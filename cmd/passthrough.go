package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const passthroughQuestion = "Command not defined in badb. Would you like to run it anyway"

func runPassthrough(cmd *cobra.Command, app *app, opts *globalOptions, args []string) error {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		return cmd.Help()
	}

	forwarded, err := splitGlobalFlags(opts, args)
	if err != nil {
		return err
	}
	if len(forwarded) == 0 {
		return cmd.Help()
	}

	s, err := app.newSession(cmd, opts)
	if err != nil {
		return err
	}

	if app.settings.ConfirmPassthrough && !opts.yes {
		proceed, err := s.prompter.Confirm(cmd.Context(), passthroughQuestion, true)
		if err != nil {
			return err
		}
		if !proceed {
			return fmt.Errorf("unknown command %q for %q", forwarded[0], cmd.CommandPath())
		}
	}

	output, err := s.service.Run(cmd.Context(), forwarded)
	if err != nil {
		return err
	}

	_, err = io.WriteString(cmd.OutOrStdout(), output)
	return err
}

// splitGlobalFlags takes badb's own flags off the front of raw arguments.
// Everything else, including flags meant for adb, is returned unchanged.
func splitGlobalFlags(opts *globalOptions, args []string) ([]string, error) {
	flags := pflag.NewFlagSet("badb", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	opts.bind(flags)

	var own []string
	var forwarded []string

	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			break
		}

		flag := lookupFlag(flags, arg)
		if flag == nil {
			forwarded = append(forwarded, arg)
			continue
		}

		own = append(own, arg)
		if flag.NoOptDefVal == "" && !strings.Contains(arg, "=") && i+1 < len(args) {
			i++
			own = append(own, args[i])
		}
	}
	forwarded = append(forwarded, args[i:]...)

	if err := flags.Parse(own); err != nil {
		return nil, err
	}

	return forwarded, nil
}

func lookupFlag(flags *pflag.FlagSet, arg string) *pflag.Flag {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, _ = strings.Cut(name, "=")
		return flags.Lookup(name)
	}

	if len(arg) != 2 {
		return nil
	}
	return flags.ShorthandLookup(arg[1:])
}
