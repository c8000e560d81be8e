package cmd

import (
	"io"

	"github.com/bnema/badb/internal/application"
	"github.com/spf13/cobra"
)

func newListPackagesCmd(app *app, opts *globalOptions) *cobra.Command {
	var third bool
	var system bool

	cmd := &cobra.Command{
		Use:   "list-packages",
		Short: "List packages installed on device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := application.PackageFilterAll
			switch {
			case third:
				filter = application.PackageFilterThird
			case system:
				filter = application.PackageFilterSystem
			}

			s, err := app.newSession(cmd, opts)
			if err != nil {
				return err
			}

			output, err := s.service.ListPackages(cmd.Context(), filter)
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&third, "third", "3", false, "List third-party packages")
	cmd.Flags().BoolVar(&system, "system", false, "List system packages (no -s shorthand, -s selects the device serial)")
	cmd.MarkFlagsMutuallyExclusive("third", "system")

	return cmd
}
