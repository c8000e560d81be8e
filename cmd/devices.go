package cmd

import (
	"fmt"

	devicesrender "github.com/bnema/badb/internal/adapters/render/devices"
	"github.com/bnema/badb/internal/domain"
	"github.com/spf13/cobra"
)

func newDevicesCmd(app *app, opts *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List connected devices with model, OS version and IP address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = app.settings.OutputFormat
			}
			format, err := devicesrender.ParseFormat(output)
			if err != nil {
				return err
			}

			s, err := app.newSession(cmd, opts)
			if err != nil {
				return err
			}

			var devices []domain.Device
			if app.isTerminal(cmd.ErrOrStderr()) {
				devices, err = runDeviceScan(cmd.Context(), cmd.ErrOrStderr(), s.service.ListDevicesWithProgress)
			} else {
				devices, err = s.service.ListDevices(cmd.Context())
			}
			if err != nil {
				return err
			}

			rendered, err := app.deviceRenderer(devices, devicesrender.RenderOptions{Format: format})
			if err != nil {
				return fmt.Errorf("render devices: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format (table|json|toml)")

	return cmd
}
