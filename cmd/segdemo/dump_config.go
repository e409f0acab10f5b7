package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"

	"segctl/internal/config"
	"segctl/internal/ui"
)

func newDumpConfigCmd(opts *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "dump-config",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigService(opts.configPath)
			cfg, err := loadConfig(cmd, opts, svc)
			if err != nil {
				return err
			}

			// Round-trip through a control so the dump shows what it accepts
			control, err := ui.NewFromDescription(cfg.Control, ui.WithLogger(pslog.Ctx(cmd.Context())))
			if err != nil {
				return fmt.Errorf("invalid control description: %w", err)
			}
			cfg.Control = control.Description()

			if output != "" {
				if err := svc.SaveToPath(cfg, output); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
