// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/termgames/hackerman/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as YAML",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, path, err := loadConfig()
				if err != nil {
					return err
				}
				// file schema, so the output can be saved and loaded back
				data, err := config.Encode(cfg)
				if err != nil {
					return err
				}
				if path != "" {
					fmt.Fprintln(cmd.OutOrStdout(), "# file:", path)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "# defaults and environment only")
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the configuration and exit",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, _, err := loadConfig(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "configuration OK")
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the default configuration to the data directory",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, path, err := loadConfig()
				if err != nil {
					return err
				}
				if path == "" {
					path = configFlag
				}
				if path == "" {
					path = defaultConfigTarget(cfg)
				}
				if err := config.Save(cfg, path); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
				return nil
			},
		},
	)
	return cmd
}

func defaultConfigTarget(cfg config.AppConfig) string {
	return filepath.Join(cfg.DataDir, "config.yaml")
}
