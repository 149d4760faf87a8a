package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/lets-share-cli/internal/config"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change CLI settings",
	}

	cmd.AddCommand(newConfigShowCmd(app), newConfigSetCmd(app))

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "api.base_url    %s\n", app.cfg.API.BaseURL)
			_, _ = fmt.Fprintf(out, "api.timeout     %s\n", app.cfg.API.Timeout)
			_, _ = fmt.Fprintf(out, "secrets.backend %s\n", app.cfg.Secrets.Backend)
			_, _ = fmt.Fprintf(out, "secrets.dir     %s\n", app.cfg.Secrets.Dir)
			_, _ = fmt.Fprintf(out, "log.level       %s\n", app.cfg.Log.Level)
			return nil
		},
	}
}

func newConfigSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.cfg
			if err := applyConfigValue(&cfg, args[0], args[1]); err != nil {
				return err
			}

			path, err := config.FilePath()
			if err != nil {
				return err
			}
			if err := config.Save(cfg, path); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", path)
			return nil
		},
	}
}

func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "api.base_url":
		cfg.API.BaseURL = value
	case "api.timeout":
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parse api.timeout: %w", err)
		}
		cfg.API.Timeout = timeout
	case "secrets.backend":
		cfg.Secrets.Backend = value
	case "secrets.dir":
		cfg.Secrets.Dir = value
	case "log.level":
		cfg.Log.Level = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
