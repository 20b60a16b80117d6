package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/notion-query/internal/config"
	"github.com/salmonumbrella/notion-query/internal/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long: `Manage the CLI configuration file.

Available keys:
  output       Default output format (text, json, yaml)
  color        Default color mode (auto, always, never)
  token_source Token source: keyring, env:VAR_NAME, or a literal token
  api_url      Custom Notion API base URL
  api_version  Notion-Version header override`,
	}

	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("failed to resolve config path: %w", err)
			}
			_, _ = fmt.Fprintln(stdoutFromContext(cmd.Context()), path)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			value, err := cfg.Get(args[0])
			if err != nil {
				return errors.WrapUserError(err,
					fmt.Sprintf("unknown config key %q", args[0]),
					"Run 'nq config' to see available keys")
			}

			_, _ = fmt.Fprintln(stdoutFromContext(cmd.Context()), value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if err := cfg.Set(args[0], args[1]); err != nil {
				return errors.WrapUserError(err,
					fmt.Sprintf("cannot set config key %q", args[0]),
					"Run 'nq config' to see available keys")
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			uiForContext(cmd.Context()).Success("Set %s = %s", args[0], args[1])
			return nil
		},
	}
}
