package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bastiangx/triesearch/internal/cli"
	"github.com/bastiangx/triesearch/internal/logger"
)

const flagNoFilter = "no-filter"

// CLI would be mainly used for testing and dbg purposes.
func newCLICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cli",
		Short: "Runs an interactive prompt for testing completions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := afero.NewOsFs()
			cfg, err := loadConfig(cmd, fs)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed(flagLimit) {
				cfg.CLI.DefaultLimit, _ = cmd.Flags().GetInt(flagLimit)
			}
			if cmd.Flags().Changed(flagNoFilter) {
				cfg.CLI.NoFilter, _ = cmd.Flags().GetBool(flagNoFilter)
			}

			completer, err := buildCompleter(fs, cfg)
			if err != nil {
				return err
			}

			out := logger.NewWithWriter(cmd.OutOrStdout(), "")
			handler := cli.NewInputHandler(completer, cmd.InOrStdin(), out, cfg.CLI.DefaultLimit, cfg.CLI.NoFilter)

			return handler.Start()
		},
	}

	registerDictFlags(cmd.Flags())
	cmd.Flags().Int(flagLimit, 0, "Number of suggestions to return")
	cmd.Flags().Bool(flagNoFilter, false, "Disable input filtering - accepts numbers and symbols as prefixes")

	return cmd
}
