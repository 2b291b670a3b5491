package main

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bastiangx/triesearch/internal/logger"
	"github.com/bastiangx/triesearch/pkg/config"
	"github.com/bastiangx/triesearch/pkg/dictionary"
)

const (
	Version = "0.1.0-beta"
	AppName = "triesearch"
	gh      = "https://github.com/bastiangx/triesearch"

	flagConfig = "config"
	flagDebug  = "debug"
	flagDict   = "dict"
	flagKey    = "key"
	flagLimit  = "limit"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Prefix search over word lists",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			debug, _ := cmd.Flags().GetBool(flagDebug)
			logger.Setup(debug)
		},
	}

	cmd.PersistentFlags().String(flagConfig, "", "Path to the TOML config file")
	cmd.PersistentFlags().BoolP(flagDebug, "d", false, "Toggle debug mode")

	cmd.AddCommand(
		newServeCommand(),
		newSuggestCommand(),
		newCLICommand(),
		newVersionCommand(),
	)

	return cmd
}

// registerDictFlags adds the word list flags shared by all index building commands.
func registerDictFlags(flags *pflag.FlagSet) {
	flags.String(flagDict, "", "Word list to index ("+strings.Join(dictionary.SupportedExtensions(), ", ")+")")
	flags.String(flagKey, "", "Field to index when the word list holds records")
}

// loadConfig reads the config file from fs and applies the word list flags on top.
func loadConfig(cmd *cobra.Command, fs afero.Fs) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString(flagConfig)

	cfg, _, err := config.LoadConfigWithPriority(fs, configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed(flagDict) {
		cfg.Dict.Path, _ = cmd.Flags().GetString(flagDict)
	}
	if cmd.Flags().Changed(flagKey) {
		cfg.Dict.Key, _ = cmd.Flags().GetString(flagKey)
	}

	return cfg, nil
}
