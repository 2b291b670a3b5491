package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const flagJSON = "json"

type suggestOutput struct {
	Prefix      string   `json:"prefix"`
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
}

func newSuggestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "suggest [prefix]",
		Short:   "Prints the completions of a single prefix",
		Example: "triesearch suggest car --dict words.txt --limit 5",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			cfg, err := loadConfig(cmd, fs)
			if err != nil {
				return err
			}

			completer, err := buildCompleter(fs, cfg)
			if err != nil {
				return err
			}

			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			limit, _ := cmd.Flags().GetInt(flagLimit)
			suggestions := completer.Complete(prefix, limit)

			if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
				data, err := json.Marshal(suggestOutput{
					Prefix:      prefix,
					Suggestions: suggestions,
					Count:       len(suggestions),
				})
				if err != nil {
					return fmt.Errorf("failed to encode suggestions: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			for _, s := range suggestions {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	registerDictFlags(cmd.Flags())
	cmd.Flags().Int(flagLimit, 0, "Number of suggestions to print (0 for all)")
	cmd.Flags().Bool(flagJSON, false, "Print the suggestions as JSON")

	return cmd
}
