package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bastiangx/triesearch/internal/watcher"
	"github.com/bastiangx/triesearch/pkg/server"
)

const flagWatch = "watch"

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves completions as MessagePack over stdin/stdout",
		Long: `Serves completions as MessagePack over stdin/stdout.

With --watch the index is rebuilt whenever the word list changes. Words added
through insert requests are carried over into the rebuilt index.`,
		Example: "triesearch serve --dict words.txt --watch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := afero.NewOsFs()
			cfg, err := loadConfig(cmd, fs)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed(flagWatch) {
				cfg.Dict.Watch, _ = cmd.Flags().GetBool(flagWatch)
			}

			completer, err := buildCompleter(fs, cfg)
			if err != nil {
				return err
			}

			srv := server.NewServer(completer, cfg)

			if cfg.Dict.Watch && cfg.Dict.Path != "" {
				w, err := watcher.New()
				if err != nil {
					return err
				}
				err = w.Add(cfg.Dict.Path, watcher.ChangeListenerFunc(func(path string) {
					log.Infof("Word list %s changed, rebuilding index", path)
					rebuilt, err := buildCompleter(fs, cfg)
					if err != nil {
						log.Errorf("Keeping previous index: %v", err)
						return
					}
					srv.SetCompleter(rebuilt)
				}))
				if err != nil {
					return err
				}
				w.Start()
				defer w.Stop()
			}

			showStartupInfo(cfg.Dict.Path)

			return srv.Start()
		},
	}

	registerDictFlags(cmd.Flags())
	cmd.Flags().Bool(flagWatch, false, "Rebuild the index when the word list changes")

	return cmd
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictPath string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("word list: ( %s )", dictPath)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
