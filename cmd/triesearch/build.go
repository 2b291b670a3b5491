package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/bastiangx/triesearch/pkg/config"
	"github.com/bastiangx/triesearch/pkg/dictionary"
	"github.com/bastiangx/triesearch/pkg/suggest"
	"github.com/bastiangx/triesearch/pkg/trie"
)

// buildCompleter indexes the configured word list. Without one the
// completer starts empty and only grows through insertions.
func buildCompleter(fs afero.Fs, cfg *config.Config) (*suggest.Completer, error) {
	if cfg.Dict.Path == "" {
		log.Warn("No word list specified, running with empty index...")
		return suggest.NewCompleter(trie.Empty(), cfg.Cache.MaxEntries), nil
	}

	log.Debugf("Init completer: dict=[%s], key=[%s]", cfg.Dict.Path, cfg.Dict.Key)

	idx, err := dictionary.NewLoader(fs, cfg.Dict.Key).Load(cfg.Dict.Path)
	if err != nil {
		return nil, err
	}

	return suggest.NewCompleter(idx, cfg.Cache.MaxEntries), nil
}
