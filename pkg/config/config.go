/*
Package config manages TOML config for triesearch.

Config files are read and written through an afero.Fs so callers decide
whether they live on disk or in memory.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"

	"github.com/bastiangx/triesearch/internal/utils"
	"github.com/bastiangx/triesearch/pkg/suggest"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	Cache  CacheConfig  `toml:"cache"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int `toml:"max_limit"`
	MaxPrefix    int `toml:"max_prefix"`
	DefaultLimit int `toml:"default_limit"`
}

// DictConfig points at the word list to index.
type DictConfig struct {
	Path  string `toml:"path"`
	Key   string `toml:"key"`
	Watch bool   `toml:"watch"`
}

// CacheConfig sizes the prefix result cache.
type CacheConfig struct {
	MaxEntries int `toml:"max_entries"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	NoFilter     bool `toml:"no_filter"`
}

// GetConfigDir returns ~/.config/triesearch when it can be written to,
// otherwise the directory of the running executable.
func GetConfigDir(fs afero.Fs) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.ExecutableDir()
	}
	primary := filepath.Join(homeDir, ".config", "triesearch")
	if status := utils.PrepareDir(fs, primary); status.Writable {
		return primary, nil
	}
	return utils.ExecutableDir()
}

// LoadConfigWithPriority picks the first usable source out of:
// 1. customPath (the --config flag)
// 2. config.toml in GetConfigDir, created with defaults when missing
// 3. builtin defaults
// It returns the path the config came from, empty for builtin defaults.
func LoadConfigWithPriority(fs afero.Fs, customPath string) (*Config, string, error) {
	if customPath != "" {
		if utils.FileExists(fs, customPath) {
			log.Debugf("Loading config from custom path: %s", customPath)
			cfg, err := LoadConfig(fs, customPath)
			return cfg, customPath, err
		}
		log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
	}

	configDir, err := GetConfigDir(fs)
	if err != nil {
		log.Warnf("Failed to determine config dir: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	defaultPath := filepath.Join(configDir, "config.toml")
	cfg, err := InitConfig(fs, defaultPath)
	if err != nil {
		log.Warnf("Failed to load config at %s: %v. Using built-in defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	return cfg, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit:     64,
			MaxPrefix:    60,
			DefaultLimit: 10,
		},
		Cache: CacheConfig{
			MaxEntries: suggest.DefaultCacheSize,
		},
		CLI: CliConfig{
			DefaultLimit: 24,
		},
	}
}

// InitConfig loads the config at path, writing the defaults there first when
// the file does not exist yet. A failed write is not fatal.
func InitConfig(fs afero.Fs, path string) (*Config, error) {
	if utils.FileExists(fs, path) {
		return LoadConfig(fs, path)
	}

	cfg := DefaultConfig()
	if status := utils.PrepareDir(fs, filepath.Dir(path)); !status.Writable {
		return cfg, nil
	}
	if err := SaveConfig(fs, cfg, path); err != nil {
		log.Warnf("Failed to create default config file at %s: %v", path, err)
		return cfg, nil
	}
	log.Debugf("Created default config file at: %s", path)
	return cfg, nil
}

// LoadConfig reads the TOML file at path on top of the defaults. A file
// that does not fit the Config types is salvaged key by key, see recoverConfig.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	cfg := DefaultConfig()
	err := utils.ReadTOML(fs, path, cfg)
	if err == nil {
		return cfg, nil
	}
	if !utils.FileExists(fs, path) {
		return nil, err
	}

	log.Warnf("%v. Attempting partial recovery...", err)
	return recoverConfig(fs, path), nil
}

// recoverConfig keeps every key of path whose value has the right type and
// the defaults for the rest. A file that is not TOML at all yields the defaults.
func recoverConfig(fs afero.Fs, path string) *Config {
	cfg := DefaultConfig()

	var raw map[string]any
	if err := utils.ReadTOML(fs, path, &raw); err != nil {
		log.Warnf("Could not parse any valid configuration: %v. Using all defaults.", err)
		return cfg
	}

	sections := map[string]any{
		"server": &cfg.Server,
		"dict":   &cfg.Dict,
		"cache":  &cfg.Cache,
		"cli":    &cfg.CLI,
	}
	for name, target := range sections {
		section, ok := raw[name].(map[string]any)
		if !ok {
			continue
		}
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName: "toml",
			Result:  target,
		})
		if err != nil {
			log.Errorf("Preparing decoder for [%s]: %v", name, err)
			continue
		}
		// fields that fail to decode keep their defaults
		if err := decoder.Decode(section); err != nil {
			log.Warnf("Ignoring invalid values in [%s]: %v", name, err)
		}
	}
	return cfg
}

// SaveConfig writes cfg to path as TOML.
func SaveConfig(fs afero.Fs, cfg *Config, path string) error {
	return utils.WriteTOML(fs, path, cfg)
}
