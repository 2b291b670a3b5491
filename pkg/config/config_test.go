package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/triesearch/pkg/suggest"
)

func writeConfig(t *testing.T, content string) (afero.Fs, string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	path := "/etc/triesearch/config.toml"
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))

	return fs, path
}

func TestDefaultConfigUsesCompleterCacheSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, suggest.DefaultCacheSize, DefaultConfig().Cache.MaxEntries)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	fs, path := writeConfig(t, `
[server]
max_limit = 32
max_prefix = 20

[dict]
path = "/data/words.json"
key = "name"
watch = true

[cache]
max_entries = 12
`)

	cfg, err := LoadConfig(fs, path)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Server.MaxLimit)
	assert.Equal(t, 20, cfg.Server.MaxPrefix)
	assert.Equal(t, DefaultConfig().Server.DefaultLimit, cfg.Server.DefaultLimit)
	assert.Equal(t, DictConfig{Path: "/data/words.json", Key: "name", Watch: true}, cfg.Dict)
	assert.Equal(t, 12, cfg.Cache.MaxEntries)
	assert.Equal(t, DefaultConfig().CLI, cfg.CLI)
}

func TestLoadConfigRecoversValidSections(t *testing.T) {
	t.Parallel()

	fs, path := writeConfig(t, `
[server]
max_limit = "many"
max_prefix = 15

[dict]
path = "words.txt"
watch = "yes"

[cli]
no_filter = true
`)

	cfg, err := LoadConfig(fs, path)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Server.MaxLimit, cfg.Server.MaxLimit)
	assert.Equal(t, 15, cfg.Server.MaxPrefix)
	assert.Equal(t, "words.txt", cfg.Dict.Path)
	assert.False(t, cfg.Dict.Watch)
	assert.True(t, cfg.CLI.NoFilter)
	assert.Equal(t, DefaultConfig().Cache, cfg.Cache)
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	fs, path := writeConfig(t, "[server\nmax_limit = ")

	cfg, err := LoadConfig(fs, path)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(afero.NewMemMapFs(), "/nope/config.toml")

	require.Error(t, err)
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := "/home/user/.config/triesearch/config.toml"

	cfg, err := InitConfig(fs, path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, exists)

	// only the config file is left behind, not the write probe
	entries, err := afero.ReadDir(fs, "/home/user/.config/triesearch")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	reloaded, err := LoadConfig(fs, path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestInitConfigKeepsExistingFile(t *testing.T) {
	t.Parallel()

	fs, path := writeConfig(t, "[server]\ndefault_limit = 5\n")

	cfg, err := InitConfig(fs, path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Server.DefaultLimit)
}

func TestInitConfigOnReadOnlyFsUsesDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	cfg, err := InitConfig(fs, "/etc/triesearch/config.toml")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveConfigRoundTrips(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg := DefaultConfig()
	cfg.Dict = DictConfig{Path: "words.lst", Key: "title", Watch: true}
	cfg.Server.MaxPrefix = 12

	require.NoError(t, SaveConfig(fs, cfg, "/config.toml"))

	loaded, err := LoadConfig(fs, "/config.toml")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigWithPriorityUsesCustomPath(t *testing.T) {
	t.Parallel()

	fs, path := writeConfig(t, "[cache]\nmax_entries = 3\n")

	cfg, used, err := LoadConfigWithPriority(fs, path)
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, 3, cfg.Cache.MaxEntries)
}
