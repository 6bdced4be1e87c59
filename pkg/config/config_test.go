package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CREATIONAL_LOG_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("CREATIONAL_CATALOG", "")
	t.Setenv("CREATIONAL_OS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultLogFile, filepath.Base(cfg.LogPath))
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "windows", cfg.Platform)
	assert.Empty(t, cfg.CatalogPath)
	assert.False(t, cfg.JSONLogs())
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	t.Setenv("CREATIONAL_LOG_PATH", path)
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("CREATIONAL_OS", "mac")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, path, cfg.LogPath)
	assert.True(t, cfg.JSONLogs())
	assert.Equal(t, "mac", cfg.Platform)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CREATIONAL_LOG_PATH", "")
	t.Setenv("LOG_FORMAT", "")
	path := filepath.Join(t.TempDir(), "flag.txt")

	cfg, err := Load(func(c *Config) { c.LogPath = path })
	require.NoError(t, err)
	assert.Equal(t, path, cfg.LogPath)

	_, err = Load(func(c *Config) { c.LogPath = "" })
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{LogPath: "log.txt", LogFormat: "text"}},
		{name: "blank log path", cfg: Config{LogPath: "  ", LogFormat: "text"}, wantErr: true},
		{name: "bad format", cfg: Config{LogPath: "log.txt", LogFormat: "xml"}, wantErr: true},
		{name: "missing catalog", cfg: Config{LogPath: "log.txt", LogFormat: "json", CatalogPath: filepath.Join(t.TempDir(), "nope.yaml")}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
