package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/camelot/internal/config"
	"github.com/katalvlaran/camelot/scale"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	from, to, err := cfg.Endpoints()
	require.NoError(t, err)
	assert.Equal(t, scale.Scale{Index: 11, Kind: scale.Minor}, from)
	assert.Equal(t, scale.Scale{Index: 0, Kind: scale.Major}, to)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camelot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("from: 8A\ncount: 3\nlog_level: debug\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "8A", cfg.From)
	assert.Equal(t, "1B", cfg.To, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: [1, 2\n"), 0o600))
	_, err = config.Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"bad from", func(c *config.Config) { c.From = "13A" }, config.ErrBadScale},
		{"bad to", func(c *config.Config) { c.To = "x" }, config.ErrBadScale},
		{"zero count", func(c *config.Config) { c.Count = 0 }, config.ErrBadCount},
		{"huge count", func(c *config.Config) { c.Count = config.MaxCount + 1 }, config.ErrCountTooLarge},
		{"negative frontier", func(c *config.Config) { c.MaxFrontier = -1 }, config.ErrBadMaxFrontier},
		{"negative cost", func(c *config.Config) { c.MaxCost = -1 }, config.ErrBadMaxCost},
		{"bad level", func(c *config.Config) { c.LogLevel = "loud" }, config.ErrBadLogLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}
