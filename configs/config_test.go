package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/denismitr/intset/configs"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())

		require.NoError(t, config.LoadConfig(""))

		assert.Equal(t, "warn", config.Cfg.Log.Level)
		assert.False(t, config.Cfg.Sets.Strict)
		assert.Equal(t, 100, config.Cfg.History.Size)
		assert.True(t, config.Cfg.Render.Color)
	})

	t.Run("explicit config file", func(t *testing.T) {
		viper.Reset()
		path := filepath.Join(t.TempDir(), "intset.yml")
		content := "log:\n  level: debug\n  pretty: true\nsets:\n  strict: true\nhistory:\n  size: 5\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		require.NoError(t, config.LoadConfig(path))

		assert.Equal(t, "debug", config.Cfg.Log.Level)
		assert.True(t, config.Cfg.Log.Pretty)
		assert.True(t, config.Cfg.Sets.Strict)
		assert.Equal(t, 5, config.Cfg.History.Size)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		viper.Reset()
		path := filepath.Join(t.TempDir(), "intset.yml")
		require.NoError(t, os.WriteFile(path, []byte("history:\n  size: 5\n"), 0o600))
		t.Setenv("INTSET_HISTORY_SIZE", "42")

		require.NoError(t, config.LoadConfig(path))

		assert.Equal(t, 42, config.Cfg.History.Size)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		viper.Reset()

		err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Error(t, err)
	})
}
