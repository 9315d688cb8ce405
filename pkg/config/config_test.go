package configutils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	configutils "github.com/10Narratives/workflows/pkg/config"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Address  string        `yaml:"address" env:"TEST_CONFIG_ADDRESS" env-default:"127.0.0.1:8086"`
	Interval time.Duration `yaml:"interval" env:"TEST_CONFIG_INTERVAL" env-default:"100ms"`
}

func TestRead(t *testing.T) {
	t.Run("env defaults", func(t *testing.T) {
		cfg, err := configutils.Read[testConfig]("")
		require.NoError(t, err)
		require.Equal(t, "127.0.0.1:8086", cfg.Address)
		require.Equal(t, 100*time.Millisecond, cfg.Interval)
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_INTERVAL", "2s")

		cfg, err := configutils.Read[testConfig]("")
		require.NoError(t, err)
		require.Equal(t, 2*time.Second, cfg.Interval)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("address: 0.0.0.0:9000\n"), 0o600))

		cfg, err := configutils.Read[testConfig](path)
		require.NoError(t, err)
		require.Equal(t, "0.0.0.0:9000", cfg.Address)
		require.Equal(t, 100*time.Millisecond, cfg.Interval)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := configutils.Read[testConfig](filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
