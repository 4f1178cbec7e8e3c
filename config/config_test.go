package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ValidateConfig(t *testing.T) {
	t.Parallel()

	t.Run("invalid base currency", func(t *testing.T) {
		t.Parallel()

		for _, base := range []string{"", "try", "TR", "TRYY", "T1Y"} {
			cfg := DefaultConfig()
			cfg.BaseCurrency = base

			assert.ErrorIs(t, ValidateConfig(cfg), ErrInvalidBaseCurrency, "base %q", base)
		}
	})

	t.Run("invalid API URL", func(t *testing.T) {
		t.Parallel()

		for _, apiURL := range []string{"", "api.frankfurter.app", "ftp://api.frankfurter.app", "https://"} {
			cfg := DefaultConfig()
			cfg.APIURL = apiURL

			assert.ErrorIs(t, ValidateConfig(cfg), ErrInvalidAPIURL, "url %q", apiURL)
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.TimeoutSeconds = -1

		assert.ErrorIs(t, ValidateConfig(cfg), ErrInvalidTimeout)
	})

	t.Run("valid configuration", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, ValidateConfig(DefaultConfig()))
	})
}

func TestConfig_Read(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Read(filepath.Join(t.TempDir(), "missing.toml"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid toml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("base_currency = "), 0o600))

		_, err := Read(path)

		assert.Error(t, err)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("base_currency = \"USD\"\ntimeout_seconds = 10\n"), 0o600))

		cfg, err := Read(path)
		require.NoError(t, err)

		assert.Equal(t, "USD", cfg.BaseCurrency)
		assert.Equal(t, 10, cfg.TimeoutSeconds)
		assert.Equal(t, DefaultConfig().APIURL, cfg.APIURL)
		assert.NoError(t, ValidateConfig(cfg))
	})
}
