package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludexhq/ludex/internal/errors"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "https://api.ludex.gg", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 12, cfg.PageSize)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "api_url: https://staging.ludex.gg\npage_size: 24\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	t.Setenv("LUDEX_DATA_DIR", dir)
	t.Setenv("LUDEX_API_URL", "http://localhost:8000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIURL, "env should win over file")
	assert.Equal(t, 24, cfg.PageSize, "file should win over defaults")
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "session.json"), cfg.SessionFile())
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api_url: [unterminated"), 0o644))

	t.Setenv("LUDEX_DATA_DIR", dir)

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigLoad, errors.CodeOf(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty api url", func(c *Config) { c.APIURL = "" }, true},
		{"non-http scheme", func(c *Config) { c.APIURL = "ftp://api.ludex.gg" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"page size too large", func(c *Config) { c.PageSize = 500 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
