package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"xurl/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "~/xurl", cfg.Workspace.BaseDir)
	require.Equal(t, "text", cfg.Output.Format)
	require.Equal(t, "apktool", cfg.Decompiler.Binary)
	require.Zero(t, cfg.Decompiler.Timeout)
	require.Equal(t, filepath.Join("~/xurl", "apk_urls.txt"), cfg.OutputFile())
}

func TestLoad_env(t *testing.T) {
	t.Setenv("XURL_BASE_DIR", "/srv/xurl")
	t.Setenv("DECOMPILER_TIMEOUT", "90s")
	t.Setenv("XURL_OUTPUT_FORMAT", "json")

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "/srv/xurl", cfg.Workspace.BaseDir)
	require.Equal(t, 90*time.Second, cfg.Decompiler.Timeout)
	require.Equal(t, "json", cfg.Output.Format)
	require.Equal(t, "/srv/xurl/apk_urls.txt", cfg.OutputFile())
}

func TestLoad_yamlWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
logLevel: info
workspace:
  baseDir: /data/xurl
output:
  file: /tmp/out.txt
decompiler:
  binary: /opt/apktool/apktool
  timeout: 5m
`), 0o600))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "/data/xurl", cfg.Workspace.BaseDir)
	require.Equal(t, "/tmp/out.txt", cfg.OutputFile())
	require.Equal(t, "/opt/apktool/apktool", cfg.Decompiler.Binary)
	require.Equal(t, 5*time.Minute, cfg.Decompiler.Timeout)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
