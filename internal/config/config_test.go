package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "lpc824", cfg.Core)
	assert.Equal(t, "JLinkExe", cfg.JLink.Executable)
	assert.Equal(t, 60*time.Second, cfg.JLink.Timeout)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jlink:\n  executable: /opt/SEGGER/JLink/JLinkExe\n  timeout: 15s\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lpc824", cfg.Core, "unset keys keep their default")
	assert.Equal(t, "/opt/SEGGER/JLink/JLinkExe", cfg.JLink.Executable)
	assert.Equal(t, 15*time.Second, cfg.JLink.Timeout)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jlink: [not, a, map"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadNegativeTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jlink:\n  timeout: -1s\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.JLink.Executable = "JLink.exe"

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "opentracelink", "config.yaml"), path)

	t.Setenv("APPDATA", "/appdata")
	path, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/appdata", "OpenTraceLink", "config.yaml"), path)
}
