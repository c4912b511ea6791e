package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(`
name: team tfs bridge
tf_exe_path: /opt/tee/tf
transport: http
port: 8099
timeout: 1m
`), 0o600))

	cfg, err := LoadFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, "team tfs bridge", cfg.Name)
	assert.Equal(t, "/opt/tee/tf", cfg.ExePath)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, 8099, cfg.Port)
	assert.Equal(t, time.Minute, cfg.Timeout)
}

func TestLoadFile_MissingOptional(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), FileName), false)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadFile_MissingRequired(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), FileName), true)
	require.Error(t, err)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))
	_, err := LoadFile(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
