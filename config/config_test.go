package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "/dev/ttyACM0", cfg.Scanner.Port)
	assert.Equal(t, 9600, cfg.Scanner.Baud)
	assert.Empty(t, cfg.Display.URL)
	assert.Equal(t, 2*time.Second, cfg.Display.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("QRR_SERVER_PORT", "9090")
	t.Setenv("QRR_SCANNER_PORT", "/dev/ttyUSB3")
	t.Setenv("QRR_DISPLAY_URL", "http://display.local:8081")
	t.Setenv("QRR_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/dev/ttyUSB3", cfg.Scanner.Port)
	assert.Equal(t, "http://display.local:8081", cfg.Display.URL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 0.0.0.0
  port: 8443
scanner:
  port: /dev/ttyUSB0
  baud: 115200
display:
  url: http://localhost:9000
  timeout: 500ms
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8443", cfg.Server.Addr())
	assert.Equal(t, "/dev/ttyUSB0", cfg.Scanner.Port)
	assert.Equal(t, 115200, cfg.Scanner.Baud)
	assert.Equal(t, 500*time.Millisecond, cfg.Display.Timeout)
	// Untouched keys keep their defaults.
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
