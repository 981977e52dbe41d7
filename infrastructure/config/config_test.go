package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"e2e_automation/domain/entities"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, entities.DriverPlaywright, cfg.Driver)
	assert.Equal(t, "chromium", cfg.Browser)
	assert.Equal(t, "https://playwright.dev", cfg.BaseURL)
	assert.Equal(t, entities.Viewport{Width: 1920, Height: 1080}, cfg.Viewport)
	assert.True(t, cfg.IgnoreHTTPSErrors)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "en-US,en;q=0.5", cfg.ExtraHTTPHeaders["Accept-Language"])
	assert.Equal(t, "allure-results", cfg.ResultsDir)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://staging.example.com/
browser: firefox
headless: false
viewport:
  width: 1280
  height: 720
slow_mo: 250ms
timeout: 10s
storage_state_path: auth/state.json
extra_http_headers:
  X-Test-Run: nightly
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com", cfg.BaseURL)
	assert.Equal(t, "firefox", cfg.Browser)
	assert.False(t, cfg.Headless)
	assert.Equal(t, entities.Viewport{Width: 1280, Height: 720}, cfg.Viewport)
	assert.Equal(t, 250*time.Millisecond, cfg.SlowMo)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "auth/state.json", cfg.StorageStatePath)
	assert.Equal(t, map[string]string{"X-Test-Run": "nightly"}, cfg.ExtraHTTPHeaders)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load("nope.yaml")
	assert.Error(t, err)
}

func TestLoadDefaultFilePickedUp(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("browser: webkit\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "webkit", cfg.Browser)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("base_url: https://file.example.com\n"), 0644))

	t.Setenv("E2E_BASE_URL", "https://env.example.com/")
	t.Setenv("E2E_HEADLESS", "false")
	t.Setenv("E2E_VIEWPORT", "800x600")
	t.Setenv("E2E_DRIVER", "selenium")
	t.Setenv("E2E_TIMEOUT", "5s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.False(t, cfg.Headless)
	assert.Equal(t, entities.Viewport{Width: 800, Height: 600}, cfg.Viewport)
	assert.Equal(t, entities.DriverSelenium, cfg.Driver)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestEnvRejectsBadValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("E2E_VIEWPORT", "huge")
	_, err := Load("")
	assert.Error(t, err)
}

func TestParseViewport(t *testing.T) {
	vp, err := parseViewport("1920x1080")
	require.NoError(t, err)
	assert.Equal(t, entities.Viewport{Width: 1920, Height: 1080}, vp)

	for _, bad := range []string{"", "1920", "0x600", "-1x600", "ax b"} {
		_, err := parseViewport(bad)
		assert.Error(t, err, "viewport %q", bad)
	}
}

// chdir pins the working directory so the default config file and .env lookup
// cannot leak in from the repository root.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
