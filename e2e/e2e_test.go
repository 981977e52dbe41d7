// Package e2e runs the template's example tests against the live target site.
// Tests skip when no browser engine is available, so the unit suite stays
// runnable in minimal environments.
package e2e

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"
	"e2e_automation/infrastructure/browser"
	"e2e_automation/infrastructure/config"
)

const (
	homeTitle   = "Fast and reliable end-to-end testing for modern web apps | Playwright"
	docsURL     = "https://playwright.dev/docs/intro"
	docsHeading = "Installation"
)

type memoryStore struct{ data []byte }

func (s *memoryStore) SaveState(data []byte) error { s.data = data; return nil }
func (s *memoryStore) LoadState() ([]byte, error)  { return s.data, nil }
func (s *memoryStore) Clear() error                { s.data = nil; return nil }

var _ interfaces.StateStore = (*memoryStore)(nil)

// newSession builds a fresh session from the environment configuration, one
// per test. Skips when the engine cannot start (no browsers installed).
func newSession(t *testing.T) (interfaces.Session, entities.Config) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg, err := config.Load(os.Getenv("E2E_CONFIG"))
	require.NoError(t, err)
	cfg.ScreenshotDir = filepath.Join(t.TempDir(), "screenshots")

	session, err := browser.NewSession(cfg, &memoryStore{}, logger)
	if err != nil {
		t.Skipf("browser engine unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := session.Close(); err != nil {
			t.Logf("session close: %v", err)
		}
	})
	return session, cfg
}

func testContext(t *testing.T, cfg entities.Config) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	t.Cleanup(cancel)
	return ctx
}

func TestHomepageLoads(t *testing.T) {
	session, cfg := newSession(t)
	ctx := testContext(t, cfg)

	require.NoError(t, session.Navigate(ctx, "/"))

	title, err := session.Title(ctx)
	require.NoError(t, err)
	assert.Equal(t, homeTitle, title)

	heading, err := session.Text(ctx, entities.BySelector("h1"))
	require.NoError(t, err)
	assert.Contains(t, heading, "Playwright enables reliable end-to-end testing")
}

func TestSearch(t *testing.T) {
	session, cfg := newSession(t)
	ctx := testContext(t, cfg)

	require.NoError(t, session.Navigate(ctx, "/"))
	require.NoError(t, session.Click(ctx, entities.ByRole("button", "Search (Ctrl+K)")))

	searchBox := entities.ByRole("searchbox", "Search")
	require.NoError(t, session.WaitVisible(ctx, searchBox))
	require.NoError(t, session.Fill(ctx, searchBox, "locator"))

	value, err := session.InputValue(ctx, searchBox)
	require.NoError(t, err)
	assert.Equal(t, "locator", value)
}

func TestDocsNavigation(t *testing.T) {
	session, cfg := newSession(t)
	ctx := testContext(t, cfg)

	require.NoError(t, session.Navigate(ctx, "/"))
	require.NoError(t, session.Click(ctx, entities.ByRole("link", "Docs")))
	require.NoError(t, session.WaitVisible(ctx, entities.BySelector("h1")))

	url, err := session.URL(ctx)
	require.NoError(t, err)
	assert.Equal(t, docsURL, url)

	heading, err := session.Text(ctx, entities.BySelector("h1"))
	require.NoError(t, err)
	assert.Contains(t, heading, docsHeading)
}

func TestScreenshotCapture(t *testing.T) {
	session, cfg := newSession(t)
	ctx := testContext(t, cfg)

	require.NoError(t, session.Navigate(ctx, "/"))

	img, err := session.Screenshot(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, img)

	require.NoError(t, os.MkdirAll(cfg.ScreenshotDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ScreenshotDir, "homepage.png"), img, 0644))
}
