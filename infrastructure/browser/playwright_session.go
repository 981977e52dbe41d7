package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"
)

type playwrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page

	store   interfaces.StateStore
	logger  *logrus.Logger
	timeout float64 // milliseconds
}

// NewPlaywrightSession - launches a browser and opens one isolated
// context+page per the configuration record. The storage-state snapshot, when
// the store holds one, seeds the context; SaveState writes it back.
func NewPlaywrightSession(cfg entities.Config, store interfaces.StateStore, logger *logrus.Logger) (interfaces.Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		launchOptions.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}

	browserType, err := browserTypeFor(pw, cfg.Browser)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	b, err := browserType.Launch(launchOptions)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  cfg.Viewport.Width,
			Height: cfg.Viewport.Height,
		},
		IgnoreHttpsErrors: playwright.Bool(cfg.IgnoreHTTPSErrors),
	}
	if cfg.BaseURL != "" {
		contextOptions.BaseURL = playwright.String(cfg.BaseURL)
	}
	if len(cfg.ExtraHTTPHeaders) > 0 {
		contextOptions.ExtraHttpHeaders = cfg.ExtraHTTPHeaders
	}

	if store != nil {
		data, err := store.LoadState()
		if err != nil {
			logger.Warnf("Ignoring unreadable storage state: %v", err)
		} else if data != nil {
			var storageState playwright.StorageState
			if err := json.Unmarshal(data, &storageState); err == nil {
				contextOptions.StorageState = storageState.ToOptionalStorageState()
			}
		}
	}

	bctx, err := b.NewContext(contextOptions)
	if err != nil {
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	timeoutMS := float64(cfg.Timeout.Milliseconds())
	page.SetDefaultTimeout(timeoutMS)
	page.SetDefaultNavigationTimeout(timeoutMS)

	return &playwrightSession{
		pw:      pw,
		browser: b,
		context: bctx,
		page:    page,
		store:   store,
		logger:  logger,
		timeout: timeoutMS,
	}, nil
}

func browserTypeFor(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch strings.ToLower(name) {
	case "", "chromium", "chrome":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unknown browser %q (chromium, firefox, webkit)", name)
	}
}

// resolve - maps a locator descriptor onto the live page
func (s *playwrightSession) resolve(loc entities.Locator) playwright.Locator {
	if loc.Kind == entities.LocatorByRole || (loc.Kind == "" && loc.Role != "") {
		options := playwright.PageGetByRoleOptions{}
		if loc.Name != "" {
			options.Name = loc.Name
		}
		if loc.Exact {
			options.Exact = playwright.Bool(true)
		}
		return s.page.GetByRole(playwright.AriaRole(strings.ToLower(loc.Role)), options)
	}
	return s.page.Locator(loc.Selector)
}

// Navigate - loads a path against the configured base URL
func (s *playwrightSession) Navigate(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Infof("Navigating to: %s", path)
	_, err := s.page.Goto(path, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(s.timeout),
	})
	return err
}

// Click - clicks the element once it is visible
func (s *playwrightSession) Click(ctx context.Context, loc entities.Locator) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Infof("Clicking: %s", loc)
	return s.resolve(loc).Click()
}

// Fill - clears the element and types text
func (s *playwrightSession) Fill(ctx context.Context, loc entities.Locator, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Infof("Filling %s", loc)
	return s.resolve(loc).Fill(text)
}

// WaitVisible - waits for the element to become visible
func (s *playwrightSession) WaitVisible(ctx context.Context, loc entities.Locator) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.resolve(loc).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(s.timeout),
	})
}

// Text - returns the element's text content
func (s *playwrightSession) Text(ctx context.Context, loc entities.Locator) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := s.resolve(loc).TextContent()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// InputValue - returns the current input value
func (s *playwrightSession) InputValue(ctx context.Context, loc entities.Locator) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.resolve(loc).InputValue()
}

// IsVisible - reports visibility without waiting
func (s *playwrightSession) IsVisible(ctx context.Context, loc entities.Locator) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.resolve(loc).IsVisible()
}

// URL - returns the current page URL
func (s *playwrightSession) URL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.page.URL(), nil
}

// Title - returns the current page title
func (s *playwrightSession) Title(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.page.Title()
}

// Screenshot - captures the current page
func (s *playwrightSession) Screenshot(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(false),
	})
}

// SaveState - persists the context storage state through the store
func (s *playwrightSession) SaveState() error {
	if s.store == nil || s.context == nil {
		return nil
	}

	state, err := s.context.StorageState()
	if err != nil {
		if isClosedError(err) {
			return nil
		}
		return fmt.Errorf("failed to read storage state: %w", err)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode storage state: %w", err)
	}
	return s.store.SaveState(data)
}

// Close - saves state and releases page, context, browser and driver
func (s *playwrightSession) Close() error {
	var closeErr error

	if err := s.SaveState(); err != nil && !isClosedError(err) {
		closeErr = err
	}

	if s.context != nil {
		if err := s.context.Close(); err != nil && !isClosedError(err) {
			closeErr = joinCloseErr(closeErr, "failed to close context", err)
		}
		s.context = nil
	}

	if s.browser != nil {
		if err := s.browser.Close(); err != nil && !isClosedError(err) {
			closeErr = joinCloseErr(closeErr, "failed to close browser", err)
		}
		s.browser = nil
	}

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && !isClosedError(err) {
			closeErr = joinCloseErr(closeErr, "failed to stop driver", err)
		}
		s.pw = nil
	}

	return closeErr
}

func isClosedError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "closed") || strings.Contains(msg, "target closed")
}

func joinCloseErr(existing error, msg string, err error) error {
	if existing != nil {
		return fmt.Errorf("%v; %s: %w", existing, msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
