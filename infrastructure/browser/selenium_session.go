package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"
)

const chromeDriverPort = 9515

type seleniumSession struct {
	wd      selenium.WebDriver
	service *selenium.Service

	baseURL string
	timeout time.Duration
	store   interfaces.StateStore
	logger  *logrus.Logger
}

// findChromeDriver - finds ChromeDriver executable path
func findChromeDriver() (string, error) {
	if path := os.Getenv("BROWSER_DRIVER_PATH"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("chromedriver not found. Please install it or set BROWSER_DRIVER_PATH environment variable")
}

// findChromeBinary - finds Chrome/Chromium browser executable path
func findChromeBinary() string {
	if path := os.Getenv("CHROME_BINARY_PATH"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	chromePaths := []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
	}

	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	return ""
}

// NewSeleniumSession - creates a ChromeDriver-backed session. Only chromium is
// supported through this driver; role locators map onto CSS/XPath strategies.
func NewSeleniumSession(cfg entities.Config, store interfaces.StateStore, logger *logrus.Logger) (interfaces.Session, error) {
	driverPath, err := findChromeDriver()
	if err != nil {
		return nil, fmt.Errorf("failed to find chromedriver: %w", err)
	}
	logger.Infof("Using ChromeDriver at: %s", driverPath)

	service, err := selenium.NewChromeDriverService(driverPath, chromeDriverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w", err)
	}

	args := []string{
		"--disable-dev-shm-usage",
		"--no-sandbox",
		fmt.Sprintf("--window-size=%d,%d", cfg.Viewport.Width, cfg.Viewport.Height),
	}
	if cfg.Headless {
		args = append(args, "--headless=new")
	}
	if cfg.IgnoreHTTPSErrors {
		args = append(args, "--ignore-certificate-errors")
	}

	chromeCaps := chrome.Capabilities{Args: args}
	if binary := findChromeBinary(); binary != "" {
		logger.Infof("Using Chrome binary at: %s", binary)
		chromeCaps.Path = binary
	}

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", chromeDriverPort))
	if err != nil {
		service.Stop()
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}

	return &seleniumSession{
		wd:      wd,
		service: service,
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
		store:   store,
		logger:  logger,
	}, nil
}

// resolveURL - joins a relative path with the configured base URL
func (s *seleniumSession) resolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Navigate - navigates browser to the resolved URL
func (s *seleniumSession) Navigate(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := strings.TrimRight(s.resolveURL(path), "/")
	s.logger.Infof("Navigating to: %s", url)
	return s.wd.Get(url)
}

// Click - clicks on the element after scrolling it into view
func (s *seleniumSession) Click(ctx context.Context, loc entities.Locator) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Infof("Clicking: %s", loc)

	element, err := s.findElement(loc)
	if err != nil {
		return fmt.Errorf("element not found: %w", err)
	}

	script := `arguments[0].scrollIntoView({ behavior: 'instant', block: 'center' });`
	if _, err := s.wd.ExecuteScript(script, []interface{}{element}); err != nil {
		s.logger.Warnf("Failed to scroll to element: %v", err)
	}

	return element.Click()
}

// Fill - clears the field and types the text
func (s *seleniumSession) Fill(ctx context.Context, loc entities.Locator, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Infof("Filling %s", loc)

	element, err := s.findElement(loc)
	if err != nil {
		return fmt.Errorf("element not found: %w", err)
	}

	if err := element.Clear(); err != nil {
		s.logger.Warnf("Failed to clear element: %v", err)
	}
	return element.SendKeys(text)
}

// WaitVisible - polls until the element is displayed
func (s *seleniumSession) WaitVisible(ctx context.Context, loc entities.Locator) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.wd.WaitWithTimeout(func(wd selenium.WebDriver) (bool, error) {
		element, err := s.findElement(loc)
		if err != nil {
			return false, nil
		}
		displayed, err := element.IsDisplayed()
		if err != nil {
			return false, nil
		}
		return displayed, nil
	}, s.timeout)
	if err != nil {
		return fmt.Errorf("element %s not visible after %s: %w", loc, s.timeout, err)
	}
	return nil
}

// Text - returns the element's visible text
func (s *seleniumSession) Text(ctx context.Context, loc entities.Locator) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	element, err := s.findElement(loc)
	if err != nil {
		return "", fmt.Errorf("element not found: %w", err)
	}
	text, err := element.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// InputValue - returns the element's value attribute
func (s *seleniumSession) InputValue(ctx context.Context, loc entities.Locator) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	element, err := s.findElement(loc)
	if err != nil {
		return "", fmt.Errorf("element not found: %w", err)
	}
	return element.GetAttribute("value")
}

// IsVisible - checks if the element is displayed on the page
func (s *seleniumSession) IsVisible(ctx context.Context, loc entities.Locator) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	element, err := s.findElement(loc)
	if err != nil {
		return false, nil
	}
	return element.IsDisplayed()
}

// URL - returns current page URL
func (s *seleniumSession) URL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.wd.CurrentURL()
}

// Title - returns current page title
func (s *seleniumSession) Title(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.wd.Title()
}

// Screenshot - takes screenshot of current page
func (s *seleniumSession) Screenshot(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.wd.Screenshot()
}

// SaveState - persists cookies as the storage-state snapshot
func (s *seleniumSession) SaveState() error {
	if s.store == nil {
		return nil
	}

	cookies, err := s.wd.GetCookies()
	if err != nil {
		return fmt.Errorf("failed to read cookies: %w", err)
	}

	data, err := json.Marshal(map[string]interface{}{"cookies": cookies})
	if err != nil {
		return fmt.Errorf("failed to encode storage state: %w", err)
	}
	return s.store.SaveState(data)
}

// Close - closes browser and stops ChromeDriver service
func (s *seleniumSession) Close() error {
	var closeErr error

	if err := s.SaveState(); err != nil {
		s.logger.Warnf("Failed to save storage state: %v", err)
	}

	if s.wd != nil {
		if err := s.wd.Quit(); err != nil {
			closeErr = fmt.Errorf("failed to quit webdriver: %w", err)
		}
		s.wd = nil
	}
	if s.service != nil {
		if err := s.service.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop chromedriver: %w", err)
		}
		s.service = nil
	}
	return closeErr
}

type locatorStrategy struct {
	by    string
	value string
}

// findElement - finds element trying locator-appropriate strategies in order
func (s *seleniumSession) findElement(loc entities.Locator) (selenium.WebElement, error) {
	var strategies []locatorStrategy
	if loc.Kind == entities.LocatorByRole || (loc.Kind == "" && loc.Role != "") {
		strategies = roleStrategies(loc)
	} else {
		strategies = []locatorStrategy{
			{selenium.ByCSSSelector, loc.Selector},
			{selenium.ByXPATH, loc.Selector},
			{selenium.ByID, loc.Selector},
		}
	}

	for _, st := range strategies {
		element, err := s.wd.FindElement(st.by, st.value)
		if err == nil {
			return element, nil
		}
	}

	return nil, fmt.Errorf("element not found with locator: %s", loc)
}

// roleStrategies - maps a role locator onto CSS/XPath lookups. WebDriver has
// no accessible-name query, so names match against text content, aria-label
// and placeholder.
func roleStrategies(loc entities.Locator) []locatorStrategy {
	name := strings.ReplaceAll(loc.Name, "'", "\\'")
	var out []locatorStrategy
	add := func(by, value string) {
		out = append(out, locatorStrategy{by, value})
	}

	switch strings.ToLower(loc.Role) {
	case "button":
		if name != "" {
			add(selenium.ByXPATH, fmt.Sprintf("//button[contains(normalize-space(.), '%s')]", name))
			add(selenium.ByCSSSelector, fmt.Sprintf("button[aria-label='%s']", name))
			add(selenium.ByXPATH, fmt.Sprintf("//*[@role='button'][contains(normalize-space(.), '%s')]", name))
		} else {
			add(selenium.ByCSSSelector, "button")
		}
	case "link":
		if name != "" {
			add(selenium.ByPartialLinkText, loc.Name)
			add(selenium.ByXPATH, fmt.Sprintf("//a[contains(normalize-space(.), '%s')]", name))
		} else {
			add(selenium.ByCSSSelector, "a")
		}
	case "searchbox", "textbox":
		if name != "" {
			add(selenium.ByCSSSelector, fmt.Sprintf("input[aria-label='%s']", name))
			add(selenium.ByCSSSelector, fmt.Sprintf("input[placeholder='%s']", name))
			add(selenium.ByXPATH, fmt.Sprintf("//input[@name='%s']", name))
		}
		add(selenium.ByCSSSelector, "input[type='search'], input[type='text']")
	case "heading":
		if name != "" {
			add(selenium.ByXPATH, fmt.Sprintf("//h1[contains(normalize-space(.), '%s')] | //h2[contains(normalize-space(.), '%s')]", name, name))
		} else {
			add(selenium.ByCSSSelector, "h1, h2, h3")
		}
	default:
		if name != "" {
			add(selenium.ByXPATH, fmt.Sprintf("//*[@role='%s'][contains(normalize-space(.), '%s')]", strings.ToLower(loc.Role), name))
			add(selenium.ByCSSSelector, fmt.Sprintf("[role='%s'][aria-label='%s']", strings.ToLower(loc.Role), name))
		} else {
			add(selenium.ByCSSSelector, fmt.Sprintf("[role='%s']", strings.ToLower(loc.Role)))
		}
	}

	return out
}
