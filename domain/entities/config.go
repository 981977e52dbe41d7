package entities

import "time"

// Driver selects the browser automation backend.
type Driver string

const (
	DriverPlaywright Driver = "playwright"
	DriverSelenium   Driver = "selenium"
)

// Viewport is the page viewport size applied to every session.
type Viewport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Config is the session configuration record. It is assembled once by the
// config loader and consumed at session-creation time; sessions copy what they
// need, so mutating a Config after a session started has no effect on it.
type Config struct {
	Driver  Driver `json:"driver" yaml:"driver"`
	Browser string `json:"browser" yaml:"browser"` // chromium, firefox, webkit

	BaseURL           string            `json:"base_url" yaml:"base_url"`
	Viewport          Viewport          `json:"viewport" yaml:"viewport"`
	IgnoreHTTPSErrors bool              `json:"ignore_https_errors" yaml:"ignore_https_errors"`
	ExtraHTTPHeaders  map[string]string `json:"extra_http_headers" yaml:"extra_http_headers"`

	// StorageStatePath points at the persisted authentication snapshot
	// (cookies/local storage). Empty disables state persistence.
	StorageStatePath string `json:"storage_state_path" yaml:"storage_state_path"`

	Headless bool          `json:"headless" yaml:"headless"`
	SlowMo   time.Duration `json:"slow_mo" yaml:"slow_mo"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`

	ResultsDir    string `json:"results_dir" yaml:"results_dir"`
	ReportDir     string `json:"report_dir" yaml:"report_dir"`
	ScreenshotDir string `json:"screenshot_dir" yaml:"screenshot_dir"`
}

const (
	DefaultBaseURL = "https://playwright.dev"
	DefaultBrowser = "chromium"
	DefaultTimeout = 30 * time.Second

	DefaultResultsDir    = "allure-results"
	DefaultReportDir     = "allure-report"
	DefaultScreenshotDir = "screenshots"
)

// DefaultConfig returns the template defaults: the documentation site as base
// URL, a desktop viewport, lenient TLS, and conservative browser headers.
func DefaultConfig() Config {
	return Config{
		Driver:            DriverPlaywright,
		Browser:           DefaultBrowser,
		BaseURL:           DefaultBaseURL,
		Viewport:          Viewport{Width: 1920, Height: 1080},
		IgnoreHTTPSErrors: true,
		ExtraHTTPHeaders: map[string]string{
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.5",
		},
		Headless:      true,
		Timeout:       DefaultTimeout,
		ResultsDir:    DefaultResultsDir,
		ReportDir:     DefaultReportDir,
		ScreenshotDir: DefaultScreenshotDir,
	}
}
