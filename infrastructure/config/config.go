package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"e2e_automation/domain/entities"
)

// DefaultFile is the config file picked up when none is named explicitly.
const DefaultFile = "e2e.yaml"

// fileConfig is the YAML schema. Durations are written as strings ("30s",
// "250ms") and parsed into the entity record.
type fileConfig struct {
	Driver            string             `yaml:"driver"`
	Browser           string             `yaml:"browser"`
	BaseURL           string             `yaml:"base_url"`
	Viewport          *entities.Viewport `yaml:"viewport"`
	IgnoreHTTPSErrors *bool              `yaml:"ignore_https_errors"`
	ExtraHTTPHeaders  map[string]string  `yaml:"extra_http_headers"`
	StorageStatePath  string             `yaml:"storage_state_path"`
	Headless          *bool              `yaml:"headless"`
	SlowMo            string             `yaml:"slow_mo"`
	Timeout           string             `yaml:"timeout"`
	ResultsDir        string             `yaml:"results_dir"`
	ReportDir         string             `yaml:"report_dir"`
	ScreenshotDir     string             `yaml:"screenshot_dir"`
}

// Load assembles the configuration record: defaults, then the YAML file (when
// present), then E2E_* environment variables. A .env file in the working
// directory is honored but optional.
func Load(path string) (entities.Config, error) {
	// .env file is optional
	_ = godotenv.Load()

	cfg := entities.DefaultConfig()

	explicit := path != ""
	if path == "" {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := applyFile(&cfg, data); err != nil {
			return entities.Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// default file is optional
	default:
		return entities.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return entities.Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *entities.Config, data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.Driver != "" {
		cfg.Driver = entities.Driver(fc.Driver)
	}
	if fc.Browser != "" {
		cfg.Browser = fc.Browser
	}
	if fc.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(fc.BaseURL, "/")
	}
	if fc.Viewport != nil {
		cfg.Viewport = *fc.Viewport
	}
	if fc.IgnoreHTTPSErrors != nil {
		cfg.IgnoreHTTPSErrors = *fc.IgnoreHTTPSErrors
	}
	if fc.ExtraHTTPHeaders != nil {
		cfg.ExtraHTTPHeaders = fc.ExtraHTTPHeaders
	}
	if fc.StorageStatePath != "" {
		cfg.StorageStatePath = fc.StorageStatePath
	}
	if fc.Headless != nil {
		cfg.Headless = *fc.Headless
	}
	if fc.SlowMo != "" {
		d, err := time.ParseDuration(fc.SlowMo)
		if err != nil {
			return fmt.Errorf("invalid slow_mo: %w", err)
		}
		cfg.SlowMo = d
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if fc.ResultsDir != "" {
		cfg.ResultsDir = fc.ResultsDir
	}
	if fc.ReportDir != "" {
		cfg.ReportDir = fc.ReportDir
	}
	if fc.ScreenshotDir != "" {
		cfg.ScreenshotDir = fc.ScreenshotDir
	}
	return nil
}

func applyEnv(cfg *entities.Config) error {
	if v := os.Getenv("E2E_DRIVER"); v != "" {
		cfg.Driver = entities.Driver(v)
	}
	if v := os.Getenv("E2E_BROWSER"); v != "" {
		cfg.Browser = v
	}
	if v := os.Getenv("E2E_BASE_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("E2E_VIEWPORT"); v != "" {
		vp, err := parseViewport(v)
		if err != nil {
			return err
		}
		cfg.Viewport = vp
	}
	if v := os.Getenv("E2E_IGNORE_HTTPS_ERRORS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid E2E_IGNORE_HTTPS_ERRORS: %w", err)
		}
		cfg.IgnoreHTTPSErrors = b
	}
	if v := os.Getenv("E2E_STORAGE_STATE"); v != "" {
		cfg.StorageStatePath = v
	}
	if v := os.Getenv("E2E_HEADLESS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid E2E_HEADLESS: %w", err)
		}
		cfg.Headless = b
	}
	if v := os.Getenv("E2E_SLOW_MO"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid E2E_SLOW_MO: %w", err)
		}
		cfg.SlowMo = d
	}
	if v := os.Getenv("E2E_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid E2E_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("E2E_RESULTS_DIR"); v != "" {
		cfg.ResultsDir = v
	}
	if v := os.Getenv("E2E_REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}
	if v := os.Getenv("E2E_SCREENSHOT_DIR"); v != "" {
		cfg.ScreenshotDir = v
	}
	return nil
}

// parseViewport parses "1920x1080".
func parseViewport(s string) (entities.Viewport, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return entities.Viewport{}, fmt.Errorf("invalid viewport %q, expected WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return entities.Viewport{}, fmt.Errorf("invalid viewport width %q: %w", parts[0], err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return entities.Viewport{}, fmt.Errorf("invalid viewport height %q: %w", parts[1], err)
	}
	if w <= 0 || h <= 0 {
		return entities.Viewport{}, fmt.Errorf("viewport dimensions must be positive, got %q", s)
	}
	return entities.Viewport{Width: w, Height: h}, nil
}
