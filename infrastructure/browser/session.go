// Package browser holds the session drivers over the external automation
// engines. The playwright driver is the default; the selenium driver covers
// environments where only a system ChromeDriver is available.
package browser

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"
)

// NewSession - creates a session with the driver named in the configuration.
func NewSession(cfg entities.Config, store interfaces.StateStore, logger *logrus.Logger) (interfaces.Session, error) {
	switch cfg.Driver {
	case "", entities.DriverPlaywright:
		return NewPlaywrightSession(cfg, store, logger)
	case entities.DriverSelenium:
		return NewSeleniumSession(cfg, store, logger)
	default:
		return nil, fmt.Errorf("unknown driver %q (playwright, selenium)", cfg.Driver)
	}
}
