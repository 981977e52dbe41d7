package interfaces

import (
	"context"

	"e2e_automation/domain/entities"
)

// Session is one isolated browser page/context. A session is created per test
// or scenario run from the configuration record and must be closed by its
// owner. All element operations take a declarative locator that the driver
// resolves against live page state at call time; failures from the underlying
// engine propagate unwrapped in meaning (no retry or recovery happens here).
type Session interface {
	// Navigate loads a path relative to the configured base URL. An absolute
	// URL is used as-is.
	Navigate(ctx context.Context, path string) error

	// Click clicks the element described by the locator.
	Click(ctx context.Context, loc entities.Locator) error

	// Fill clears the element and types text into it.
	Fill(ctx context.Context, loc entities.Locator, text string) error

	// WaitVisible waits until the element is visible.
	WaitVisible(ctx context.Context, loc entities.Locator) error

	// Text returns the element's text content.
	Text(ctx context.Context, loc entities.Locator) (string, error)

	// InputValue returns the current value of an input element.
	InputValue(ctx context.Context, loc entities.Locator) (string, error)

	// IsVisible reports element visibility without waiting.
	IsVisible(ctx context.Context, loc entities.Locator) (bool, error)

	// URL returns the current page URL.
	URL(ctx context.Context) (string, error)

	// Title returns the current page title.
	Title(ctx context.Context) (string, error)

	// Screenshot captures the current page.
	Screenshot(ctx context.Context) ([]byte, error)

	// SaveState persists the storage-state snapshot, when configured.
	SaveState() error

	// Close releases the page, context and browser resources.
	Close() error
}
