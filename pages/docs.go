package pages

import (
	"context"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"
)

// DocsPage models the documentation landing page reached via the Docs link.
type DocsPage struct {
	session interfaces.Session

	Heading entities.Locator
}

// NewDocsPage - binds the docs page locators to a session.
func NewDocsPage(session interfaces.Session) *DocsPage {
	return &DocsPage{
		session: session,
		Heading: entities.BySelector("h1"),
	}
}

// Navigate loads the docs intro page directly.
func (p *DocsPage) Navigate(ctx context.Context) error {
	return p.session.Navigate(ctx, "/docs/intro")
}

// HeadingText returns the page heading, used to confirm the docs page loaded.
func (p *DocsPage) HeadingText(ctx context.Context) (string, error) {
	return p.session.Text(ctx, p.Heading)
}
