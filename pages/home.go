// Package pages holds the page objects for the template's target site. A page
// object bundles a borrowed session handle with the fixed locator descriptors
// for one page; resolution happens in the driver at action time, so accessors
// stay cheap and side-effect free.
package pages

import (
	"context"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"
)

// HomePage models the landing page of the documented site.
type HomePage struct {
	session interfaces.Session

	SearchButton entities.Locator
	SearchBox    entities.Locator
	DocsLink     entities.Locator
	MainHeading  entities.Locator
}

// NewHomePage - binds the fixed locators to a session. The session is
// borrowed; the page object never closes it.
func NewHomePage(session interfaces.Session) *HomePage {
	return &HomePage{
		session:      session,
		SearchButton: entities.ByRole("button", "Search (Ctrl+K)"),
		SearchBox:    entities.ByRole("searchbox", "Search"),
		DocsLink:     entities.ByRole("link", "Docs"),
		MainHeading:  entities.BySelector("h1"),
	}
}

// Navigate loads the homepage relative to the configured base URL.
func (p *HomePage) Navigate(ctx context.Context) error {
	return p.session.Navigate(ctx, "/")
}

// Search opens the search dialog and fills the query.
func (p *HomePage) Search(ctx context.Context, query string) error {
	if err := p.session.Click(ctx, p.SearchButton); err != nil {
		return err
	}
	if err := p.session.WaitVisible(ctx, p.SearchBox); err != nil {
		return err
	}
	return p.session.Fill(ctx, p.SearchBox, query)
}

// GoToDocs follows the documentation link in the navigation.
func (p *HomePage) GoToDocs(ctx context.Context) error {
	return p.session.Click(ctx, p.DocsLink)
}
