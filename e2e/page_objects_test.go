package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"e2e_automation/pages"
)

func TestHomePageObject(t *testing.T) {
	session, cfg := newSession(t)
	ctx := testContext(t, cfg)

	home := pages.NewHomePage(session)
	require.NoError(t, home.Navigate(ctx))

	title, err := session.Title(ctx)
	require.NoError(t, err)
	assert.Equal(t, homeTitle, title)

	require.NoError(t, home.Search(ctx, "locator"))

	value, err := session.InputValue(ctx, home.SearchBox)
	require.NoError(t, err)
	assert.Equal(t, "locator", value)
}

func TestDocsPageObject(t *testing.T) {
	session, cfg := newSession(t)
	ctx := testContext(t, cfg)

	home := pages.NewHomePage(session)
	require.NoError(t, home.Navigate(ctx))
	require.NoError(t, home.GoToDocs(ctx))

	url, err := session.URL(ctx)
	require.NoError(t, err)
	assert.Equal(t, docsURL, url)

	docs := pages.NewDocsPage(session)
	heading, err := docs.HeadingText(ctx)
	require.NoError(t, err)
	assert.Contains(t, heading, docsHeading)
}
