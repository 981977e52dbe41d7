package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"
)

type recordingSession struct {
	calls []string
	text  string
}

func (s *recordingSession) Navigate(ctx context.Context, path string) error {
	s.calls = append(s.calls, "navigate "+path)
	return nil
}

func (s *recordingSession) Click(ctx context.Context, loc entities.Locator) error {
	s.calls = append(s.calls, "click "+loc.String())
	return nil
}

func (s *recordingSession) Fill(ctx context.Context, loc entities.Locator, text string) error {
	s.calls = append(s.calls, "fill "+loc.String()+" "+text)
	return nil
}

func (s *recordingSession) WaitVisible(ctx context.Context, loc entities.Locator) error {
	s.calls = append(s.calls, "wait "+loc.String())
	return nil
}

func (s *recordingSession) Text(ctx context.Context, loc entities.Locator) (string, error) {
	s.calls = append(s.calls, "text "+loc.String())
	return s.text, nil
}

func (s *recordingSession) InputValue(ctx context.Context, loc entities.Locator) (string, error) {
	return "", nil
}

func (s *recordingSession) IsVisible(ctx context.Context, loc entities.Locator) (bool, error) {
	return true, nil
}

func (s *recordingSession) URL(ctx context.Context) (string, error)     { return "", nil }
func (s *recordingSession) Title(ctx context.Context) (string, error)   { return "", nil }
func (s *recordingSession) Screenshot(ctx context.Context) ([]byte, error) {
	return nil, nil
}
func (s *recordingSession) SaveState() error { return nil }
func (s *recordingSession) Close() error     { return nil }

var _ interfaces.Session = (*recordingSession)(nil)

func TestHomePageLocators(t *testing.T) {
	p := NewHomePage(&recordingSession{})

	assert.Equal(t, entities.ByRole("button", "Search (Ctrl+K)"), p.SearchButton)
	assert.Equal(t, entities.ByRole("searchbox", "Search"), p.SearchBox)
	assert.Equal(t, entities.ByRole("link", "Docs"), p.DocsLink)
	assert.Equal(t, entities.BySelector("h1"), p.MainHeading)
}

func TestHomePageSearch(t *testing.T) {
	session := &recordingSession{}
	p := NewHomePage(session)

	ctx := context.Background()
	require.NoError(t, p.Navigate(ctx))
	require.NoError(t, p.Search(ctx, "locator"))
	require.NoError(t, p.GoToDocs(ctx))

	assert.Equal(t, []string{
		"navigate /",
		`click role=button[name="Search (Ctrl+K)"]`,
		`wait role=searchbox[name="Search"]`,
		`fill role=searchbox[name="Search"] locator`,
		`click role=link[name="Docs"]`,
	}, session.calls)
}

func TestDocsPage(t *testing.T) {
	session := &recordingSession{text: "Installation"}
	p := NewDocsPage(session)

	ctx := context.Background()
	require.NoError(t, p.Navigate(ctx))

	heading, err := p.HeadingText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Installation", heading)
	assert.Equal(t, []string{"navigate /docs/intro", "text h1"}, session.calls)
}
