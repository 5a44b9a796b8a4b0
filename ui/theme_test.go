package ui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfoliofx/prefs"
)

type failingStore struct{ prefs.Store }

func (failingStore) Get(string) (string, bool) { return "", false }
func (failingStore) Set(string, string) error  { return errors.New("disk full") }

func TestThemeToggleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	store, err := prefs.OpenFileStore(path)
	require.NoError(t, err)

	doc := BuildDocument(DefaultContent())
	theme := NewTheme(doc, store)
	theme.Load()
	require.False(t, theme.DarkMode())

	require.NoError(t, theme.Toggle())
	assert.True(t, theme.DarkMode())
	v, _ := store.Get(prefs.ThemeKey)
	assert.Equal(t, ThemeDark, v)

	// a fresh page load restores dark mode
	reopened, err := prefs.OpenFileStore(path)
	require.NoError(t, err)
	page := NewPage(DefaultContent(), reopened, nil, nil)
	assert.True(t, page.Theme.DarkMode())
	assert.True(t, page.Doc.Root().HasClass(ClassDark))
	assert.Equal(t, "true", page.Doc.ByID(IDThemeToggle).AttrOr("aria-pressed", ""))

	require.NoError(t, page.Theme.Toggle())
	assert.False(t, page.Theme.DarkMode())
	v, _ = reopened.Get(prefs.ThemeKey)
	assert.Equal(t, ThemeLight, v)
}

func TestThemeLoadIgnoresOtherValues(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(prefs.ThemeKey, "solarized"))

	theme := NewTheme(BuildDocument(DefaultContent()), store)
	theme.Load()
	assert.False(t, theme.DarkMode())
}

func TestThemeWithoutToggleControl(t *testing.T) {
	store := prefs.NewMemoryStore()
	theme := NewTheme(mustParse(t, `<main></main>`), store)
	assert.False(t, theme.HasToggle())

	require.NoError(t, theme.Toggle())
	assert.False(t, theme.DarkMode())
	_, ok := store.Get(prefs.ThemeKey)
	assert.False(t, ok)
}

func TestThemeApply(t *testing.T) {
	theme := NewTheme(BuildDocument(DefaultContent()), prefs.NewMemoryStore())
	theme.Apply(ThemeDark)
	assert.True(t, theme.DarkMode())
	theme.Apply("bogus")
	assert.True(t, theme.DarkMode())
	theme.Apply(ThemeLight)
	assert.False(t, theme.DarkMode())
}

func TestThemeToggleSaveFailure(t *testing.T) {
	theme := NewTheme(BuildDocument(DefaultContent()), failingStore{})
	err := theme.Toggle()
	assert.Error(t, err)
	assert.True(t, theme.DarkMode(), "the class flips even when saving fails")
}
