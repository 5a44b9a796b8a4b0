package ui

import (
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"portfoliofx/prefs"
)

// Theme values stored under prefs.ThemeKey
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme toggles dark mode on the document root and remembers the choice.
// It implements particles.ThemeSignal.
type Theme struct {
	doc    *Document
	store  prefs.Store
	toggle *goquery.Selection
}

// NewTheme binds the document root, the toggle control and the store
func NewTheme(doc *Document, store prefs.Store) *Theme {
	return &Theme{
		doc:    doc,
		store:  store,
		toggle: doc.ByID(IDThemeToggle),
	}
}

// Load applies the saved preference. Only a saved "dark" enables dark mode;
// anything else leaves the root untouched.
func (t *Theme) Load() {
	if t.store == nil {
		return
	}
	if v, ok := t.store.Get(prefs.ThemeKey); ok && v == ThemeDark {
		t.set(true)
	}
}

// Apply sets dark mode from a stored value changed elsewhere
func (t *Theme) Apply(value string) {
	switch value {
	case ThemeDark:
		t.set(true)
	case ThemeLight:
		t.set(false)
	}
}

// HasToggle reports whether the page has a toggle control
func (t *Theme) HasToggle() bool {
	return present(t.toggle)
}

// Toggle flips dark mode and persists the new value. Without a toggle
// control on the page it does nothing.
func (t *Theme) Toggle() error {
	if !t.HasToggle() {
		return nil
	}
	dark := !t.DarkMode()
	t.set(dark)

	value := ThemeLight
	if dark {
		value = ThemeDark
	}
	if t.store == nil {
		return nil
	}
	if err := t.store.Set(prefs.ThemeKey, value); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// DarkMode reports whether the root carries the dark class
func (t *Theme) DarkMode() bool {
	return t.doc.Root().HasClass(ClassDark)
}

// set updates the root class and the toggle's pressed state
func (t *Theme) set(dark bool) {
	if dark {
		t.doc.Root().AddClass(ClassDark)
	} else {
		t.doc.Root().RemoveClass(ClassDark)
	}
	if t.HasToggle() {
		t.toggle.SetAttr("aria-pressed", strconv.FormatBool(dark))
	}
}
