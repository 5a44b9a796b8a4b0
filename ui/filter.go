package ui

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Filter shows and hides project cards by category
type Filter struct {
	buttons *goquery.Selection
	cards   *goquery.Selection
}

// NewFilter binds the document's filter buttons and project cards
func NewFilter(doc *Document) *Filter {
	return &Filter{
		buttons: doc.Find("." + ClassFilterButton),
		cards:   doc.Find("." + ClassProjectCard),
	}
}

// Buttons returns the filter buttons in page order
func (f *Filter) Buttons() *goquery.Selection {
	return f.buttons
}

// Select activates button and applies its filter. Buttons not bound to this
// filter are ignored.
func (f *Filter) Select(button *goquery.Selection) {
	if !within(f.buttons, button) {
		return
	}
	button = button.First()
	f.buttons.RemoveClass(ClassActive)
	button.AddClass(ClassActive)
	f.apply(button.AttrOr(AttrFilter, ""))
}

// SelectCategory selects the first button whose filter is token
func (f *Filter) SelectCategory(token string) bool {
	button := f.buttons.FilterFunction(func(_ int, b *goquery.Selection) bool {
		return b.AttrOr(AttrFilter, "") == token
	})
	if !present(button) {
		return false
	}
	f.Select(button)
	return true
}

// SelectIndex selects the i-th button
func (f *Filter) SelectIndex(i int) bool {
	if i < 0 || i >= f.buttons.Length() {
		return false
	}
	f.Select(f.buttons.Eq(i))
	return true
}

// Active returns the active button's filter token, empty when none is active
func (f *Filter) Active() string {
	return f.buttons.Filter("." + ClassActive).First().AttrOr(AttrFilter, "")
}

// Visible returns the cards not hidden by the filter
func (f *Filter) Visible() *goquery.Selection {
	return f.cards.Not("." + ClassHidden)
}

func (f *Filter) apply(token string) {
	f.cards.Each(func(_ int, card *goquery.Selection) {
		if token == FilterAll || HasCategory(card.AttrOr(AttrCategories, ""), token) {
			card.RemoveClass(ClassHidden)
		} else {
			card.AddClass(ClassHidden)
		}
	})
}

// HasCategory reports whether the space separated categories list holds token
func HasCategory(categories, token string) bool {
	if token == "" {
		return false
	}
	for _, c := range strings.Fields(categories) {
		if c == token {
			return true
		}
	}
	return false
}
