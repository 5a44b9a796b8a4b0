package ui

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"portfoliofx/prefs"
)

// Page wires the interactive features onto one document
type Page struct {
	Doc      *Document
	Content  Content
	Filter   *Filter
	Modals   *Modals
	Theme    *Theme
	Carousel *Carousel

	log *zap.Logger
}

// NewPage builds the document for content, binds every feature and applies
// the saved theme.
func NewPage(content Content, store prefs.Store, clock Clock, log *zap.Logger) *Page {
	if log == nil {
		log = zap.NewNop()
	}
	doc := BuildDocument(content)
	p := &Page{
		Doc:      doc,
		Content:  content,
		Filter:   NewFilter(doc),
		Modals:   NewModals(doc),
		Theme:    NewTheme(doc, store),
		Carousel: NewCarousel(doc, clock),
		log:      log,
	}
	p.Theme.Load()
	log.Debug("page ready",
		zap.Int("filters", p.Filter.Buttons().Length()),
		zap.Int("projects", len(content.Projects)),
		zap.Int("testimonials", p.Carousel.Len()),
		zap.Bool("dark", p.Theme.DarkMode()))
	return p
}

// Project returns the project a card was built from
func (p *Page) Project(card *goquery.Selection) (Project, bool) {
	if !present(card) {
		return Project{}, false
	}
	id := card.First().AttrOr("id", "")
	for _, project := range p.Content.Projects {
		if CardID(project.ID) == id {
			return project, true
		}
	}
	return Project{}, false
}

// ToggleTheme flips dark mode, logging a failed save. The class change
// stands even when the preference could not be written.
func (p *Page) ToggleTheme() {
	if err := p.Theme.Toggle(); err != nil {
		p.log.Warn("theme preference not saved", zap.Error(err))
		return
	}
	p.log.Debug("theme toggled", zap.Bool("dark", p.Theme.DarkMode()))
}

// ApplyPreferences re-applies values changed outside this page
func (p *Page) ApplyPreferences(values map[string]string) {
	if v, ok := values[prefs.ThemeKey]; ok {
		p.Theme.Apply(v)
	}
}

// Tick advances time-driven features
func (p *Page) Tick() {
	p.Carousel.Tick()
}

// KeyDown dispatches a named key press
func (p *Page) KeyDown(key string) {
	p.Modals.KeyDown(key)
}
