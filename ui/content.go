package ui

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed default_content.json
var defaultContent []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Element ids and classes shared by the page features
const (
	ClassFilterButton   = "filter-btn"
	ClassProjectCard    = "project-card"
	ClassProjectTitle   = "project-title"
	ClassProjectSummary = "project-summary"
	ClassReadMore       = "read-more-btn"
	ClassModal          = "project-modal"
	ClassModalTitle     = "modal-title"
	ClassModalContent   = "modal-content"
	ClassModalClose     = "modal-close"
	ClassTestimonial    = "testimonial"
	ClassIndicator      = "indicator"
	ClassActive         = "active"
	ClassHidden         = "hidden-filter"
	ClassDark           = "dark"

	AttrFilter     = "data-filter"
	AttrCategories = "data-categories"
	AttrModal      = "data-modal"
	AttrIndex      = "data-index"

	IDThemeToggle  = "dark-mode-toggle"
	IDTestimonials = "testimonials"

	FilterAll = "all"
)

// Content is the data the page is built from
type Content struct {
	Filters      []FilterDef   `json:"filters"`
	Projects     []Project     `json:"projects"`
	Testimonials []Testimonial `json:"testimonials"`
}

// FilterDef is one filter button
type FilterDef struct {
	Label  string `json:"label"`
	Filter string `json:"filter"`
}

// Project is one project card with its modal
type Project struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Summary    string   `json:"summary"`
	Detail     string   `json:"detail"`
}

// Testimonial is one carousel entry
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// ParseContent decodes page content from JSON
func ParseContent(data []byte) (Content, error) {
	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("failed to decode content: %w", err)
	}
	for i, p := range c.Projects {
		if p.ID == "" {
			return Content{}, fmt.Errorf("project %d (%q) has no id", i, p.Title)
		}
	}
	return c, nil
}

// LoadContent reads page content from a JSON file
func LoadContent(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("failed to read content: %w", err)
	}
	return ParseContent(data)
}

// DefaultContent returns the built-in portfolio content
func DefaultContent() Content {
	c, err := ParseContent(defaultContent)
	if err != nil {
		panic(err)
	}
	return c
}

// CardID is the id of a project's card
func CardID(projectID string) string {
	return "project-" + projectID
}

// ModalID is the id of a project's modal
func ModalID(projectID string) string {
	return "modal-" + projectID
}

// BuildDocument lays out the page markup for content
func BuildDocument(c Content) *Document {
	body := node(atom.Body)

	toggle := textNode(atom.Button, "Dark mode", "id", IDThemeToggle, "type", "button")

	filters := node(atom.Nav, "id", "filters")
	for i, f := range c.Filters {
		class := ClassFilterButton
		if i == 0 {
			class += " " + ClassActive
		}
		filters.AppendChild(textNode(atom.Button, f.Label, "class", class, AttrFilter, f.Filter))
	}

	projects := node(atom.Section, "id", "projects")
	modals := node(atom.Div, "id", "modals")
	for _, p := range c.Projects {
		projects.AppendChild(appendAll(
			node(atom.Article, "id", CardID(p.ID), "class", ClassProjectCard,
				AttrCategories, strings.Join(p.Categories, " ")),
			textNode(atom.H3, p.Title, "class", ClassProjectTitle),
			textNode(atom.P, p.Summary, "class", ClassProjectSummary),
			textNode(atom.Button, "Read more", "class", ClassReadMore, AttrModal, ModalID(p.ID)),
		))
		modals.AppendChild(appendAll(
			node(atom.Div, "id", ModalID(p.ID), "class", ClassModal),
			textNode(atom.H2, p.Title, "class", ClassModalTitle),
			textNode(atom.Div, p.Detail, "class", ClassModalContent),
			textNode(atom.Button, "x", "class", ClassModalClose),
		))
	}

	appendAll(body, toggle, filters, projects)

	if len(c.Testimonials) > 0 {
		carousel := node(atom.Section, "id", IDTestimonials)
		dots := node(atom.Div, "class", "indicators")
		for i, t := range c.Testimonials {
			item, dot := ClassTestimonial, ClassIndicator
			if i == 0 {
				item += " " + ClassActive
				dot += " " + ClassActive
			}
			carousel.AppendChild(textNode(atom.Blockquote, t.Quote+" - "+t.Author, "class", item))
			dots.AppendChild(node(atom.Span, "class", dot, AttrIndex, strconv.Itoa(i)))
		}
		carousel.AppendChild(dots)
		body.AppendChild(carousel)
	}

	body.AppendChild(modals)

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(appendAll(node(atom.Html), node(atom.Head), body))
	return &Document{Document: goquery.NewDocumentFromNode(root)}
}
