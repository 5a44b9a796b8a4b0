// Package ui holds the interactive state of the portfolio page: project
// filtering, modal dialogs, the theme toggle and the testimonial carousel.
//
// State lives in the page markup itself, held as a goquery document. Features
// select elements by id or class, flip classes and attributes, and stay inert
// when an element is missing.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is the page markup
type Document struct {
	*goquery.Document
}

// ParseDocument reads page markup
func ParseDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Document{Document: doc}, nil
}

// Root returns the <html> element, which carries the theme class
func (d *Document) Root() *goquery.Selection {
	return d.Find("html").First()
}

// Body returns the <body> element, which carries the scroll lock
func (d *Document) Body() *goquery.Selection {
	return d.Find("body").First()
}

// ByID selects the element with the given id. The selection is empty when
// there is none. Ids are compared literally so content ids need no escaping.
func (d *Document) ByID(id string) *goquery.Selection {
	return d.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return id != "" && v == id
	}).First()
}

// HTML renders the document back to markup
func (d *Document) HTML() (string, error) {
	return goquery.OuterHtml(d.Selection)
}

// present reports whether sel holds at least one element
func present(sel *goquery.Selection) bool {
	return sel != nil && sel.Length() > 0
}

// sameNode reports whether a and b select the same first element
func sameNode(a, b *goquery.Selection) bool {
	return present(a) && present(b) && a.Get(0) == b.Get(0)
}

// within reports whether the first element of sel belongs to set
func within(set, sel *goquery.Selection) bool {
	return present(set) && present(sel) && set.IndexOfNode(sel.Get(0)) >= 0
}

// StyleValue returns one inline style property of sel's first element
func StyleValue(sel *goquery.Selection, prop string) string {
	for _, decl := range strings.Split(sel.AttrOr("style", ""), ";") {
		k, v, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(k) == prop {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// SetStyleValue sets one inline style property; an empty value removes it
func SetStyleValue(sel *goquery.Selection, prop, value string) {
	var decls []string
	for _, decl := range strings.Split(sel.AttrOr("style", ""), ";") {
		k, _, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSpace(k) == prop {
			continue
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	if value != "" {
		decls = append(decls, prop+": "+value)
	}
	if len(decls) == 0 {
		sel.RemoveAttr("style")
		return
	}
	sel.SetAttr("style", strings.Join(decls, "; "))
}

// node builds an element; attrs are name, value pairs
func node(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// textNode builds an element holding text
func textNode(a atom.Atom, text string, attrs ...string) *html.Node {
	n := node(a, attrs...)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func appendAll(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		parent.AppendChild(c)
	}
	return parent
}
