package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modalPage(t *testing.T) (*Document, *Modals) {
	t.Helper()
	doc := BuildDocument(Content{Projects: []Project{{ID: "one"}, {ID: "two"}}})
	m := NewModals(doc)
	require.Equal(t, 2, m.Triggers().Length())
	return doc, m
}

func TestModalOpenLocksScroll(t *testing.T) {
	doc, m := modalPage(t)

	require.True(t, m.OpenFromTrigger(m.Triggers().First()))
	modal := doc.ByID(ModalID("one"))
	assert.True(t, modal.HasClass(ClassActive))
	assert.True(t, m.ScrollLocked())
	assert.Equal(t, "hidden", StyleValue(doc.Body(), "overflow"))
	require.Equal(t, 1, m.OpenModals().Length())
	assert.True(t, sameNode(modal, m.OpenModals()))
}

func TestModalEscapeClosesAll(t *testing.T) {
	doc, m := modalPage(t)
	m.OpenFromTrigger(m.Triggers().Eq(0))
	m.OpenFromTrigger(m.Triggers().Eq(1))
	require.Equal(t, 2, m.OpenModals().Length())

	m.KeyDown("Enter")
	assert.Equal(t, 2, m.OpenModals().Length())

	m.KeyDown(KeyEscape)
	assert.Equal(t, 0, m.OpenModals().Length())
	assert.False(t, m.ScrollLocked())
	_, styled := doc.Body().Attr("style")
	assert.False(t, styled)
}

func TestModalOverlayClick(t *testing.T) {
	doc, m := modalPage(t)
	modal := doc.ByID(ModalID("one"))
	m.Open(modal)

	// a click inside the content does not close
	m.OverlayClick(modal, modal.Find("."+ClassModalContent))
	assert.True(t, modal.HasClass(ClassActive))

	m.OverlayClick(modal, doc.ByID(ModalID("one")))
	assert.False(t, modal.HasClass(ClassActive))
	assert.False(t, m.ScrollLocked())
}

func TestModalCloseButtonKeepsLockWhileOthersOpen(t *testing.T) {
	doc, m := modalPage(t)
	one := doc.ByID(ModalID("one"))
	two := doc.ByID(ModalID("two"))
	m.Open(one)
	m.Open(two)

	m.ClickClose(m.CloseButton(one))
	assert.False(t, one.HasClass(ClassActive))
	assert.True(t, m.ScrollLocked())

	m.ClickClose(m.CloseButton(two))
	assert.False(t, m.ScrollLocked())
}

func TestModalUnknownTarget(t *testing.T) {
	_, m := modalPage(t)
	stray := mustParse(t, `<button class="read-more-btn" data-modal="modal-missing"></button>`).
		Find("." + ClassReadMore)
	assert.False(t, m.OpenFromTrigger(stray))
	assert.False(t, m.OpenFromTrigger(nil))
	assert.False(t, m.ScrollLocked())

	assert.NotPanics(t, func() {
		m.Close(nil)
		m.ClickClose(nil)
		m.ClickClose(m.Triggers().First())
		m.OverlayClick(nil, nil)
	})
	assert.Equal(t, 0, m.CloseButton(nil).Length())
}

func TestModalWithoutCloseButton(t *testing.T) {
	doc := mustParse(t, `<div id="bare" class="project-modal"><p>text</p></div>`)
	m := NewModals(doc)
	modal := doc.ByID("bare")

	assert.Equal(t, 0, m.CloseButton(modal).Length())
	m.Open(modal)
	assert.True(t, m.ScrollLocked())
	m.KeyDown(KeyEscape)
	assert.False(t, modal.HasClass(ClassActive))
	assert.False(t, m.ScrollLocked())
}
