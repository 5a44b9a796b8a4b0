package ui

import "github.com/PuerkitoBio/goquery"

// KeyEscape is the key name that closes open modals
const KeyEscape = "Escape"

// Modals opens and closes project dialogs and locks body scrolling while any
// of them is open.
type Modals struct {
	doc      *Document
	modals   *goquery.Selection
	triggers *goquery.Selection
}

// NewModals binds the document's modals and their read-more triggers
func NewModals(doc *Document) *Modals {
	return &Modals{
		doc:      doc,
		modals:   doc.Find("." + ClassModal),
		triggers: doc.Find("." + ClassReadMore),
	}
}

// Triggers returns the read-more buttons in page order
func (m *Modals) Triggers() *goquery.Selection {
	return m.triggers
}

// OpenFromTrigger opens the modal a trigger references. Unknown ids are ignored.
func (m *Modals) OpenFromTrigger(trigger *goquery.Selection) bool {
	if !present(trigger) {
		return false
	}
	modal := m.doc.ByID(trigger.First().AttrOr(AttrModal, ""))
	if !within(m.modals, modal) {
		return false
	}
	m.Open(modal)
	return true
}

// Open shows modal and locks body scroll
func (m *Modals) Open(modal *goquery.Selection) {
	if !present(modal) {
		return
	}
	modal.AddClass(ClassActive)
	SetStyleValue(m.doc.Body(), "overflow", "hidden")
}

// Close hides modal; body scroll is restored once no modal is open
func (m *Modals) Close(modal *goquery.Selection) {
	if !present(modal) {
		return
	}
	modal.RemoveClass(ClassActive)
	m.syncScroll()
}

// CloseButton returns modal's close control, empty if it has none
func (m *Modals) CloseButton(modal *goquery.Selection) *goquery.Selection {
	if !present(modal) {
		return m.modals.Slice(0, 0)
	}
	return modal.Find("." + ClassModalClose).First()
}

// ClickClose handles a click on a close control
func (m *Modals) ClickClose(button *goquery.Selection) {
	if !present(button) || !button.HasClass(ClassModalClose) {
		return
	}
	modal := button.First().Closest("." + ClassModal)
	if within(m.modals, modal) {
		m.Close(modal)
	}
}

// OverlayClick closes modal when the click landed on the overlay itself
// rather than on its content.
func (m *Modals) OverlayClick(modal, target *goquery.Selection) {
	if sameNode(modal, target) {
		m.Close(modal)
	}
}

// KeyDown handles a key press; Escape closes every modal
func (m *Modals) KeyDown(key string) {
	if key == KeyEscape {
		m.CloseAll()
	}
}

// CloseAll hides every modal and restores body scroll
func (m *Modals) CloseAll() {
	m.modals.RemoveClass(ClassActive)
	m.syncScroll()
}

// OpenModals returns the open modals in page order
func (m *Modals) OpenModals() *goquery.Selection {
	return m.modals.Filter("." + ClassActive)
}

// ScrollLocked reports whether body scrolling is suppressed
func (m *Modals) ScrollLocked() bool {
	return StyleValue(m.doc.Body(), "overflow") == "hidden"
}

func (m *Modals) syncScroll() {
	if m.OpenModals().Length() == 0 {
		SetStyleValue(m.doc.Body(), "overflow", "")
	}
}
