// Package layout computes where the page controls sit in the window so that
// drawing and click handling agree.
package layout

import "math"

// Rect is an axis-aligned rectangle in screen pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Geometry constants
const (
	Margin       = 16.0
	Gap          = 8.0
	CharWidth    = 7.0 // basicfont 7x13 advance
	ButtonHeight = 26.0
	ButtonPad    = 10.0
	ToggleWidth  = 96.0

	CardWidth     = 240.0
	CardHeight    = 84.0
	CardGap       = 12.0
	ReadMoreW     = 84.0
	ReadMoreH     = 20.0
	CarouselH     = 58.0
	IndicatorSize = 10.0
	IndicatorGap  = 8.0

	ModalWidth  = 520.0
	ModalHeight = 220.0
	CloseSize   = 22.0
)

// Input is what the layout depends on
type Input struct {
	Width, Height int
	FilterLabels  []string
	VisibleCards  int
	Indicators    int
	ScrollY       float64
}

// Page holds the rectangles of every control
type Page struct {
	Filters    []Rect
	Toggle     Rect
	Cards      []Rect
	ReadMore   []Rect
	CardsArea  Rect
	Carousel   Rect
	Indicators []Rect
	ModalBox   Rect
	ModalClose Rect

	// MaxScroll is the largest useful ScrollY for the card grid
	MaxScroll float64
}

// ButtonWidth is the width of a text button for label
func ButtonWidth(label string) float64 {
	return float64(len([]rune(label)))*CharWidth + 2*ButtonPad
}

// Columns is the number of card columns that fit in width
func Columns(width float64) int {
	avail := width - 2*Margin
	n := int(math.Floor((avail + CardGap) / (CardWidth + CardGap)))
	return max(1, n)
}

// Compute lays out the page for in
func Compute(in Input) Page {
	w, h := float64(in.Width), float64(in.Height)
	var p Page

	// filter bar, wrapping onto further rows when needed
	x, y := Margin, Margin
	right := w - Margin - ToggleWidth - Gap
	for _, label := range in.FilterLabels {
		bw := ButtonWidth(label)
		if x > Margin && x+bw > right {
			x = Margin
			y += ButtonHeight + Gap
		}
		p.Filters = append(p.Filters, Rect{X: x, Y: y, W: bw, H: ButtonHeight})
		x += bw + Gap
	}
	p.Toggle = Rect{X: w - Margin - ToggleWidth, Y: Margin, W: ToggleWidth, H: ButtonHeight}

	// carousel pinned to the bottom
	if in.Indicators > 0 {
		p.Carousel = Rect{X: Margin, Y: h - Margin - CarouselH, W: w - 2*Margin, H: CarouselH}
		total := float64(in.Indicators)*IndicatorSize + float64(in.Indicators-1)*IndicatorGap
		ix := p.Carousel.X + (p.Carousel.W-total)/2
		iy := p.Carousel.Y + p.Carousel.H - IndicatorSize - 8
		for i := 0; i < in.Indicators; i++ {
			p.Indicators = append(p.Indicators, Rect{X: ix, Y: iy, W: IndicatorSize, H: IndicatorSize})
			ix += IndicatorSize + IndicatorGap
		}
	}

	// card grid between the filter bar and the carousel
	top := y + ButtonHeight + 2*Gap
	bottom := h - Margin
	if !p.Carousel.Empty() {
		bottom = p.Carousel.Y - Gap
	}
	p.CardsArea = Rect{X: Margin, Y: top, W: w - 2*Margin, H: math.Max(0, bottom-top)}

	cols := Columns(w)
	rows := (in.VisibleCards + cols - 1) / cols
	content := float64(rows)*(CardHeight+CardGap) - CardGap
	p.MaxScroll = math.Max(0, content-p.CardsArea.H)
	scroll := math.Max(0, math.Min(in.ScrollY, p.MaxScroll))

	for i := 0; i < in.VisibleCards; i++ {
		col, row := i%cols, i/cols
		card := Rect{
			X: Margin + float64(col)*(CardWidth+CardGap),
			Y: top + float64(row)*(CardHeight+CardGap) - scroll,
			W: CardWidth,
			H: CardHeight,
		}
		p.Cards = append(p.Cards, card)
		p.ReadMore = append(p.ReadMore, Rect{
			X: card.X + card.W - ReadMoreW - 8,
			Y: card.Y + card.H - ReadMoreH - 8,
			W: ReadMoreW,
			H: ReadMoreH,
		})
	}

	// modal dialog centered, shrunk to fit small windows
	mw := math.Min(ModalWidth, w-2*Margin)
	mh := math.Min(ModalHeight, h-2*Margin)
	p.ModalBox = Rect{X: (w - mw) / 2, Y: (h - mh) / 2, W: mw, H: mh}
	p.ModalClose = Rect{X: p.ModalBox.X + mw - CloseSize - 6, Y: p.ModalBox.Y + 6, W: CloseSize, H: CloseSize}

	return p
}

// Hit returns the index of the first rect containing the point, or -1
func Hit(rects []Rect, x, y float64) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// HitClipped is Hit restricted to the visible clip. An empty clip shows
// nothing, so every point misses.
func HitClipped(rects []Rect, clip Rect, x, y float64) int {
	if !clip.Contains(x, y) {
		return -1
	}
	return Hit(rects, x, y)
}
