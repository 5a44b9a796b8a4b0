package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(29.9, 19.9))
	assert.False(t, r.Contains(30, 15))
	assert.False(t, r.Contains(5, 15))
	assert.True(t, Rect{}.Empty())
}

func TestColumns(t *testing.T) {
	assert.Equal(t, 1, Columns(200))
	assert.Equal(t, 1, Columns(2*Margin+CardWidth))
	assert.Equal(t, 2, Columns(2*Margin+2*CardWidth+CardGap))
	assert.Equal(t, 4, Columns(1100))
}

func TestComputeFilterBar(t *testing.T) {
	p := Compute(Input{Width: 1280, Height: 720, FilterLabels: []string{"All", "Games"}})
	require.Len(t, p.Filters, 2)
	assert.Equal(t, Margin, p.Filters[0].X)
	assert.Equal(t, ButtonWidth("All"), p.Filters[0].W)
	assert.Equal(t, p.Filters[0].X+p.Filters[0].W+Gap, p.Filters[1].X)
	assert.Equal(t, 1280-Margin-ToggleWidth, p.Toggle.X)
}

func TestComputeFilterBarWraps(t *testing.T) {
	labels := []string{"A very long filter label", "Another long filter label", "Third long filter label"}
	p := Compute(Input{Width: 480, Height: 600, FilterLabels: labels})
	require.Len(t, p.Filters, 3)
	assert.Greater(t, p.Filters[2].Y, p.Filters[0].Y)
	assert.Greater(t, p.CardsArea.Y, p.Filters[2].Y+ButtonHeight)
}

func TestComputeCardsAndScroll(t *testing.T) {
	in := Input{Width: 800, Height: 400, FilterLabels: []string{"All"}, VisibleCards: 9, Indicators: 3}
	p := Compute(in)
	require.Len(t, p.Cards, 9)
	require.Len(t, p.ReadMore, 9)
	cols := Columns(800)
	assert.Equal(t, p.Cards[0].Y, p.Cards[cols-1].Y)
	assert.Greater(t, p.Cards[cols].Y, p.Cards[0].Y)
	assert.Greater(t, p.MaxScroll, 0.0)

	for i := range p.Cards {
		assert.True(t, p.Cards[i].Contains(p.ReadMore[i].X+1, p.ReadMore[i].Y+1))
	}

	in.ScrollY = 1e6
	scrolled := Compute(in)
	assert.InDelta(t, p.Cards[0].Y-p.MaxScroll, scrolled.Cards[0].Y, 1e-9)

	in.ScrollY = -50
	assert.Equal(t, p.Cards[0].Y, Compute(in).Cards[0].Y)
}

func TestComputeCarousel(t *testing.T) {
	p := Compute(Input{Width: 800, Height: 600, Indicators: 3})
	require.Len(t, p.Indicators, 3)
	for _, r := range p.Indicators {
		assert.True(t, p.Carousel.Contains(r.X, r.Y))
	}
	assert.LessOrEqual(t, p.CardsArea.Y+p.CardsArea.H, p.Carousel.Y)

	none := Compute(Input{Width: 800, Height: 600})
	assert.True(t, none.Carousel.Empty())
	assert.Empty(t, none.Indicators)
}

func TestComputeModalFitsSmallWindows(t *testing.T) {
	p := Compute(Input{Width: 300, Height: 200})
	assert.LessOrEqual(t, p.ModalBox.W, 300-2*Margin)
	assert.LessOrEqual(t, p.ModalBox.H, 200-2*Margin)
	assert.True(t, p.ModalBox.Contains(p.ModalClose.X, p.ModalClose.Y))
}

func TestHit(t *testing.T) {
	rects := []Rect{{X: 0, Y: 0, W: 10, H: 10}, {X: 20, Y: 0, W: 10, H: 10}}
	assert.Equal(t, 1, Hit(rects, 25, 5))
	assert.Equal(t, -1, Hit(rects, 15, 5))
	assert.Equal(t, -1, HitClipped(rects, Rect{X: 0, Y: 0, W: 15, H: 15}, 25, 5))
	assert.Equal(t, 0, HitClipped(rects, Rect{X: 0, Y: 0, W: 15, H: 15}, 5, 5))
	assert.Equal(t, -1, HitClipped(rects, Rect{}, 5, 5))
}

func TestHitClippedRejectsCollapsedCardsArea(t *testing.T) {
	p := Compute(Input{Width: 800, Height: 130, VisibleCards: 3, Indicators: 3})
	require.True(t, p.CardsArea.Empty())
	require.Len(t, p.ReadMore, 3)

	// the button geometry still exists below the collapsed area
	assert.Equal(t, 0, Hit(p.ReadMore, 165, 115))
	assert.Equal(t, -1, HitClipped(p.ReadMore, p.CardsArea, 165, 115))
}
