package ui

import (
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClock is a manually advanced Clock
type mockClock struct {
	now time.Time
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *mockClock) Now() time.Time { return m.now }

func (m *mockClock) Advance(d time.Duration) { m.now = m.now.Add(d) }

func carouselPage(clock Clock) (*Document, *Carousel) {
	doc := BuildDocument(Content{Testimonials: []Testimonial{
		{Quote: "a"}, {Quote: "b"}, {Quote: "c"},
	}})
	return doc, NewCarousel(doc, clock)
}

func activeIndexes(sel *goquery.Selection) []int {
	var out []int
	sel.Each(func(i int, e *goquery.Selection) {
		if e.HasClass(ClassActive) {
			out = append(out, i)
		}
	})
	return out
}

func TestCarouselAdvancesAfterInterval(t *testing.T) {
	clock := newMockClock()
	_, c := carouselPage(clock)
	require.Equal(t, 3, c.Len())
	assert.Equal(t, 0, c.Current())

	clock.Advance(CarouselInterval - time.Millisecond)
	assert.False(t, c.Tick())
	assert.Equal(t, 0, c.Current())

	clock.Advance(time.Millisecond)
	assert.True(t, c.Tick())
	assert.Equal(t, 1, c.Current())
	assert.Equal(t, []int{1}, activeIndexes(c.Items()))
	assert.Equal(t, []int{1}, activeIndexes(c.Indicators()))

	// wraps around modulo the count
	clock.Advance(CarouselInterval)
	c.Tick()
	clock.Advance(CarouselInterval)
	c.Tick()
	assert.Equal(t, 0, c.Current())
}

func TestCarouselAdvancesOncePerTickAfterStall(t *testing.T) {
	clock := newMockClock()
	_, c := carouselPage(clock)

	clock.Advance(5 * CarouselInterval)
	assert.True(t, c.Tick())
	assert.False(t, c.Tick())
	assert.Equal(t, 1, c.Current())
}

func TestCarouselHoverPauses(t *testing.T) {
	clock := newMockClock()
	_, c := carouselPage(clock)

	clock.Advance(CarouselInterval / 2)
	c.HoverEnter()
	assert.True(t, c.Paused())
	clock.Advance(3 * CarouselInterval)
	assert.False(t, c.Tick())
	assert.Equal(t, 0, c.Current())

	c.HoverLeave()
	assert.False(t, c.Paused())
	assert.False(t, c.Tick(), "leaving starts a fresh interval")
	clock.Advance(CarouselInterval)
	assert.True(t, c.Tick())
	assert.Equal(t, 1, c.Current())
}

func TestCarouselIndicatorClickRestarts(t *testing.T) {
	clock := newMockClock()
	_, c := carouselPage(clock)

	clock.Advance(CarouselInterval - time.Second)
	c.ClickIndicator(c.Indicators().Eq(2))
	assert.Equal(t, 2, c.Current())
	assert.Equal(t, []int{2}, activeIndexes(c.Items()))

	clock.Advance(time.Second)
	assert.False(t, c.Tick(), "the click restarted the interval")
	clock.Advance(CarouselInterval)
	assert.True(t, c.Tick())
	assert.Equal(t, 0, c.Current())

	c.IndicatorClick(7)
	assert.Equal(t, 0, c.Current())
	c.ClickIndicator(mustParse(t, `<span class="indicator" data-index="1"></span>`).Find("."+ClassIndicator))
	c.ClickIndicator(nil)
	assert.Equal(t, 0, c.Current())
}

func TestCarouselWithoutTestimonialsIsInert(t *testing.T) {
	clock := newMockClock()
	c := NewCarousel(BuildDocument(Content{}), clock)
	assert.Equal(t, 0, c.Container().Length())

	clock.Advance(10 * CarouselInterval)
	assert.False(t, c.Tick())
	assert.NotPanics(t, func() {
		c.HoverEnter()
		c.HoverLeave()
		c.IndicatorClick(0)
	})
}
