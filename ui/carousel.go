package ui

import (
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// CarouselInterval is the time each testimonial stays on screen
const CarouselInterval = 6000 * time.Millisecond

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time { return time.Now() }

// Carousel cycles testimonials on a fixed interval. It is driven by Tick from
// the frame loop; hovering pauses it and an indicator click jumps and
// restarts the interval.
type Carousel struct {
	container  *goquery.Selection
	items      *goquery.Selection
	indicators *goquery.Selection
	clock      Clock
	interval   time.Duration

	current int
	paused  bool
	started time.Time
}

// NewCarousel binds the testimonial container. The interval starts now.
func NewCarousel(doc *Document, clock Clock) *Carousel {
	if clock == nil {
		clock = SystemClock{}
	}
	c := &Carousel{
		container: doc.ByID(IDTestimonials),
		clock:     clock,
		interval:  CarouselInterval,
	}
	c.items = c.container.Find("." + ClassTestimonial)
	c.indicators = c.container.Find("." + ClassIndicator)
	if active := c.items.Filter("." + ClassActive); present(active) {
		c.current = c.items.IndexOfSelection(active.First())
	}
	c.started = clock.Now()
	return c
}

// Len returns the number of testimonials
func (c *Carousel) Len() int {
	return c.items.Length()
}

// Current returns the active testimonial index
func (c *Carousel) Current() int {
	return c.current
}

// Container returns the carousel element, empty when the page has none
func (c *Carousel) Container() *goquery.Selection {
	return c.container
}

// Items returns the testimonial elements
func (c *Carousel) Items() *goquery.Selection {
	return c.items
}

// Indicators returns the indicator elements
func (c *Carousel) Indicators() *goquery.Selection {
	return c.indicators
}

// Paused reports whether hovering has paused the rotation
func (c *Carousel) Paused() bool {
	return c.paused
}

// Tick advances by one testimonial for each full interval elapsed since the
// last (re)start. It returns whether the active index changed.
func (c *Carousel) Tick() bool {
	if c.paused || c.Len() == 0 {
		return false
	}
	now := c.clock.Now()
	if now.Sub(c.started) < c.interval {
		return false
	}
	c.show((c.current + 1) % c.Len())
	c.started = c.started.Add(c.interval)
	// a long stall should not replay every missed step at once
	if now.Sub(c.started) >= c.interval {
		c.started = now
	}
	return true
}

// HoverEnter pauses rotation
func (c *Carousel) HoverEnter() {
	c.paused = true
}

// HoverLeave resumes rotation with a fresh interval
func (c *Carousel) HoverLeave() {
	if !c.paused {
		return
	}
	c.paused = false
	c.started = c.clock.Now()
}

// IndicatorClick shows testimonial i and restarts the interval
func (c *Carousel) IndicatorClick(i int) {
	if i < 0 || i >= c.Len() {
		return
	}
	c.show(i)
	c.started = c.clock.Now()
}

// ClickIndicator resolves an indicator element to its index
func (c *Carousel) ClickIndicator(indicator *goquery.Selection) {
	if !within(c.indicators, indicator) {
		return
	}
	i, err := strconv.Atoi(indicator.First().AttrOr(AttrIndex, ""))
	if err != nil {
		return
	}
	c.IndicatorClick(i)
}

func (c *Carousel) show(i int) {
	c.items.RemoveClass(ClassActive)
	c.items.Eq(i).AddClass(ClassActive)
	c.indicators.RemoveClass(ClassActive)
	c.indicators.Eq(i).AddClass(ClassActive)
	c.current = i
}
