package game

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"portfoliofx/game/layout"
	"portfoliofx/ui"
)

// Surface draws the particle field onto the current frame image
type Surface struct {
	img           *ebiten.Image
	width, height int
	background    color.Color
}

// NewSurface creates a surface of the given size
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height, background: lightColors.background}
}

// Size returns the drawing area size
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Clear fills the frame with the page background
func (s *Surface) Clear() {
	if s.img == nil {
		return
	}
	s.img.Fill(s.background)
}

// FillCircle draws a filled disc
func (s *Surface) FillCircle(x, y, r float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

// StrokeLine draws a line segment
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// bind sets the frame image for the next render
func (s *Surface) bind(img *ebiten.Image, background color.Color) {
	s.img = img
	s.background = background
}

func (s *Surface) resize(width, height int) {
	s.width, s.height = width, height
}

// pageColors is the overlay color scheme of one theme
type pageColors struct {
	background color.Color
	panel      color.Color
	border     color.Color
	text       color.Color
	muted      color.Color
	accent     color.Color
	accentText color.Color
	overlay    color.Color
}

var lightColors = pageColors{
	background: color.NRGBA{R: 248, G: 250, B: 252, A: 255},
	panel:      color.NRGBA{R: 255, G: 255, B: 255, A: 220},
	border:     color.NRGBA{R: 203, G: 213, B: 225, A: 255},
	text:       color.NRGBA{R: 15, G: 23, B: 42, A: 255},
	muted:      color.NRGBA{R: 71, G: 85, B: 105, A: 255},
	accent:     color.NRGBA{R: 99, G: 102, B: 241, A: 255},
	accentText: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	overlay:    color.NRGBA{R: 15, G: 23, B: 42, A: 140},
}

var darkColors = pageColors{
	background: color.NRGBA{R: 15, G: 23, B: 42, A: 255},
	panel:      color.NRGBA{R: 30, G: 41, B: 59, A: 220},
	border:     color.NRGBA{R: 71, G: 85, B: 105, A: 255},
	text:       color.NRGBA{R: 241, G: 245, B: 249, A: 255},
	muted:      color.NRGBA{R: 148, G: 163, B: 184, A: 255},
	accent:     color.NRGBA{R: 167, G: 139, B: 250, A: 255},
	accentText: color.NRGBA{R: 15, G: 23, B: 42, A: 255},
	overlay:    color.NRGBA{R: 0, G: 0, B: 0, A: 170},
}

func colorsFor(dark bool) pageColors {
	if dark {
		return darkColors
	}
	return lightColors
}

// Renderer draws the page overlay on top of the particle field
type Renderer struct {
	face *text.GoXFace
}

// NewRenderer creates a renderer using the 7x13 bitmap font
func NewRenderer() *Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// pageView is what one frame of the overlay shows
type pageView struct {
	page   *ui.Page
	layout layout.Page
	cards  *goquery.Selection
}

// Render draws the filter bar, cards, carousel and any open modal
func (r *Renderer) Render(screen *ebiten.Image, v pageView) {
	pal := colorsFor(v.page.Theme.DarkMode())

	r.drawFilters(screen, v, pal)
	r.drawCards(screen, v, pal)
	r.drawCarousel(screen, v, pal)
	r.drawModal(screen, v, pal)
}

func (r *Renderer) drawFilters(screen *ebiten.Image, v pageView, pal pageColors) {
	v.page.Filter.Buttons().EachWithBreak(func(i int, btn *goquery.Selection) bool {
		if i >= len(v.layout.Filters) {
			return false
		}
		rect, label := v.layout.Filters[i], strings.TrimSpace(btn.Text())
		if btn.HasClass(ui.ClassActive) {
			r.button(screen, rect, label, pal.accent, pal.accentText, pal.accent)
		} else {
			r.button(screen, rect, label, pal.panel, pal.text, pal.border)
		}
		return true
	})

	if v.page.Theme.HasToggle() {
		label := "Dark mode"
		if v.page.Theme.DarkMode() {
			label = "Light mode"
		}
		r.button(screen, v.layout.Toggle, label, pal.panel, pal.text, pal.border)
	}
}

func (r *Renderer) drawCards(screen *ebiten.Image, v pageView, pal pageColors) {
	area := v.layout.CardsArea
	if area.Empty() {
		return
	}
	clip := screen.SubImage(image.Rect(int(area.X), int(area.Y), int(area.X+area.W), int(area.Y+area.H))).(*ebiten.Image)

	v.cards.EachWithBreak(func(i int, card *goquery.Selection) bool {
		if i >= len(v.layout.Cards) {
			return false
		}
		rect := v.layout.Cards[i]
		r.panel(clip, rect, pal.panel, pal.border)
		title := card.Find("." + ui.ClassProjectTitle).Text()
		r.drawText(clip, clipText(title, charsFor(rect.W-16)), rect.X+8, rect.Y+8, pal.text)

		summary := card.Find("." + ui.ClassProjectSummary).Text()
		for j, line := range wrapText(summary, charsFor(rect.W-16), 2) {
			r.drawText(clip, line, rect.X+8, rect.Y+28+float64(j)*15, pal.muted)
		}
		if more := card.Find("." + ui.ClassReadMore); more.Length() > 0 {
			r.button(clip, v.layout.ReadMore[i], strings.TrimSpace(more.First().Text()), pal.accent, pal.accentText, pal.accent)
		}
		return true
	})
}

func (r *Renderer) drawCarousel(screen *ebiten.Image, v pageView, pal pageColors) {
	c := v.page.Carousel
	if c.Len() == 0 || v.layout.Carousel.Empty() {
		return
	}
	rect := v.layout.Carousel
	r.panel(screen, rect, pal.panel, pal.border)

	if item := c.Items().Eq(c.Current()); item.Length() > 0 {
		r.drawText(screen, clipText(item.Text(), charsFor(rect.W-24)), rect.X+12, rect.Y+10, pal.text)
	}
	c.Indicators().EachWithBreak(func(i int, dot *goquery.Selection) bool {
		if i >= len(v.layout.Indicators) {
			return false
		}
		d := v.layout.Indicators[i]
		fill := pal.border
		if dot.HasClass(ui.ClassActive) {
			fill = pal.accent
		}
		vector.DrawFilledCircle(screen, float32(d.X+d.W/2), float32(d.Y+d.H/2), float32(d.W/2), fill, true)
		return true
	})
}

func (r *Renderer) drawModal(screen *ebiten.Image, v pageView, pal pageColors) {
	modal := v.page.Modals.OpenModals().Last()
	if modal.Length() == 0 {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), pal.overlay, false)

	box := v.layout.ModalBox
	r.panel(screen, box, pal.background, pal.border)
	title := modal.Find("." + ui.ClassModalTitle).Text()
	r.drawText(screen, clipText(title, charsFor(box.W-48)), box.X+14, box.Y+12, pal.text)

	detail := modal.Find("." + ui.ClassModalContent).Text()
	maxLines := int((box.H - 48) / 15)
	for j, line := range wrapText(detail, charsFor(box.W-28), maxLines) {
		r.drawText(screen, line, box.X+14, box.Y+38+float64(j)*15, pal.muted)
	}

	if btn := v.page.Modals.CloseButton(modal); btn.Length() > 0 {
		r.button(screen, v.layout.ModalClose, strings.TrimSpace(btn.Text()), pal.panel, pal.text, pal.border)
	}
}

// DrawHUD prints frame and page state in the top-left corner
func (r *Renderer) DrawHUD(screen *ebiten.Image, fps float64, particles int, page *ui.Page) {
	theme := ui.ThemeLight
	if page.Theme.DarkMode() {
		theme = ui.ThemeDark
	}
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nParticles: %d\nTheme: %s  Filter: %s\nModals: %d  Slide: %d/%d  Paused: %v",
		fps, ebiten.ActualTPS(), particles, theme, page.Filter.Active(),
		page.Modals.OpenModals().Length(), page.Carousel.Current()+1, page.Carousel.Len(), page.Carousel.Paused())
	ebitenutil.DebugPrintAt(screen, msg, 4, screen.Bounds().Dy()-70)
}

func (r *Renderer) panel(dst *ebiten.Image, rect layout.Rect, fill, border color.Color) {
	vector.DrawFilledRect(dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), fill, true)
	vector.StrokeRect(dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 1, border, true)
}

func (r *Renderer) button(dst *ebiten.Image, rect layout.Rect, label string, fill, fg, border color.Color) {
	r.panel(dst, rect, fill, border)
	tw := float64(len([]rune(label))) * layout.CharWidth
	r.drawText(dst, label, rect.X+(rect.W-tw)/2, rect.Y+(rect.H-13)/2, fg)
}

func (r *Renderer) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, r.face, op)
}

// charsFor is how many font cells fit in width
func charsFor(width float64) int {
	return max(1, int(width/layout.CharWidth))
}

// clipText shortens s to n characters with a trailing ellipsis
func clipText(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	if n <= 3 {
		return string(rs[:n])
	}
	return string(rs[:n-3]) + "..."
}

// wrapText breaks s into at most maxLines lines of n characters
func wrapText(s string, n, maxLines int) []string {
	if maxLines <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > n {
			lines = append(lines, line.String())
			line.Reset()
			if len(lines) == maxLines {
				last := lines[maxLines-1]
				lines[maxLines-1] = clipText(last+" ...", n)
				return lines
			}
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(clipText(word, n))
	}
	if line.Len() > 0 && len(lines) < maxLines {
		lines = append(lines, line.String())
	}
	return lines
}
