// Package terminal renders the particle field in a terminal with tcell.
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Glyphs used for particles and connections
const (
	DiscRune = '●'
	LineRune = '·'
)

// Terminal cells are roughly twice as tall as they are wide, so one cell
// covers Scale pixels across and 2*Scale pixels down.
const DefaultScale = 8.0

// Surface draws onto a tcell screen in a virtual pixel space
type Surface struct {
	screen tcell.Screen
	scale  float64
	bg     color.NRGBA
}

// NewSurface wraps screen. A scale <= 0 uses DefaultScale.
func NewSurface(screen tcell.Screen, scale float64) *Surface {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Surface{screen: screen, scale: scale, bg: LightBackground}
}

// Background colors per theme
var (
	LightBackground = color.NRGBA{R: 248, G: 250, B: 252, A: 255}
	DarkBackground  = color.NRGBA{R: 15, G: 23, B: 42, A: 255}
)

// SetDark selects the background matching the theme
func (s *Surface) SetDark(dark bool) {
	if dark {
		s.bg = DarkBackground
	} else {
		s.bg = LightBackground
	}
}

// Screen returns the underlying screen
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}

// Size returns the virtual pixel size of the screen
func (s *Surface) Size() (int, int) {
	cols, rows := s.screen.Size()
	return int(float64(cols) * s.scale), int(float64(rows) * s.scale * 2)
}

// CellAt maps a pixel position to a cell
func (s *Surface) CellAt(x, y float64) (int, int) {
	return int(x / s.scale), int(y / (s.scale * 2))
}

// PixelAt maps a cell to the pixel position of its center
func (s *Surface) PixelAt(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.scale, (float64(row) + 0.5) * s.scale * 2
}

// Clear fills the screen with the background color
func (s *Surface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(s.bg)))
}

// FillCircle marks the cell holding the disc center
func (s *Surface) FillCircle(x, y, r float64, c color.Color) {
	col, row := s.CellAt(x, y)
	s.set(col, row, DiscRune, c)
}

// StrokeLine draws a line of dots between two points, leaving discs intact
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	c0, r0 := s.CellAt(x0, y0)
	c1, r1 := s.CellAt(x1, y1)
	bresenham(c0, r0, c1, r1, func(col, row int) {
		if mainc, _, _, _ := s.screen.GetContent(col, row); mainc == DiscRune {
			return
		}
		s.set(col, row, LineRune, c)
	})
}

func (s *Surface) set(col, row int, r rune, c color.Color) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	style := tcell.StyleDefault.
		Background(toTcell(s.bg)).
		Foreground(toTcell(blend(s.bg, c)))
	s.screen.SetContent(col, row, r, nil, style)
}

// blend composites c over an opaque background
func blend(bg color.NRGBA, c color.Color) color.NRGBA {
	fg := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := float64(fg.A) / 255
	mix := func(b, f uint8) uint8 {
		return uint8(float64(b)*(1-a) + float64(f)*a + 0.5)
	}
	return color.NRGBA{R: mix(bg.R, fg.R), G: mix(bg.G, fg.G), B: mix(bg.B, fg.B), A: 255}
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// bresenham visits every cell on the line from (x0,y0) to (x1,y1)
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
