package terminal

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, col, row int) rune {
	r, _, _, _ := screen.GetContent(col, row)
	return r
}

func TestSurfaceSize(t *testing.T) {
	screen := newScreen(t, 80, 24)
	s := NewSurface(screen, 0)

	w, h := s.Size()
	assert.Equal(t, 80*int(DefaultScale), w)
	assert.Equal(t, 24*int(DefaultScale)*2, h)

	col, row := s.CellAt(s.PixelAt(10, 5))
	assert.Equal(t, 10, col)
	assert.Equal(t, 5, row)
}

func TestSurfaceFillCircle(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := NewSurface(screen, 4)
	s.Clear()

	s.FillCircle(10, 10, 3, color.NRGBA{R: 99, G: 102, B: 241, A: 255})
	assert.Equal(t, DiscRune, runeAt(screen, 2, 1))

	// off-screen discs are dropped
	s.FillCircle(-50, -50, 3, color.Black)
	s.FillCircle(1e6, 1e6, 3, color.Black)
}

func TestSurfaceStrokeLineKeepsDiscs(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := NewSurface(screen, 1)
	s.Clear()

	s.FillCircle(0.5, 1, 2, color.Black)
	s.StrokeLine(0.5, 1, 9.5, 1, 1, color.Black)

	assert.Equal(t, DiscRune, runeAt(screen, 0, 0))
	for col := 1; col <= 9; col++ {
		assert.Equal(t, LineRune, runeAt(screen, col, 0), "col %d", col)
	}
	assert.Equal(t, ' ', runeAt(screen, 10, 0))
}

func TestSurfaceClear(t *testing.T) {
	screen := newScreen(t, 5, 5)
	s := NewSurface(screen, 1)
	s.FillCircle(1, 1, 1, color.Black)
	s.Clear()
	assert.Equal(t, ' ', runeAt(screen, 1, 0))
}

func TestBresenham(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"point", 3, 3, 3, 3, 1},
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical reversed", 0, 5, 0, 0, 6},
		{"diagonal", 0, 0, 4, 4, 5},
		{"steep", 0, 0, 2, 6, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][2]int
			bresenham(tt.x0, tt.y0, tt.x1, tt.y1, func(x, y int) {
				got = append(got, [2]int{x, y})
			})
			require.Len(t, got, tt.want)
			assert.Equal(t, [2]int{tt.x0, tt.y0}, got[0])
			assert.Equal(t, [2]int{tt.x1, tt.y1}, got[len(got)-1])
		})
	}
}

func TestBlend(t *testing.T) {
	bg := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, blend(bg, color.NRGBA{R: 200, G: 100, B: 50, A: 255}))
	assert.Equal(t, bg, blend(bg, color.NRGBA{R: 200, G: 100, B: 50, A: 0}))

	half := blend(color.NRGBA{R: 100, G: 100, B: 100, A: 255}, color.NRGBA{R: 200, G: 200, B: 200, A: 128})
	assert.InDelta(t, 150, int(half.R), 1)
}
