package particles

import "image/color"

// Palette is the color scheme for one theme
type Palette struct {
	Particles  []color.NRGBA
	Connection color.NRGBA
}

// ThemeSignal reports whether dark mode is active. The field polls it once per
// rendered frame and never changes it.
type ThemeSignal interface {
	DarkMode() bool
}

// ThemeFunc adapts a plain function to ThemeSignal.
type ThemeFunc func() bool

// DarkMode calls f.
func (f ThemeFunc) DarkMode() bool { return f() }

// alpha converts a CSS-style 0..1 opacity to an 8-bit channel.
func alpha(a float64) uint8 {
	return uint8(a*255 + 0.5)
}

var (
	LightPalette = Palette{
		Particles: []color.NRGBA{
			{R: 102, G: 126, B: 234, A: alpha(0.8)},
			{R: 118, G: 75, B: 162, A: alpha(0.8)},
			{R: 99, G: 102, B: 241, A: alpha(0.75)},
		},
		Connection: color.NRGBA{R: 102, G: 126, B: 234, A: alpha(0.2)},
	}

	DarkPalette = Palette{
		Particles: []color.NRGBA{
			{R: 167, G: 139, B: 250, A: alpha(0.9)},
			{R: 129, G: 140, B: 248, A: alpha(0.9)},
			{R: 196, G: 181, B: 253, A: alpha(0.85)},
		},
		Connection: color.NRGBA{R: 167, G: 139, B: 250, A: alpha(0.18)},
	}
)

// SelectPalette picks the palette for the current theme. The switch is
// immediate; there is no blending between palettes.
func SelectPalette(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// ParticleColor returns the color for a color index, wrapping out of range
// indexes into the palette.
func (p Palette) ParticleColor(index int) color.NRGBA {
	n := len(p.Particles)
	if n == 0 {
		return p.Connection
	}
	index %= n
	if index < 0 {
		index += n
	}
	return p.Particles[index]
}

// withOpacity scales c's alpha by o. The result saturates at fully opaque.
func withOpacity(c color.NRGBA, o float64) color.NRGBA {
	if o < 0 {
		o = 0
	}
	a := float64(c.A) * o
	if a > 255 {
		a = 255
	}
	c.A = uint8(a + 0.5)
	return c
}
