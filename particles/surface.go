package particles

import "image/color"

// Surface is a 2D drawing target the field renders onto.
type Surface interface {
	// Size returns the current drawable width and height
	Size() (int, int)

	// Clear erases the whole surface
	Clear()

	// FillCircle draws a filled disc
	FillCircle(x, y, radius float64, c color.Color)

	// StrokeLine draws a straight segment
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}
