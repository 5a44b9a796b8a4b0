package particles

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate and Mount for unusable settings.
var ErrInvalidConfig = errors.New("invalid particle field config")

// OpacityMode selects how connection line alpha is derived.
type OpacityMode int

const (
	// OpacityScaled fades links linearly to zero at their threshold distance.
	OpacityScaled OpacityMode = iota

	// OpacityConstant draws every link at the palette's base alpha, regardless
	// of distance. This matches the look of the first published site.
	OpacityConstant
)

// PointerBoost scales pointer link alpha relative to particle links.
const PointerBoost = 5.0 / 3.0

// Config holds particle field tuning
type Config struct {
	// MaxParticles caps the particle count regardless of surface area
	MaxParticles int

	// AreaPerParticle is the surface area (px²) that earns one particle
	AreaPerParticle float64

	// MinSize is the smallest particle radius in pixels
	MinSize float64

	// MaxSize is the largest particle radius in pixels
	MaxSize float64

	// ConnectionDistance is the pair distance below which a link is drawn
	ConnectionDistance float64

	// InfluenceRadius is the pointer attraction radius
	InfluenceRadius float64

	// BaseSpeed is the initial velocity span; half of it is the soft speed floor
	BaseSpeed float64

	// AttractionGain is the velocity added per frame at full pointer force
	AttractionGain float64

	// Damping multiplies both velocity components every frame
	Damping float64

	// Jitter is the span of the random kick applied below the speed floor
	Jitter float64

	// WrapMargin is the buffer beyond the surface edge before wraparound
	WrapMargin float64

	// PaletteSize is the number of particle colors per palette
	PaletteSize int

	// LineWidth is the stroke width of links
	LineWidth float64

	// Opacity selects the link alpha model
	Opacity OpacityMode
}

// DefaultConfig returns the tuning used on the portfolio site
func DefaultConfig() Config {
	return Config{
		MaxParticles:       100,
		AreaPerParticle:    15000,
		MinSize:            2,
		MaxSize:            4,
		ConnectionDistance: 180,
		InfluenceRadius:    250,
		BaseSpeed:          0.4,
		AttractionGain:     0.02,
		Damping:            0.99,
		Jitter:             0.1,
		WrapMargin:         50,
		PaletteSize:        3,
		LineWidth:          1,
		Opacity:            OpacityScaled,
	}
}

// SpeedFloor is the speed below which jitter is injected.
func (c Config) SpeedFloor() float64 {
	return c.BaseSpeed * 0.5
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.MaxParticles < 0:
		return fmt.Errorf("%w: max particles %d", ErrInvalidConfig, c.MaxParticles)
	case c.AreaPerParticle <= 0:
		return fmt.Errorf("%w: area per particle %v", ErrInvalidConfig, c.AreaPerParticle)
	case c.MinSize <= 0 || c.MaxSize < c.MinSize:
		return fmt.Errorf("%w: size range [%v, %v]", ErrInvalidConfig, c.MinSize, c.MaxSize)
	case c.ConnectionDistance <= 0:
		return fmt.Errorf("%w: connection distance %v", ErrInvalidConfig, c.ConnectionDistance)
	case c.InfluenceRadius <= 0:
		return fmt.Errorf("%w: influence radius %v", ErrInvalidConfig, c.InfluenceRadius)
	case c.BaseSpeed < 0:
		return fmt.Errorf("%w: base speed %v", ErrInvalidConfig, c.BaseSpeed)
	case c.Damping <= 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping %v", ErrInvalidConfig, c.Damping)
	case c.WrapMargin < 0:
		return fmt.Errorf("%w: wrap margin %v", ErrInvalidConfig, c.WrapMargin)
	case c.PaletteSize < 1 || c.PaletteSize > len(LightPalette.Particles) || c.PaletteSize > len(DarkPalette.Particles):
		return fmt.Errorf("%w: palette size %d", ErrInvalidConfig, c.PaletteSize)
	}
	return nil
}
