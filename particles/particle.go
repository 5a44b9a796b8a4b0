package particles

import (
	"math"
	"math/rand"
)

// Particle is a single point in the field
type Particle struct {
	X, Y       float64 // Position
	VX, VY     float64 // Velocity
	Size       float64 // Radius, fixed at creation
	ColorIndex int     // Index into the active palette, fixed at creation
}

// Pointer is the last known pointer position over the surface
type Pointer struct {
	X, Y   float64
	Active bool
}

// Falloff is the linear weight used for pointer force and link opacity:
// 1 at distance 0, 0 at radius and beyond.
func Falloff(distance, radius float64) float64 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	if distance <= 0 {
		return 1
	}
	return (radius - distance) / radius
}

// newParticle places a particle uniformly on a width x height surface
func newParticle(cfg Config, width, height float64, rng *rand.Rand) Particle {
	return Particle{
		X:          rng.Float64() * width,
		Y:          rng.Float64() * height,
		Size:       cfg.MinSize + rng.Float64()*(cfg.MaxSize-cfg.MinSize),
		VX:         (rng.Float64() - 0.5) * cfg.BaseSpeed,
		VY:         (rng.Float64() - 0.5) * cfg.BaseSpeed,
		ColorIndex: rng.Intn(cfg.PaletteSize),
	}
}

// Speed returns the velocity magnitude
func (p *Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// DistanceTo returns the distance to a point
func (p *Particle) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-p.X, y-p.Y)
}

// Update advances the particle by one frame on a width x height surface.
// Integration is one explicit Euler step per call, so perceived speed follows
// the caller's frame rate.
func (p *Particle) Update(cfg Config, pointer Pointer, width, height float64, rng *rand.Rand) {
	// Gentle attraction towards the pointer
	if pointer.Active {
		dx := pointer.X - p.X
		dy := pointer.Y - p.Y
		distance := math.Hypot(dx, dy)
		if distance < cfg.InfluenceRadius {
			force := Falloff(distance, cfg.InfluenceRadius)
			angle := math.Atan2(dy, dx)
			p.VX += math.Cos(angle) * force * cfg.AttractionGain
			p.VY += math.Sin(angle) * force * cfg.AttractionGain
		}
	}

	p.X += p.VX
	p.Y += p.VY
	p.VX *= cfg.Damping
	p.VY *= cfg.Damping

	if p.Speed() < cfg.SpeedFloor() {
		p.VX += (rng.Float64() - 0.5) * cfg.Jitter
		p.VY += (rng.Float64() - 0.5) * cfg.Jitter
	}

	p.wrap(cfg.WrapMargin, width, height)
}

// wrap teleports the particle to the opposite edge once it is more than
// margin outside the surface.
func (p *Particle) wrap(margin, width, height float64) {
	if p.X < -margin {
		p.X = width + margin
	}
	if p.X > width+margin {
		p.X = -margin
	}
	if p.Y < -margin {
		p.Y = height + margin
	}
	if p.Y > height+margin {
		p.Y = -margin
	}
}
