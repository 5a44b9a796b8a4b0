package particles

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Field owns the particle set, the pointer state and the drawing surface.
//
// A nil *Field is valid and inert: every method returns without doing
// anything. Mount returns nil when there is no surface to draw on.
type Field struct {
	cfg     Config
	surface Surface
	theme   ThemeSignal
	rng     *rand.Rand
	log     *zap.Logger

	width, height float64
	particles     []Particle
	pointer       Pointer

	// reused between frames
	links []Link
}

// Option customizes a Field at mount time
type Option func(*Field)

// WithRand sets the random source used for seeding and jitter
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) { f.rng = rng }
}

// WithTheme sets the dark-mode signal polled on every render
func WithTheme(theme ThemeSignal) Option {
	return func(f *Field) { f.theme = theme }
}

// WithLogger sets the field's logger
func WithLogger(log *zap.Logger) Option {
	return func(f *Field) { f.log = log }
}

// ParticleCount is the number of particles seeded on a width x height surface
func ParticleCount(cfg Config, width, height float64) int {
	if width <= 0 || height <= 0 || cfg.AreaPerParticle <= 0 {
		return 0
	}
	n := int(math.Floor(width * height / cfg.AreaPerParticle))
	return max(0, min(cfg.MaxParticles, n))
}

// Mount creates a field drawing onto surface and seeds it from the surface
// size. A nil surface yields a nil field and no error.
func Mount(surface Surface, cfg Config, opts ...Option) (*Field, error) {
	if surface == nil {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &Field{
		cfg:     cfg,
		surface: surface,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if f.log == nil {
		f.log = zap.NewNop()
	}
	if f.theme == nil {
		f.theme = ThemeFunc(func() bool { return false })
	}

	w, h := surface.Size()
	f.width, f.height = float64(w), float64(h)
	f.Seed()
	return f, nil
}

// Config returns the field configuration
func (f *Field) Config() Config {
	if f == nil {
		return Config{}
	}
	return f.cfg
}

// Seed discards every particle and populates a fresh set for the current size
func (f *Field) Seed() {
	if f == nil {
		return
	}
	n := ParticleCount(f.cfg, f.width, f.height)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = newParticle(f.cfg, f.width, f.height, f.rng)
	}
	f.log.Debug("particle field seeded",
		zap.Int("particles", n),
		zap.Float64("width", f.width),
		zap.Float64("height", f.height))
}

// Resize adopts a new surface size and re-seeds the whole field.
// Existing particles are not rescaled.
func (f *Field) Resize(width, height int) {
	if f == nil {
		return
	}
	f.width, f.height = float64(width), float64(height)
	f.Seed()
}

// Size returns the surface size the field was last seeded for
func (f *Field) Size() (float64, float64) {
	if f == nil {
		return 0, 0
	}
	return f.width, f.height
}

// PointerMove records the pointer position and marks it active
func (f *Field) PointerMove(x, y float64) {
	if f == nil {
		return
	}
	f.pointer = Pointer{X: x, Y: y, Active: true}
}

// PointerLeave marks the pointer inactive, keeping its last position
func (f *Field) PointerLeave() {
	if f == nil {
		return
	}
	f.pointer.Active = false
}

// Pointer returns the current pointer state
func (f *Field) Pointer() Pointer {
	if f == nil {
		return Pointer{}
	}
	return f.pointer
}

// Len returns the number of particles
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.particles)
}

// Particles returns a copy of the particle set
func (f *Field) Particles() []Particle {
	if f == nil {
		return nil
	}
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Step advances every particle by one frame
func (f *Field) Step() {
	if f == nil {
		return
	}
	for i := range f.particles {
		f.particles[i].Update(f.cfg, f.pointer, f.width, f.height, f.rng)
	}
}

// Palette returns the palette the next render will use
func (f *Field) Palette() Palette {
	if f == nil {
		return LightPalette
	}
	return SelectPalette(f.theme.DarkMode())
}

// Render clears the surface and draws particles, pair links and pointer links
func (f *Field) Render() {
	if f == nil {
		return
	}
	pal := f.Palette()

	f.surface.Clear()
	for i := range f.particles {
		p := &f.particles[i]
		f.surface.FillCircle(p.X, p.Y, p.Size, pal.ParticleColor(p.ColorIndex))
	}

	f.links = AppendConnections(f.links[:0], f.particles, f.cfg, pal)
	f.links = AppendPointerLinks(f.links, f.particles, f.pointer, f.cfg, pal)
	for _, l := range f.links {
		f.surface.StrokeLine(l.X0, l.Y0, l.X1, l.Y1, f.cfg.LineWidth, l.Color)
	}
}

// Frame runs one animation frame: Step followed by Render
func (f *Field) Frame() {
	f.Step()
	f.Render()
}

// String summarizes the field for logs
func (f *Field) String() string {
	if f == nil {
		return "field(unmounted)"
	}
	return fmt.Sprintf("field(%dx%d, %d particles)", int(f.width), int(f.height), len(f.particles))
}
