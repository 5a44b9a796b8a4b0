package game

import (
	"fmt"

	"portfoliofx/particles"
)

// Config holds window and front end configuration
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	// TPS is the number of updates per second
	TPS int

	// Field configures the particle background
	Field particles.Config

	// Particles disables the background entirely when false
	Particles bool

	// ContentPath is an optional JSON file replacing the built-in content
	ContentPath string

	// StoragePath is the preferences file, empty for in-memory storage
	StoragePath string

	// ShowHUD shows the debug overlay at startup
	ShowHUD bool

	// ProfileOnFPSDrop captures a CPU profile and trace when frames drop
	ProfileOnFPSDrop bool

	// ProfilesDir receives captured profiles
	ProfilesDir string

	// ScrollStep is the card scroll distance per wheel notch in pixels
	ScrollStep float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		TPS:          60,
		Field:        particles.DefaultConfig(),
		Particles:    true,
		ProfilesDir:  "profiles",
		ScrollStep:   24,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if err := c.Field.Validate(); err != nil {
		return err
	}
	return nil
}
