package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"portfoliofx/game/layout"
	"portfoliofx/particles"
	"portfoliofx/ui"
)

// Game is the desktop window: the particle background with the interactive
// page drawn over it
type Game struct {
	config   Config
	log      *zap.Logger
	page     *ui.Page
	field    *particles.Field
	surface  *Surface
	renderer *Renderer
	input    InputProvider

	// Preference snapshots written by other processes
	prefChanges <-chan map[string]string

	// Window size as last reported by Layout
	width, height int

	// Page geometry of the current update
	layout   layout.Page
	cards    *goquery.Selection
	scrollY  float64
	hovering bool

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64

	// Performance profiling
	profiler        *Profiler
	lastFPSDropTime time.Time
	fpsDropCooldown time.Duration

	// Game start time to ignore FPS drops during startup
	gameStartTime time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates the window state for page. The particle field follows the
// page theme.
func NewGame(config Config, page *ui.Page, log *zap.Logger, opts ...particles.Option) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	surface := NewSurface(config.ScreenWidth, config.ScreenHeight)
	opts = append([]particles.Option{particles.WithTheme(page.Theme), particles.WithLogger(log)}, opts...)

	var field *particles.Field
	var err error
	if config.Particles {
		field, err = particles.Mount(surface, config.Field, opts...)
	} else {
		field, err = particles.Mount(nil, config.Field, opts...)
	}
	if err != nil {
		return nil, err
	}

	g := &Game{
		config:          config,
		log:             log,
		page:            page,
		field:           field,
		surface:         surface,
		renderer:        NewRenderer(),
		input:           NewWindowInput(),
		width:           config.ScreenWidth,
		height:          config.ScreenHeight,
		fps:             60.0,
		profiler:        NewProfiler(config.ProfilesDir, log),
		fpsDropCooldown: 10 * time.Second,
		gameStartTime:   time.Now(),
		lastUpdateTime:  time.Now(),
	}
	GetDebugState().ShowHUD = config.ShowHUD
	g.relayout()

	log.Info("window ready",
		zap.Int("width", config.ScreenWidth),
		zap.Int("height", config.ScreenHeight),
		zap.Stringer("field", field))
	return g, nil
}

// SetPreferenceChanges makes the game apply preference snapshots from ch
func (g *Game) SetPreferenceChanges(ch <-chan map[string]string) {
	g.prefChanges = ch
}

// SetInput replaces the input provider
func (g *Game) SetInput(input InputProvider) {
	g.input = input
}

// Field returns the particle background, nil when disabled
func (g *Game) Field() *particles.Field {
	return g.field
}

// Update handles input and advances the field and carousel by one tick
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	g.input.Update()
	if g.input.KeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.drainPreferences()
	g.relayout()
	g.handlePointer()

	g.field.Step()
	g.page.Tick()

	g.updateFPS(deltaTime)
	return nil
}

func (g *Game) handleKeys() {
	// F1 toggles the HUD
	if g.input.KeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowHUD = !debugState.ShowHUD
	}
	if g.input.KeyJustPressed(ebiten.KeyEscape) {
		g.page.KeyDown(ui.KeyEscape)
	}
	if g.input.KeyJustPressed(ebiten.KeyD) {
		g.page.ToggleTheme()
	}
	for i, key := range digitKeys {
		if g.input.KeyJustPressed(key) && g.page.Filter.SelectIndex(i) {
			g.scrollY = 0
		}
	}
}

// drainPreferences applies the latest snapshot from the watcher, if any
func (g *Game) drainPreferences() {
	if g.prefChanges == nil {
		return
	}
	select {
	case values, ok := <-g.prefChanges:
		if !ok {
			g.prefChanges = nil
			return
		}
		g.page.ApplyPreferences(values)
		g.log.Debug("preferences applied", zap.Bool("dark", g.page.Theme.DarkMode()))
	default:
	}
}

func (g *Game) relayout() {
	labels := g.page.Filter.Buttons().Map(func(_ int, b *goquery.Selection) string {
		return strings.TrimSpace(b.Text())
	})
	g.cards = g.page.Filter.Visible()
	g.layout = layout.Compute(layout.Input{
		Width:        g.width,
		Height:       g.height,
		FilterLabels: labels,
		VisibleCards: g.cards.Length(),
		Indicators:   g.page.Carousel.Indicators().Length(),
		ScrollY:      g.scrollY,
	})
	if g.scrollY > g.layout.MaxScroll {
		g.scrollY = g.layout.MaxScroll
	}
}

func (g *Game) handlePointer() {
	cx, cy := g.input.CursorPosition()
	x, y := float64(cx), float64(cy)
	inside := pointerInside(cx, cy, g.width, g.height, g.input.Focused())
	if inside {
		g.field.PointerMove(x, y)
	} else {
		g.field.PointerLeave()
	}

	modalOpen := g.page.Modals.OpenModals().Length() > 0

	// The overlay covers the carousel while a modal is open.
	hovering := inside && !modalOpen && g.layout.Carousel.Contains(x, y)
	if hovering != g.hovering {
		if hovering {
			g.page.Carousel.HoverEnter()
		} else {
			g.page.Carousel.HoverLeave()
		}
		g.hovering = hovering
	}

	if wheel := g.input.Wheel(); wheel != 0 && !g.page.Modals.ScrollLocked() {
		g.scrollY -= wheel * g.config.ScrollStep
		if g.scrollY < 0 {
			g.scrollY = 0
		}
		g.relayout()
	}

	if inside && g.input.Clicked() {
		g.click(x, y, modalOpen)
	}
}

// click dispatches a left click to whatever control lies under it
func (g *Game) click(x, y float64, modalOpen bool) {
	if modalOpen {
		modal := g.page.Modals.OpenModals().Last()
		switch {
		case g.layout.ModalClose.Contains(x, y):
			g.page.Modals.ClickClose(g.page.Modals.CloseButton(modal))
		case g.layout.ModalBox.Contains(x, y):
			// clicks inside the dialog do not reach the overlay
		default:
			g.page.Modals.OverlayClick(modal, modal)
		}
		return
	}

	if g.page.Theme.HasToggle() && g.layout.Toggle.Contains(x, y) {
		g.page.ToggleTheme()
		return
	}
	if i := layout.Hit(g.layout.Filters, x, y); i >= 0 {
		g.page.Filter.Select(g.page.Filter.Buttons().Eq(i))
		g.scrollY = 0
		return
	}
	if i := layout.HitClipped(g.layout.ReadMore, g.layout.CardsArea, x, y); i >= 0 {
		g.page.Modals.OpenFromTrigger(g.cards.Eq(i).Find("." + ui.ClassReadMore).First())
		return
	}
	if i := layout.Hit(g.layout.Indicators, x, y); i >= 0 {
		g.page.Carousel.ClickIndicator(g.page.Carousel.Indicators().Eq(i))
	}
}

// updateFPS tracks the frame rate and captures a profile on sustained drops
func (g *Game) updateFPS(deltaTime float64) {
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}
	if g.fpsUpdateCounter > 0 {
		g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	}
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0.0

	// Skip detection in the first 3 seconds after launch
	if !g.config.ProfileOnFPSDrop || g.fps >= 55.0 || time.Since(g.gameStartTime) < 3*time.Second {
		return
	}
	if time.Since(g.lastFPSDropTime) < g.fpsDropCooldown {
		return
	}
	g.lastFPSDropTime = time.Now()

	reason := fmt.Sprintf("fps%.0f-particles%d", g.fps, g.field.Len())
	g.log.Warn("FPS drop detected", zap.Float64("fps", g.fps), zap.String("reason", reason))
	if err := g.profiler.CaptureProfile(reason); err != nil {
		g.log.Debug("profile not captured", zap.Error(err))
	}
}

// Draw renders the field and the page overlay
func (g *Game) Draw(screen *ebiten.Image) {
	dark := g.page.Theme.DarkMode()
	g.surface.bind(screen, colorsFor(dark).background)
	if g.field != nil {
		g.field.Render()
	} else {
		g.surface.Clear()
	}

	g.renderer.Render(screen, pageView{
		page:   g.page,
		layout: g.layout,
		cards:  g.cards,
	})

	if GetDebugState().ShowHUD {
		g.renderer.DrawHUD(screen, g.fps, g.field.Len(), g.page)
	}
}

// Layout tracks the window size; a change resizes and re-seeds the field
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.surface.resize(outsideWidth, outsideHeight)
		g.field.Resize(outsideWidth, outsideHeight)
		g.relayout()
		g.log.Debug("window resized",
			zap.Int("width", outsideWidth),
			zap.Int("height", outsideHeight),
			zap.Int("particles", g.field.Len()))
	}
	return outsideWidth, outsideHeight
}
