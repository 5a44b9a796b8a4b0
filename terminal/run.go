package terminal

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"portfoliofx/particles"
)

// FrameInterval is the redraw period, about 60 frames per second
const FrameInterval = 16 * time.Millisecond

// Theme is the dark mode switch driven by the 'd' key
type Theme interface {
	DarkMode() bool
	Toggle() error
}

// Run animates field on the surface's screen until ctx is cancelled or the
// user quits with Esc or Ctrl-C. Mouse motion moves the pointer, losing focus
// releases it, and a resize re-seeds the field.
func Run(ctx context.Context, surface *Surface, field *particles.Field, theme Theme, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	screen := surface.Screen()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	frame := func() {
	drain:
		for {
			select {
			case ev := <-events:
				if !handleEvent(ev, surface, field, theme, log) {
					cancel()
					return
				}
			default:
				break drain
			}
		}
		if ctx.Err() != nil {
			return
		}
		surface.SetDark(theme != nil && theme.DarkMode())
		field.Frame()
		screen.Show()
	}

	err := particles.RunLoop(ctx, FrameInterval, frame)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// handleEvent applies one terminal event; false means quit
func handleEvent(ev tcell.Event, surface *Surface, field *particles.Field, theme Theme, log *zap.Logger) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'd' || ev.Rune() == 'D') && theme != nil {
			if err := theme.Toggle(); err != nil {
				log.Warn("theme preference not saved", zap.Error(err))
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := surface.PixelAt(col, row)
		field.PointerMove(x, y)
	case *tcell.EventFocus:
		if !ev.Focused {
			field.PointerLeave()
		}
	case *tcell.EventResize:
		surface.Screen().Sync()
		w, h := surface.Size()
		field.Resize(w, h)
		log.Debug("terminal resized", zap.Int("width", w), zap.Int("height", h), zap.Stringer("field", field))
	}
	return true
}
