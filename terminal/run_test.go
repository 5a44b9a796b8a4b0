package terminal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfoliofx/particles"
)

type fakeTheme struct {
	dark    bool
	toggles int
	err     error
}

func (f *fakeTheme) DarkMode() bool { return f.dark }

func (f *fakeTheme) Toggle() error {
	f.toggles++
	f.dark = !f.dark
	return f.err
}

func mountField(t *testing.T, s *Surface, theme particles.ThemeSignal) *particles.Field {
	t.Helper()
	f, err := particles.Mount(s, particles.DefaultConfig(), particles.WithTheme(theme))
	require.NoError(t, err)
	return f
}

func TestHandleEventKeys(t *testing.T) {
	s := NewSurface(newScreen(t, 40, 12), 0)
	theme := &fakeTheme{}
	field := mountField(t, s, theme)

	assert.True(t, handleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), s, field, theme, zap.NewNop()))
	assert.Equal(t, 1, theme.toggles)
	assert.True(t, theme.dark)

	theme.err = errors.New("disk full")
	assert.True(t, handleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), s, field, theme, zap.NewNop()),
		"a failed save does not stop the loop")

	assert.True(t, handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), s, field, theme, zap.NewNop()))
	assert.False(t, handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), s, field, theme, zap.NewNop()))
	assert.False(t, handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), s, field, theme, zap.NewNop()))
}

func TestHandleEventPointer(t *testing.T) {
	s := NewSurface(newScreen(t, 40, 12), 0)
	field := mountField(t, s, nil)

	handleEvent(tcell.NewEventMouse(10, 3, tcell.ButtonNone, tcell.ModNone), s, field, nil, zap.NewNop())
	p := field.Pointer()
	require.True(t, p.Active)
	wantX, wantY := s.PixelAt(10, 3)
	assert.Equal(t, wantX, p.X)
	assert.Equal(t, wantY, p.Y)

	handleEvent(tcell.NewEventFocus(false), s, field, nil, zap.NewNop())
	assert.False(t, field.Pointer().Active)
}

func TestHandleEventResize(t *testing.T) {
	screen := newScreen(t, 40, 12)
	s := NewSurface(screen, 0)
	field := mountField(t, s, nil)

	screen.SetSize(80, 24)
	handleEvent(tcell.NewEventResize(80, 24), s, field, nil, zap.NewNop())

	w, h := field.Size()
	sw, sh := s.Size()
	assert.Equal(t, float64(sw), w)
	assert.Equal(t, float64(sh), h)
	assert.Len(t, field.Particles(), particles.ParticleCount(particles.DefaultConfig(), w, h))
}

func TestRunQuitsOnEscape(t *testing.T) {
	screen := newScreen(t, 40, 12)
	s := NewSurface(screen, 0)
	theme := &fakeTheme{dark: true}
	field := mountField(t, s, theme)

	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), s, field, theme, zap.NewNop())
	}()

	time.Sleep(50 * time.Millisecond)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := NewSurface(newScreen(t, 40, 12), 0)
	field := mountField(t, s, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.NoError(t, Run(ctx, s, field, nil, nil))
}
