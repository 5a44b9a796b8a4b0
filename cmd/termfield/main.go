package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"portfoliofx/logger"
	"portfoliofx/particles"
	"portfoliofx/prefs"
	"portfoliofx/terminal"
	"portfoliofx/ui"
)

func main() {
	storagePath := flag.String("storage", "", "Preferences file (or set PORTFOLIOFX_STORAGE env var)")
	ephemeral := flag.Bool("ephemeral", false, "Keep preferences in memory only")
	scale := flag.Float64("scale", terminal.DefaultScale, "Virtual pixels per terminal column")
	seed := flag.Int64("seed", 0, "Random seed, 0 for time based")
	legacyOpacity := flag.Bool("legacy-opacity", false, "Draw every link at the base connection opacity")
	logLevel := flag.String("log-level", "", "Log level (or set PORTFOLIOFX_LOG_LEVEL env var)")
	logFile := flag.String("log-file", filepath.Join(os.TempDir(), "portfoliofx-term.log"), "Log output file")
	flag.Parse()

	level := *logLevel
	if level == "" {
		level = os.Getenv("PORTFOLIOFX_LOG_LEVEL")
	}
	log, err := logger.New(logger.Config{
		Environment: "production",
		LogLevel:    level,
		ServiceName: "termfield",
		OutputPaths: []string{*logFile},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, *storagePath, *ephemeral, *scale, *seed, *legacyOpacity); err != nil {
		log.Error("termfield failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "termfield: %v\n", err)
		os.Exit(1)
	}
}

func run(log *zap.Logger, storagePath string, ephemeral bool, scale float64, seed int64, legacyOpacity bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store prefs.Store = prefs.NewMemoryStore()
	if !ephemeral {
		if storagePath == "" {
			storagePath = os.Getenv("PORTFOLIOFX_STORAGE")
		}
		fileStore, err := prefs.Open(storagePath)
		if err != nil {
			log.Warn("preferences unavailable, using memory", zap.Error(err))
		} else {
			store = fileStore
		}
	}

	// The terminal shows no page, only the theme switch backed by a bare
	// document.
	theme := ui.NewTheme(ui.BuildDocument(ui.Content{}), store)
	theme.Load()

	cfg := particles.DefaultConfig()
	if legacyOpacity {
		cfg.Opacity = particles.OpacityConstant
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	surface := terminal.NewSurface(screen, scale)
	opts := []particles.Option{particles.WithTheme(theme), particles.WithLogger(log)}
	if seed != 0 {
		opts = append(opts, particles.WithRand(rand.New(rand.NewSource(seed))))
	}
	field, err := particles.Mount(surface, cfg, opts...)
	if err != nil {
		return err
	}

	log.Info("terminal field started", zap.Stringer("field", field))
	return terminal.Run(ctx, surface, field, theme, log)
}
