package main

import (
	"context"
	"flag"
	stdlog "log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"portfoliofx/game"
	"portfoliofx/logger"
	"portfoliofx/particles"
	"portfoliofx/prefs"
	"portfoliofx/ui"
)

func main() {
	contentPath := flag.String("content", "", "Content JSON file (or set PORTFOLIOFX_CONTENT env var)")
	storagePath := flag.String("storage", "", "Preferences file (or set PORTFOLIOFX_STORAGE env var)")
	ephemeral := flag.Bool("ephemeral", false, "Keep preferences in memory only")
	seed := flag.Int64("seed", 0, "Random seed for the particle field, 0 for time based")
	legacyOpacity := flag.Bool("legacy-opacity", false, "Draw every link at the base connection opacity")
	noParticles := flag.Bool("no-particles", false, "Disable the particle background")
	hud := flag.Bool("hud", false, "Show the debug HUD at startup (toggle with F1)")
	profileFPS := flag.Bool("profile-fps", false, "Capture a CPU profile and trace when frames drop")
	logLevel := flag.String("log-level", "", "Log level (or set PORTFOLIOFX_LOG_LEVEL env var)")
	flag.Parse()

	level := *logLevel
	if level == "" {
		level = os.Getenv("PORTFOLIOFX_LOG_LEVEL")
	}
	log, err := logger.New(logger.Config{
		Environment: "development",
		LogLevel:    level,
		ServiceName: "portfoliofx",
	})
	if err != nil {
		stdlog.Fatalf("Failed to create logger: %v", err)
	}
	defer log.Sync()

	config := game.DefaultConfig()
	config.ContentPath = envOr(*contentPath, "PORTFOLIOFX_CONTENT")
	config.StoragePath = envOr(*storagePath, "PORTFOLIOFX_STORAGE")
	config.Particles = !*noParticles
	config.ShowHUD = *hud
	config.ProfileOnFPSDrop = *profileFPS
	if *legacyOpacity {
		config.Field.Opacity = particles.OpacityConstant
	}

	content := ui.DefaultContent()
	if config.ContentPath != "" {
		content, err = ui.LoadContent(config.ContentPath)
		if err != nil {
			log.Fatal("Failed to load content", zap.String("path", config.ContentPath), zap.Error(err))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store prefs.Store = prefs.NewMemoryStore()
	var changes <-chan map[string]string
	if !*ephemeral {
		fileStore, err := prefs.Open(config.StoragePath)
		if err != nil {
			log.Warn("Preferences unavailable, using memory", zap.Error(err))
		} else {
			store = fileStore
			config.StoragePath = fileStore.Path()
			if changes, err = prefs.Watch(ctx, fileStore, log); err != nil {
				log.Warn("Preferences will not sync between windows", zap.Error(err))
			}
		}
	}

	page := ui.NewPage(content, store, ui.SystemClock{}, log)

	var opts []particles.Option
	if *seed != 0 {
		opts = append(opts, particles.WithRand(rand.New(rand.NewSource(*seed))))
	}
	g, err := game.NewGame(config, page, log, opts...)
	if err != nil {
		log.Fatal("Failed to create window", zap.Error(err))
	}
	g.SetPreferenceChanges(changes)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Portfolio")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.TPS)

	log.Info("Starting window", zap.String("storage", config.StoragePath))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("Window closed with error", zap.Error(err))
	}
}

// envOr returns value, or the named environment variable when value is empty
func envOr(value, env string) string {
	if value != "" {
		return value
	}
	return os.Getenv(env)
}
