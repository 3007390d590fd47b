// Package game wires the sign field, the page and the work carousel into
// one frame loop.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/folio/carousel"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/gallery"
	"github.com/pthm-cable/folio/page"
	"github.com/pthm-cable/folio/systems"
	"github.com/pthm-cable/folio/telemetry"
	"github.com/pthm-cable/folio/ui"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
	GalleryPath    string // overrides the config gallery when set

	// Config overrides the global config (used by tests).
	Config *config.Config

	// StatsCallback is called with every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete page state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	field    *systems.SignField
	bounds   systems.Bounds
	layout   *page.Layout
	entries  []carousel.Entry
	carousel *carousel.Controller

	// Telemetry
	collector     *telemetry.Collector
	frameTimer    *telemetry.FrameTimer
	recorder      *telemetry.Recorder
	statsCallback func(telemetry.WindowStats)
	logStats      bool
	lastStats     telemetry.WindowStats
	registry      *systems.SystemRegistry

	// Drawing, nil when headless
	textures      *ui.TextureCache
	pageView      *ui.PageView
	signLayer     *ui.SignLayer
	carouselView  *ui.CarouselView
	hud           *ui.HUD
	quickStats    *ui.QuickStatsPanel
	perfPanel     *ui.PerfPanel
	controlsPanel *ui.ControlsPanel
	overlays      *ui.OverlayRegistry

	// Overlay control activated by raygui during the last Draw.
	guiTarget carousel.Target
	guiArmed  bool
	hovered   int

	// State
	tick           int32
	now            float64 // ms timestamp of the last field step
	paused         bool
	headless       bool
	stepsPerUpdate int
}

// NewGameWithOptions creates a game from opts. Gallery errors are logged and
// leave the carousel without entries.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		bounds:         systems.Bounds{Width: float64(cfg.Screen.Width), Height: float64(cfg.Screen.Height)},
		collector:      telemetry.NewCollector(statsWindow, cfg.Derived.DT),
		frameTimer:     telemetry.NewFrameTimer(cfg.Telemetry.PerfWindow),
		statsCallback:  opts.StatsCallback,
		logStats:       opts.LogStats,
		registry:       systems.NewSystemRegistry(),
		guiTarget:      carousel.Target{Kind: carousel.TargetNone},
		guiArmed:       true,
		hovered:        -1,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
	}

	galleryPath := cfg.Derived.GalleryPath
	if opts.GalleryPath != "" {
		galleryPath = opts.GalleryPath
	}
	g.loadGallery(galleryPath)

	g.layout = page.NewLayout(g.bounds.Width, g.bounds.Height, len(g.entries), cfg.Page)
	g.field = systems.NewSignField(systems.ParamsFromConfig(cfg.Signs), g.bounds, g.rng)

	rec, err := telemetry.NewRecorder(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
	}
	g.recorder = rec
	if err := g.recorder.SaveConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	if !g.headless {
		g.initUI()
	}

	return g
}

// loadGallery reads the manifest and builds the carousel. The carousel
// stays nil when the viewport is too narrow or there is nothing to show.
func (g *Game) loadGallery(path string) {
	entries, err := gallery.Load(path)
	if err != nil {
		slog.Error("failed to load gallery", "path", path, "error", err)
		entries = nil
	}
	for _, src := range gallery.Missing(entries) {
		slog.Warn("gallery image missing", "src", src)
	}
	g.entries = entries
	g.carousel = carousel.New(entries, g.cfg.Screen.Width, g.cfg.Carousel.Breakpoint)

	slog.Info("gallery loaded",
		"path", path,
		"entries", len(entries),
		"carousel", g.carousel != nil,
	)
}

// initUI creates the drawing layers. Requires an open window.
func (g *Game) initUI() {
	g.textures = ui.NewTextureCache()
	g.pageView = ui.NewPageView(g.textures)
	g.signLayer = ui.NewSignLayer(g.cfg.Signs.Glyph)
	g.carouselView = ui.NewCarouselView(g.textures)
	g.hud = ui.NewHUD()
	g.quickStats = ui.NewQuickStatsPanel(0, 0, 200)
	g.perfPanel = ui.NewPerfPanel(0, 0)
	g.controlsPanel = ui.NewControlsPanel(10, 10, 220)
	g.overlays = ui.NewOverlayRegistry()
}

// config returns the game's configuration.
func (g *Game) config() *config.Config {
	return g.cfg
}

// Unload releases textures and closes output files.
func (g *Game) Unload() {
	if g.textures != nil {
		g.textures.Unload()
	}
	if err := g.recorder.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the number of field steps taken.
func (g *Game) Tick() int32 {
	return g.tick
}

// SignCount returns the number of live signs.
func (g *Game) SignCount() int {
	return g.field.Count()
}

// Field returns the sign field.
func (g *Game) Field() *systems.SignField {
	return g.field
}

// Carousel returns the carousel controller, nil when inert.
func (g *Game) Carousel() *carousel.Controller {
	return g.carousel
}

// Layout returns the current page layout.
func (g *Game) Layout() *page.Layout {
	return g.layout
}

// Paused reports whether the sign field is paused.
func (g *Game) Paused() bool {
	return g.paused
}
