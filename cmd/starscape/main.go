package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"time"

	"starscape/internal/app"
	"starscape/internal/config"
	"starscape/internal/graphics/renderables/hud"
	"starscape/internal/graphics/renderables/mesh"
	"starscape/internal/graphics/renderables/points"
	renderer "starscape/internal/graphics/renderer"
	"starscape/internal/input"
	"starscape/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

// options are the command-line overrides applied on top of the config file.
type options struct {
	configPath string
	seed       int64
	logLevel   string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("starscape", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "path to a TOML settings file")
	fs.Int64Var(&o.seed, "seed", 0, "random seed for stars and pick colours (0 = config or clock)")
	fs.StringVar(&o.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

// loadSettings reads the config file and applies flag overrides.
func loadSettings(o options) (config.Settings, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	if o.seed != 0 {
		cfg.Stars.Seed = o.seed
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "starscape:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadSettings(opts)
	if err != nil {
		return err
	}
	log, err := logging.New(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}

	seed := cfg.Stars.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", "seed", seed, "stars", cfg.Stars.Count, "config", opts.configPath)
	rng := rand.New(rand.NewSource(seed))

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window, cfg.Render.VSync)
	if err != nil {
		return err
	}
	defer window.Destroy()

	hudRenderer := hud.NewHUD(cfg.Render.ShowHUD)
	r, err := renderer.NewRenderer(log,
		mesh.NewMeshes(),
		points.NewPoints(),
		hudRenderer,
	)
	if err != nil {
		return err
	}
	defer r.Dispose()

	a, err := app.New(cfg, rng, r, log)
	if err != nil {
		return err
	}
	// Window size can differ from the request (tiling WMs, HiDPI).
	if w, h := window.GetSize(); w != cfg.Window.Width || h != cfg.Window.Height {
		a.Resize(w, h)
	}

	config.SetFPSLimit(cfg.Render.FPSLimit)

	im := input.NewInputManager()
	loop := NewGameLoop(window, a, hudRenderer, im, log)
	setupInputHandlers(window, loop, a, im)

	loop.Run()
	log.Info("shutting down")
	return nil
}
