// cmd/screensaver/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dsaiko/billiard-balls-screensaver/pkg/config"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/engine"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/entity"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/logging"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/render"
	engorender "github.com/dsaiko/billiard-balls-screensaver/pkg/render/engo"
)

type options struct {
	configPath    string
	writeDefaults bool
	renderer      string
	fullscreen    bool
	seed          uint64
	ticks         uint64
	set           map[string]bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("screensaver", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "screensaver.yaml", "Path to configuration file (.yaml, .yml or .json)")
	fs.BoolVar(&opts.writeDefaults, "default", false, "Write the default configuration to -config and exit")
	fs.StringVar(&opts.renderer, "renderer", "", "Renderer type: 'terminal', 'engo' or 'null' (overrides config)")
	fs.BoolVar(&opts.fullscreen, "fullscreen", true, "Run in fullscreen mode (Engo only)")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 picks one from the clock")
	fs.Uint64Var(&opts.ticks, "ticks", 0, "Stop after this many ticks, 0 runs until interrupted")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// loadConfig reads the configuration file, falling back to defaults when
// it does not exist, then applies environment and flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		return nil, err
	}

	if opts.renderer != "" {
		cfg.Render.Renderer = opts.renderer
	}
	if opts.set["fullscreen"] {
		cfg.Render.Fullscreen = opts.fullscreen
	}
	if opts.set["seed"] {
		cfg.Simulation.Seed = opts.seed
	}
	if opts.set["ticks"] {
		cfg.Simulation.MaxTicks = opts.ticks
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = uint64(time.Now().UnixNano())
	}

	return cfg, cfg.Validate()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logger := logging.NewLogger()
	defer func() { _ = logger.Sync() }()

	ctx := logging.WithCorrelationID(context.Background(), "")

	if opts.writeDefaults {
		if err := config.SaveConfig(config.DefaultConfig(), opts.configPath); err != nil {
			logger.Error(ctx, "failed to write default configuration", err, "path", opts.configPath)
			os.Exit(1)
		}
		fmt.Printf("Default configuration written to %s\n", opts.configPath)
		return
	}

	if err := run(ctx, opts, logger); err != nil {
		logger.Error(ctx, "screensaver failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options, logger *logging.Logger) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return logging.WrapError(err, "failed to load configuration from %s", opts.configPath)
	}

	logger.Info(ctx, "starting screensaver",
		"renderer", cfg.Render.Renderer,
		"seed", cfg.Simulation.Seed,
		"balls", cfg.Balls.Count,
	)

	sim, err := engine.NewSimulation(cfg, nil, logger)
	if err != nil {
		return err
	}

	if cfg.Render.Renderer == config.RendererEngo {
		engorender.Run(cfg, sim, logger)
		return nil
	}

	var renderer entity.Renderer
	switch cfg.Render.Renderer {
	case config.RendererNull:
		renderer = render.NewNullRenderer(logger)
	default:
		renderer = render.NewTerminalRenderer(os.Stdout,
			cfg.Render.TerminalColumns, cfg.Render.TerminalRows,
			cfg.Field.Width, cfg.Field.Height)
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return sim.Run(ctx, renderer)
}
