// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/dsaiko/billiard-balls-screensaver/pkg/config"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/engine"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/logging"
)

// SceneType is the name Engo knows the table scene by
const SceneType = "BilliardScene"

// TableScene shows a running simulation full screen
type TableScene struct {
	cfg    *config.Config
	sim    *engine.Simulation
	logger *logging.Logger

	renderer *EngoRenderer
}

// NewTableScene creates a scene for sim
func NewTableScene(cfg *config.Config, sim *engine.Simulation, logger *logging.Logger) *TableScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &TableScene{
		cfg:    cfg,
		sim:    sim,
		logger: logger.With("component", "engo_scene"),
	}
}

// Type returns the scene type (required by Engo)
func (scene *TableScene) Type() string {
	return SceneType
}

// Preload is called before the scene starts (required by Engo).
// Sprites are generated, so there is nothing to load from disk.
func (scene *TableScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *TableScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		scene.logger.Error(context.Background(), "unexpected updater", nil)
		engo.Exit()
		return
	}

	common.SetBackground(FeltColor)

	scene.renderer = NewEngoRenderer(world, float64(engo.GameWidth()), scene.cfg.Field.Width)
	if err := scene.renderer.Initialize(
		len(scene.sim.Balls), scene.cfg.BallRadius(),
		scene.cfg.Cards.Names, scene.cfg.CardWidth(), scene.cfg.CardHeight(),
	); err != nil {
		scene.logger.Error(context.Background(), "failed to initialize renderer", err)
		engo.Exit()
		return
	}

	world.AddSystem(NewSimulationSystem(scene.sim, scene.renderer, scene.cfg.TickInterval()))
	world.AddSystem(NewExitSystem(engo.Exit))
	SetupExitControls()

	scene.logger.Info(context.Background(), "scene ready",
		"game_width", engo.GameWidth(),
		"game_height", engo.GameHeight(),
	)
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *TableScene) Exit() {
	scene.logger.Info(context.Background(), "scene exit", "ticks", scene.sim.CurrentTick())
}

// Run opens the Engo window and blocks until it closes
func Run(cfg *config.Config, sim *engine.Simulation, logger *logging.Logger) {
	opts := engo.RunOptions{
		Title:      cfg.Render.Title,
		Width:      int(cfg.Field.Width),
		Height:     int(cfg.Field.Height),
		Fullscreen: cfg.Render.Fullscreen,
		VSync:      true,
	}

	engo.Run(opts, NewTableScene(cfg, sim, logger))
}
