// pkg/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 1920.0, config.Field.Width)
	assert.Equal(t, 1080.0, config.Field.Height)
	assert.Equal(t, 16, config.Balls.Count)
	assert.Len(t, config.Cards.Names, 2)
	assert.Equal(t, 35*time.Millisecond, config.TickInterval())
	assert.Equal(t, RendererTerminal, config.Render.Renderer)
	assert.InDelta(t, 57.15*1920/2240, config.BallRadius(), 1e-9)
	assert.InDelta(t, 192, config.CardWidth(), 1e-9)
	require.NoError(t, config.Validate())
}

func TestConfig_BallRadiusOverride(t *testing.T) {
	config := DefaultConfig()
	config.Balls.Radius = 30

	assert.Equal(t, 30.0, config.BallRadius())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero_width", func(c *Config) { c.Field.Width = 0 }},
		{"negative_height", func(c *Config) { c.Field.Height = -10 }},
		{"negative_ball_count", func(c *Config) { c.Balls.Count = -1 }},
		{"radius_too_large", func(c *Config) { c.Balls.Radius = 600 }},
		{"negative_speed", func(c *Config) { c.Balls.SpeedRange = -1 }},
		{"card_wider_than_field", func(c *Config) { c.Cards.WidthRatio = 1 }},
		{"opacity_out_of_range", func(c *Config) { c.Cards.Opacity = 1.5 }},
		{"zero_tick", func(c *Config) { c.Simulation.TickIntervalMS = 0 }},
		{"zero_attempts", func(c *Config) { c.Simulation.MaxPlacementAttempts = 0 }},
		{"unknown_renderer", func(c *Config) { c.Render.Renderer = "opengl" }},
		{"empty_terminal", func(c *Config) { c.Render.TerminalRows = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			assert.ErrorIs(t, config.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_ValidateAllowsEmptyTable(t *testing.T) {
	config := DefaultConfig()
	config.Balls.Count = 0
	config.Balls.Radius = 5000
	config.Cards.Names = nil
	config.Cards.WidthRatio = 5

	assert.NoError(t, config.Validate())
}

func TestLoadConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screensaver.json")
	data := `{"field": {"width": 800, "height": 600}, "balls": {"count": 4}, "render": {"renderer": "null"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 800.0, config.Field.Width)
	assert.Equal(t, 600.0, config.Field.Height)
	assert.Equal(t, 4, config.Balls.Count)
	assert.Equal(t, RendererNull, config.Render.Renderer)
	// unspecified values keep their defaults
	assert.Equal(t, 35, config.Simulation.TickIntervalMS)
	assert.Equal(t, 1.0, config.Balls.SpeedMin)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screensaver.yaml")
	data := `
field:
  width: 1280
  height: 720
cards:
  names: [spades-ace]
simulation:
  seed: 42
  maxTicks: 100
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1280.0, config.Field.Width)
	assert.Equal(t, []string{"spades-ace"}, config.Cards.Names)
	assert.Equal(t, uint64(42), config.Simulation.Seed)
	assert.Equal(t, uint64(100), config.Simulation.MaxTicks)
	assert.Equal(t, 16, config.Balls.Count)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSaveConfig_ThenLoad(t *testing.T) {
	for _, name := range []string{"out.json", "out.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			config := DefaultConfig()
			config.Balls.Count = 9
			config.Render.Renderer = RendererEngo

			require.NoError(t, SaveConfig(config, path))
			loaded, err := LoadConfig(path)
			require.NoError(t, err)

			assert.Equal(t, config, loaded)
		})
	}
}
