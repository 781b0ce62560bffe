// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Renderer names accepted in RenderConfig.Renderer
const (
	RendererTerminal = "terminal"
	RendererEngo     = "engo"
	RendererNull     = "null"
)

// Config contains the complete screensaver configuration
type Config struct {
	Field      FieldConfig      `json:"field" yaml:"field"`
	Balls      BallConfig       `json:"balls" yaml:"balls"`
	Cards      CardConfig       `json:"cards" yaml:"cards"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Render     RenderConfig     `json:"render" yaml:"render"`
}

// FieldConfig is the size of the play area, in pixels or any other unit
type FieldConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// BallConfig controls the billiard balls. A zero Radius derives the
// radius from the field width: a 57.15 mm ball on a 2240 mm table.
// Initial speed is (SpeedMin + u*SpeedRange) * radius / 25 for u in [0,1).
type BallConfig struct {
	Count      int     `json:"count" yaml:"count"`
	Radius     float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	SpeedMin   float64 `json:"speedMin" yaml:"speedMin"`
	SpeedRange float64 `json:"speedRange" yaml:"speedRange"`
}

// CardConfig controls the decorative playing cards
type CardConfig struct {
	Names      []string `json:"names" yaml:"names"`
	WidthRatio float64  `json:"widthRatio" yaml:"widthRatio"` // of field width
	Aspect     float64  `json:"aspect" yaml:"aspect"`         // height / width
	Opacity    float64  `json:"opacity" yaml:"opacity"`
	SpeedRatio float64  `json:"speedRatio" yaml:"speedRatio"` // of card width per tick
}

// SimulationConfig controls the tick loop
type SimulationConfig struct {
	TickIntervalMS       int    `json:"tickIntervalMs" yaml:"tickIntervalMs"`
	Seed                 uint64 `json:"seed" yaml:"seed"` // 0 seeds from the clock
	MaxPlacementAttempts int    `json:"maxPlacementAttempts" yaml:"maxPlacementAttempts"`
	MaxTicks             uint64 `json:"maxTicks" yaml:"maxTicks"` // 0 runs until stopped
}

// RenderConfig selects and sizes the presentation layer
type RenderConfig struct {
	Renderer        string `json:"renderer" yaml:"renderer"`
	Title           string `json:"title" yaml:"title"`
	Fullscreen      bool   `json:"fullscreen" yaml:"fullscreen"`
	TerminalColumns int    `json:"terminalColumns" yaml:"terminalColumns"`
	TerminalRows    int    `json:"terminalRows" yaml:"terminalRows"`
}

// BallRadius returns the configured radius or the one derived from the field width
func (c *Config) BallRadius() float64 {
	if c.Balls.Radius > 0 {
		return c.Balls.Radius
	}
	return 57.15 * c.Field.Width / 2240
}

// CardWidth returns the card width in field units
func (c *Config) CardWidth() float64 {
	return c.Field.Width * c.Cards.WidthRatio
}

// CardHeight returns the card height in field units
func (c *Config) CardHeight() float64 {
	return c.CardWidth() * c.Cards.Aspect
}

// TickInterval returns the time between two ticks
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Simulation.TickIntervalMS) * time.Millisecond
}

// Validate checks the configuration for values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field size %vx%v must be positive", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	}
	if c.Balls.Count < 0 {
		return fmt.Errorf("%w: ball count %d is negative", ErrInvalidConfig, c.Balls.Count)
	}
	if c.Balls.Count > 0 {
		r := c.BallRadius()
		if r <= 0 || 2*r >= c.Field.Width || 2*r >= c.Field.Height {
			return fmt.Errorf("%w: ball radius %v does not fit the field", ErrInvalidConfig, r)
		}
		if c.Balls.SpeedMin < 0 || c.Balls.SpeedRange < 0 {
			return fmt.Errorf("%w: ball speed factors must not be negative", ErrInvalidConfig)
		}
	}
	if len(c.Cards.Names) > 0 {
		if c.CardWidth() <= 0 || c.CardHeight() <= 0 {
			return fmt.Errorf("%w: card size must be positive", ErrInvalidConfig)
		}
		if c.CardWidth()+4 >= c.Field.Width || c.CardHeight()+4 >= c.Field.Height {
			return fmt.Errorf("%w: cards do not fit the field", ErrInvalidConfig)
		}
		if c.Cards.Opacity < 0 || c.Cards.Opacity > 1 {
			return fmt.Errorf("%w: card opacity %v outside [0,1]", ErrInvalidConfig, c.Cards.Opacity)
		}
	}
	if c.Simulation.TickIntervalMS <= 0 {
		return fmt.Errorf("%w: tick interval must be positive", ErrInvalidConfig)
	}
	if c.Simulation.MaxPlacementAttempts <= 0 {
		return fmt.Errorf("%w: max placement attempts must be positive", ErrInvalidConfig)
	}
	switch c.Render.Renderer {
	case RendererTerminal, RendererEngo, RendererNull:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Render.Renderer)
	}
	if c.Render.Renderer == RendererTerminal && (c.Render.TerminalColumns <= 0 || c.Render.TerminalRows <= 0) {
		return fmt.Errorf("%w: terminal size must be positive", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig loads a configuration from a file. Files ending in .yaml or
// .yml are parsed as YAML, anything else as JSON.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file in the format implied by its extension
func SaveConfig(config *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// DefaultConfig returns the reference screensaver setup: a full HD table
// with sixteen balls and two cards ticking every 35 ms.
func DefaultConfig() *Config {
	return &Config{
		Field: FieldConfig{
			Width:  1920,
			Height: 1080,
		},
		Balls: BallConfig{
			Count:      16,
			SpeedMin:   1,
			SpeedRange: 3.5,
		},
		Cards: CardConfig{
			Names:      []string{"hearts-king", "hearts-queen"},
			WidthRatio: 0.1,
			Aspect:     1.4,
			Opacity:    0.2,
			SpeedRatio: 0.01,
		},
		Simulation: SimulationConfig{
			TickIntervalMS:       35,
			MaxPlacementAttempts: 10000,
		},
		Render: RenderConfig{
			Renderer:        RendererTerminal,
			Title:           "Billiard Balls Screensaver",
			Fullscreen:      true,
			TerminalColumns: 96,
			TerminalRows:    27,
		},
	}
}
