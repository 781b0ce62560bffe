package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by ApplyEnvironmentOverrides
const (
	EnvFieldWidth   = "BILLIARD_FIELD_WIDTH"
	EnvFieldHeight  = "BILLIARD_FIELD_HEIGHT"
	EnvBallCount    = "BILLIARD_BALL_COUNT"
	EnvBallRadius   = "BILLIARD_BALL_RADIUS"
	EnvCardCount    = "BILLIARD_CARD_COUNT"
	EnvTickInterval = "BILLIARD_TICK_INTERVAL"
	EnvSeed         = "BILLIARD_SEED"
	EnvMaxTicks     = "BILLIARD_MAX_TICKS"
	EnvRenderer     = "BILLIARD_RENDERER"
	EnvFullscreen   = "BILLIARD_FULLSCREEN"
)

// ApplyEnvironmentOverrides replaces configuration values with the ones
// set in the environment. Unset variables leave the value unchanged.
func ApplyEnvironmentOverrides(config *Config) error {
	if err := overrideFloat(EnvFieldWidth, &config.Field.Width); err != nil {
		return err
	}
	if err := overrideFloat(EnvFieldHeight, &config.Field.Height); err != nil {
		return err
	}
	if err := overrideInt(EnvBallCount, &config.Balls.Count); err != nil {
		return err
	}
	if err := overrideFloat(EnvBallRadius, &config.Balls.Radius); err != nil {
		return err
	}

	cards := len(config.Cards.Names)
	if err := overrideInt(EnvCardCount, &cards); err != nil {
		return err
	}
	config.Cards.Names = resizeCards(config.Cards.Names, cards)

	if value, ok := os.LookupEnv(EnvTickInterval); ok {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTickInterval, err)
		}
		config.Simulation.TickIntervalMS = int(d / time.Millisecond)
	}
	if err := overrideUint(EnvSeed, &config.Simulation.Seed); err != nil {
		return err
	}
	if err := overrideUint(EnvMaxTicks, &config.Simulation.MaxTicks); err != nil {
		return err
	}

	if value, ok := os.LookupEnv(EnvRenderer); ok {
		config.Render.Renderer = value
	}
	if value, ok := os.LookupEnv(EnvFullscreen); ok {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFullscreen, err)
		}
		config.Render.Fullscreen = b
	}

	return nil
}

// resizeCards trims the card list or pads it by cycling through the known faces
func resizeCards(names []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if n <= len(names) {
		return names[:n]
	}
	faces := names
	if len(faces) == 0 {
		faces = DefaultConfig().Cards.Names
	}
	out := make([]string, n)
	copy(out, names)
	for i := len(names); i < n; i++ {
		out[i] = faces[i%len(faces)]
	}
	return out
}

func overrideFloat(key string, target *float64) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = f
	return nil
}

func overrideInt(key string, target *int) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = i
	return nil
}

func overrideUint(key string, target *uint64) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	u, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = u
	return nil
}
