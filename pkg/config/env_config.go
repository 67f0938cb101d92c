package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvironmentConfig carries deployment-level overrides read from CONQUEST_*
// environment variables. Zero values mean "no override" except where a
// default is documented.
type EnvironmentConfig struct {
	Seed             uint64  // CONQUEST_SEED
	VictoryThreshold float64 // CONQUEST_VICTORY_THRESHOLD
	AutoResolveDelay float64 // CONQUEST_AUTO_RESOLVE_DELAY
	TickRate         float64 // CONQUEST_TICK_RATE, ticks per second (default 10)
}

// LoadConfigFromEnv reads environment overrides, applying safe defaults.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	cfg := &EnvironmentConfig{
		TickRate: 10,
	}

	var err error
	if cfg.Seed, err = getEnvUint64("CONQUEST_SEED", 0); err != nil {
		return nil, err
	}
	if cfg.VictoryThreshold, err = getEnvFloat("CONQUEST_VICTORY_THRESHOLD", 0); err != nil {
		return nil, err
	}
	if cfg.AutoResolveDelay, err = getEnvFloat("CONQUEST_AUTO_RESOLVE_DELAY", 0); err != nil {
		return nil, err
	}
	if cfg.TickRate, err = getEnvFloat("CONQUEST_TICK_RATE", cfg.TickRate); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks override values for sanity.
func (c *EnvironmentConfig) Validate() error {
	if c.VictoryThreshold < 0 || c.VictoryThreshold > 1 {
		return fmt.Errorf("CONQUEST_VICTORY_THRESHOLD must be in (0, 1], got %v", c.VictoryThreshold)
	}
	if c.AutoResolveDelay < 0 {
		return fmt.Errorf("CONQUEST_AUTO_RESOLVE_DELAY must not be negative, got %v", c.AutoResolveDelay)
	}
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return fmt.Errorf("CONQUEST_TICK_RATE must be in (0, 1000], got %v", c.TickRate)
	}
	return nil
}

// Apply overlays the environment overrides onto a galaxy config.
func (c *EnvironmentConfig) Apply(cfg *GalaxyConfig) {
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.VictoryThreshold != 0 {
		cfg.GameRules.VictoryThreshold = c.VictoryThreshold
	}
	if c.AutoResolveDelay != 0 {
		cfg.GameRules.AutoResolveDelay = c.AutoResolveDelay
	}
}

func getEnvUint64(key string, fallback uint64) (uint64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid unsigned integer %q: %w", key, raw, err)
	}
	return v, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q: %w", key, raw, err)
	}
	return v, nil
}
