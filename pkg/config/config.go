// Package config defines the bootstrap input for a conquest session: the
// static planet map, starting forces, game rules, and AI personalities.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-conquest/pkg/entity"
	"github.com/opd-ai/go-conquest/pkg/validation"
)

// GalaxyConfig contains everything needed to bootstrap a session exactly once.
type GalaxyConfig struct {
	Seed          uint64              `json:"seed"`
	PlayerFaction entity.Faction      `json:"playerFaction"`
	GameRules     GameRules           `json:"gameRules"`
	AI            map[string]AIConfig `json:"ai"`
	Planets       []PlanetConfig      `json:"planets"`
	Fleets        []FleetConfig       `json:"fleets"`
	GroundForces  []GroundForceConfig `json:"groundForces,omitempty"`
}

// GameRules tunes the victory and battle timing knobs.
type GameRules struct {
	VictoryThreshold float64 `json:"victoryThreshold"` // planet share in (0, 1]
	AutoResolveDelay float64 `json:"autoResolveDelay"` // seconds of grace before auto-resolution

	// VictoryRules maps a faction name to an optional expr condition checked
	// before the default planet-share threshold, e.g.
	// "Rebel": "PlanetShare >= 0.6 && Credits > 5000".
	VictoryRules map[string]string `json:"victoryRules,omitempty"`
}

// AIConfig selects a commander personality per faction.
type AIConfig struct {
	Personality      string  `json:"personality"`                // aggressive, balanced, defensive
	DecisionInterval float64 `json:"decisionInterval,omitempty"` // 0 = profile default
}

// PlanetConfig describes one static galaxy location.
type PlanetConfig struct {
	Name         string         `json:"name"`
	Faction      entity.Faction `json:"faction"`
	ResourceRate float64        `json:"resourceRate"`
	Industry     float64        `json:"industry"`
	DefenseBonus float64        `json:"defenseBonus"`
	MaxGarrison  float64        `json:"maxGarrison"`
	Garrison     float64        `json:"garrison"`
	HomeWorld    bool           `json:"homeWorld"`
}

// FleetConfig describes a starting fleet, stationed by planet name.
type FleetConfig struct {
	Name             string         `json:"name"`
	Faction          entity.Faction `json:"faction"`
	Planet           string         `json:"planet"`
	Fighters         int            `json:"fighters"`
	Capitals         int            `json:"capitals"`
	Bombers          int            `json:"bombers"`
	PlayerControlled bool           `json:"playerControlled"`
}

// GroundForceConfig describes a starting ground force.
type GroundForceConfig struct {
	Name             string         `json:"name"`
	Faction          entity.Faction `json:"faction"`
	Planet           string         `json:"planet"`
	Infantry         int            `json:"infantry"`
	Vehicles         int            `json:"vehicles"`
	Artillery        int            `json:"artillery"`
	PlayerControlled bool           `json:"playerControlled"`
}

// LoadConfig loads a configuration from a JSON file.
func LoadConfig(path string) (*GalaxyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg GalaxyConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return &cfg, nil
}

// SaveConfig saves a configuration to a JSON file.
func SaveConfig(cfg *GalaxyConfig, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for structural problems. Planet names
// are normalized in place.
func (c *GalaxyConfig) Validate() error {
	if len(c.Planets) == 0 {
		return fmt.Errorf("config must define at least one planet")
	}
	if c.GameRules.VictoryThreshold < 0 || c.GameRules.VictoryThreshold > 1 {
		return fmt.Errorf("victoryThreshold must be in (0, 1], got %v", c.GameRules.VictoryThreshold)
	}
	if err := validation.ValidateNonNegative("autoResolveDelay", c.GameRules.AutoResolveDelay); err != nil {
		return err
	}

	planetNames := make(map[string]bool, len(c.Planets))
	for i := range c.Planets {
		p := &c.Planets[i]
		name, err := validation.ValidateName(p.Name)
		if err != nil {
			return fmt.Errorf("planet %d: %w", i, err)
		}
		if planetNames[name] {
			return fmt.Errorf("duplicate planet name %q", name)
		}
		planetNames[name] = true
		p.Name = name

		if err := validation.ValidateRatio("industry", p.Industry); err != nil {
			return fmt.Errorf("planet %q: %w", name, err)
		}
		for field, v := range map[string]float64{
			"resourceRate": p.ResourceRate,
			"defenseBonus": p.DefenseBonus,
			"maxGarrison":  p.MaxGarrison,
			"garrison":     p.Garrison,
		} {
			if err := validation.ValidateNonNegative(field, v); err != nil {
				return fmt.Errorf("planet %q: %w", name, err)
			}
		}
		if p.MaxGarrison > 0 && p.Garrison > p.MaxGarrison {
			return fmt.Errorf("planet %q: garrison %v exceeds maxGarrison %v", name, p.Garrison, p.MaxGarrison)
		}
	}

	for i, f := range c.Fleets {
		if _, err := validation.ValidateName(f.Name); err != nil {
			return fmt.Errorf("fleet %d: %w", i, err)
		}
		if !planetNames[f.Planet] {
			return fmt.Errorf("fleet %q references unknown planet %q", f.Name, f.Planet)
		}
		for field, n := range map[string]int{"fighters": f.Fighters, "capitals": f.Capitals, "bombers": f.Bombers} {
			if err := validation.ValidateUnitCount(field, n); err != nil {
				return fmt.Errorf("fleet %q: %w", f.Name, err)
			}
		}
	}

	for i, g := range c.GroundForces {
		if _, err := validation.ValidateName(g.Name); err != nil {
			return fmt.Errorf("ground force %d: %w", i, err)
		}
		if !planetNames[g.Planet] {
			return fmt.Errorf("ground force %q references unknown planet %q", g.Name, g.Planet)
		}
		for field, n := range map[string]int{"infantry": g.Infantry, "vehicles": g.Vehicles, "artillery": g.Artillery} {
			if err := validation.ValidateUnitCount(field, n); err != nil {
				return fmt.Errorf("ground force %q: %w", g.Name, err)
			}
		}
	}

	for name := range c.AI {
		if _, err := entity.ParseFaction(name); err != nil {
			return fmt.Errorf("ai config: %w", err)
		}
	}
	for name := range c.GameRules.VictoryRules {
		if f, err := entity.ParseFaction(name); err != nil || f == entity.Neutral {
			return fmt.Errorf("victory rule for invalid faction %q", name)
		}
	}
	return nil
}

// DefaultConfig returns the stock two-faction galaxy.
func DefaultConfig() *GalaxyConfig {
	return &GalaxyConfig{
		Seed:          42,
		PlayerFaction: entity.Neutral,
		GameRules: GameRules{
			VictoryThreshold: entity.DefaultVictoryThreshold,
			AutoResolveDelay: 5.0,
		},
		AI: map[string]AIConfig{
			"Rebel":  {Personality: "balanced"},
			"Empire": {Personality: "aggressive"},
		},
		Planets: []PlanetConfig{
			{Name: "Yavin", Faction: entity.Rebel, ResourceRate: 12, Industry: 0.6, DefenseBonus: 0.3, MaxGarrison: 100, Garrison: 40, HomeWorld: true},
			{Name: "Coruscant", Faction: entity.Empire, ResourceRate: 15, Industry: 0.8, DefenseBonus: 0.6, MaxGarrison: 100, Garrison: 50, HomeWorld: true},
			{Name: "Tatooine", Faction: entity.Neutral, ResourceRate: 6, Industry: 0.3, MaxGarrison: 100, Garrison: 10},
			{Name: "Hoth", Faction: entity.Neutral, ResourceRate: 4, Industry: 0.2, MaxGarrison: 100, Garrison: 5},
			{Name: "Endor", Faction: entity.Neutral, ResourceRate: 8, Industry: 0.4, MaxGarrison: 100, Garrison: 15},
			{Name: "Naboo", Faction: entity.Neutral, ResourceRate: 10, Industry: 0.5, DefenseBonus: 0.2, MaxGarrison: 100, Garrison: 20},
		},
		Fleets: []FleetConfig{
			{Name: "Red Squadron", Faction: entity.Rebel, Planet: "Yavin", Fighters: 12, Capitals: 2, Bombers: 4},
			{Name: "Death Squadron", Faction: entity.Empire, Planet: "Coruscant", Fighters: 10, Capitals: 3, Bombers: 3},
		},
	}
}
