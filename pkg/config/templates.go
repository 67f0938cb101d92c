package config

import (
	"fmt"

	"github.com/opd-ai/go-conquest/pkg/entity"
)

// GalaxyTemplate is a named, pre-built galaxy layout.
type GalaxyTemplate struct {
	Name        string
	Description string
	Planets     []PlanetConfig
	Fleets      []FleetConfig
}

// galaxyTemplates holds the built-in layouts.
var galaxyTemplates = map[string]*GalaxyTemplate{
	"core_worlds": {
		Name:        "Core Worlds",
		Description: "Dense eight-planet map with contested industrial worlds",
		Planets: []PlanetConfig{
			{Name: "Yavin", Faction: entity.Rebel, ResourceRate: 12, Industry: 0.6, DefenseBonus: 0.3, MaxGarrison: 100, Garrison: 40, HomeWorld: true},
			{Name: "Coruscant", Faction: entity.Empire, ResourceRate: 15, Industry: 0.8, DefenseBonus: 0.6, MaxGarrison: 100, Garrison: 50, HomeWorld: true},
			{Name: "Corellia", Faction: entity.Neutral, ResourceRate: 14, Industry: 0.7, DefenseBonus: 0.4, MaxGarrison: 100, Garrison: 30},
			{Name: "Kuat", Faction: entity.Neutral, ResourceRate: 13, Industry: 0.9, DefenseBonus: 0.5, MaxGarrison: 100, Garrison: 35},
			{Name: "Alderaan", Faction: entity.Neutral, ResourceRate: 10, Industry: 0.5, MaxGarrison: 100, Garrison: 20},
			{Name: "Duro", Faction: entity.Neutral, ResourceRate: 9, Industry: 0.6, MaxGarrison: 100, Garrison: 15},
			{Name: "Chandrila", Faction: entity.Neutral, ResourceRate: 8, Industry: 0.4, MaxGarrison: 100, Garrison: 10},
			{Name: "Brentaal", Faction: entity.Neutral, ResourceRate: 7, Industry: 0.5, MaxGarrison: 100, Garrison: 10},
		},
		Fleets: []FleetConfig{
			{Name: "Red Squadron", Faction: entity.Rebel, Planet: "Yavin", Fighters: 12, Capitals: 2, Bombers: 4},
			{Name: "Gold Squadron", Faction: entity.Rebel, Planet: "Yavin", Fighters: 8, Capitals: 1, Bombers: 6},
			{Name: "Death Squadron", Faction: entity.Empire, Planet: "Coruscant", Fighters: 10, Capitals: 3, Bombers: 3},
			{Name: "Scourge Squadron", Faction: entity.Empire, Planet: "Coruscant", Fighters: 14, Capitals: 1, Bombers: 2},
		},
	},
	"outer_rim_skirmish": {
		Name:        "Outer Rim Skirmish",
		Description: "Sparse four-planet map for short sessions",
		Planets: []PlanetConfig{
			{Name: "Dantooine", Faction: entity.Rebel, ResourceRate: 8, Industry: 0.5, DefenseBonus: 0.2, MaxGarrison: 80, Garrison: 25, HomeWorld: true},
			{Name: "Lothal", Faction: entity.Empire, ResourceRate: 9, Industry: 0.6, DefenseBonus: 0.3, MaxGarrison: 80, Garrison: 30, HomeWorld: true},
			{Name: "Ryloth", Faction: entity.Neutral, ResourceRate: 6, Industry: 0.4, MaxGarrison: 80, Garrison: 10},
			{Name: "Geonosis", Faction: entity.Neutral, ResourceRate: 5, Industry: 0.3, MaxGarrison: 80, Garrison: 8},
		},
		Fleets: []FleetConfig{
			{Name: "Phoenix Group", Faction: entity.Rebel, Planet: "Dantooine", Fighters: 8, Capitals: 1, Bombers: 2},
			{Name: "Seventh Fleet", Faction: entity.Empire, Planet: "Lothal", Fighters: 9, Capitals: 1, Bombers: 2},
		},
	},
}

// GetGalaxyTemplate returns a built-in template by key, or nil if unknown.
func GetGalaxyTemplate(key string) *GalaxyTemplate {
	return galaxyTemplates[key]
}

// ListGalaxyTemplates returns the available templates keyed by name.
func ListGalaxyTemplates() map[string]*GalaxyTemplate {
	out := make(map[string]*GalaxyTemplate, len(galaxyTemplates))
	for k, v := range galaxyTemplates {
		out[k] = v
	}
	return out
}

// ApplyGalaxyTemplate replaces the config's planets and fleets with a
// template's layout. Rules, seed, and AI settings are preserved.
func ApplyGalaxyTemplate(cfg *GalaxyConfig, key string) error {
	tmpl, ok := galaxyTemplates[key]
	if !ok {
		return fmt.Errorf("unknown galaxy template %q", key)
	}
	cfg.Planets = append([]PlanetConfig(nil), tmpl.Planets...)
	cfg.Fleets = append([]FleetConfig(nil), tmpl.Fleets...)
	return nil
}

// LoadConfigWithTemplate loads a config file and applies a template on top.
// A missing file falls back to the default configuration.
func LoadConfigWithTemplate(path, templateKey string) (*GalaxyConfig, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		cfg = DefaultConfig()
	}
	if templateKey != "" {
		if err := ApplyGalaxyTemplate(cfg, templateKey); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
