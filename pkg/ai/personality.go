// Package ai implements the faction commanders: one deterministic,
// seeded decision actor per non-player faction. A commander observes the
// component store on its own jittered cadence and issues fleet movement
// orders back through the engine.
package ai

import "fmt"

// Personality profile names.
const (
	PersonalityAggressive = "aggressive"
	PersonalityBalanced   = "balanced"
	PersonalityDefensive  = "defensive"
)

// Personality tunes a commander's decision making. FleetConcentration is
// part of the public contract but not read by the current scoring.
type Personality struct {
	Name               string
	DecisionInterval   float64 // mean seconds between decision cycles
	Aggressiveness     float64 // in [0, 1], chance a fleet attacks
	ExpansionPriority  float64 // in [0, 1], bonus toward neutral worlds
	FleetConcentration float64 // in [0, 1]
}

// AggressiveProfile favors constant attacks and skips defensive triage.
func AggressiveProfile() Personality {
	return Personality{
		Name:               PersonalityAggressive,
		DecisionInterval:   4,
		Aggressiveness:     0.8,
		ExpansionPriority:  0.5,
		FleetConcentration: 0.7,
	}
}

// BalancedProfile mixes expansion, defense, and measured attacks.
func BalancedProfile() Personality {
	return Personality{
		Name:               PersonalityBalanced,
		DecisionInterval:   5,
		Aggressiveness:     0.5,
		ExpansionPriority:  0.6,
		FleetConcentration: 0.5,
	}
}

// DefensiveProfile keeps fleets home and expands cautiously.
func DefensiveProfile() Personality {
	return Personality{
		Name:               PersonalityDefensive,
		DecisionInterval:   6,
		Aggressiveness:     0.25,
		ExpansionPriority:  0.4,
		FleetConcentration: 0.3,
	}
}

// ProfileByName looks up a built-in personality.
func ProfileByName(name string) (Personality, error) {
	switch name {
	case PersonalityAggressive:
		return AggressiveProfile(), nil
	case PersonalityBalanced, "":
		return BalancedProfile(), nil
	case PersonalityDefensive:
		return DefensiveProfile(), nil
	default:
		return Personality{}, fmt.Errorf("unknown personality %q", name)
	}
}
