package entity

import (
	"math"

	"github.com/EngoEngine/ecs"
)

// FleetState is single-writer: only the movement and battle systems
// transition it.
type FleetState int

const (
	FleetIdle FleetState = iota
	FleetMoving
	FleetCombat
	FleetRetreating
)

func (s FleetState) String() string {
	switch s {
	case FleetIdle:
		return "Idle"
	case FleetMoving:
		return "Moving"
	case FleetCombat:
		return "Combat"
	case FleetRetreating:
		return "Retreating"
	default:
		return "Unknown"
	}
}

// Per-unit strength weights and the veterancy scaling band.
const (
	fighterWeight = 10.0
	capitalWeight = 50.0
	bomberWeight  = 15.0

	veterancyBase  = 0.8
	veterancySpan  = 0.4
	veterancyGain  = 0.05
	capitalShelter = 0.5 // capital ships take half the loss percentage
)

// Fleet is a mobile space force. A fleet whose composition reaches zero is a
// survivable remnant, not a deleted entity; removal is always explicit.
type Fleet struct {
	ecs.BasicEntity
	Name    string
	Faction Faction

	Fighters int // squadrons
	Capitals int // capital ships
	Bombers  int // squadrons

	Veterancy float64 // in [0, 1], non-decreasing for a surviving fleet

	CurrentPlanet     ID // None while in transit
	DestinationPlanet ID // None while idle
	Progress          float64
	TravelTime        float64 // seconds, > 0 while moving

	State            FleetState
	PlayerControlled bool
}

// NewFleet creates an idle fleet stationed at the given planet.
func NewFleet(name string, faction Faction, planet ID, fighters, capitals, bombers int) *Fleet {
	return &Fleet{
		BasicEntity:       ecs.NewBasic(),
		Name:              name,
		Faction:           faction,
		Fighters:          fighters,
		Capitals:          capitals,
		Bombers:           bombers,
		CurrentPlanet:     planet,
		DestinationPlanet: None,
		State:             FleetIdle,
	}
}

// EID returns the fleet's entity id.
func (f *Fleet) EID() ID {
	return ID(f.BasicEntity.ID())
}

// Strength is the derived combat scalar: weighted unit counts scaled by
// veterancy. It is never stored.
func (f *Fleet) Strength() float64 {
	base := float64(f.Fighters)*fighterWeight +
		float64(f.Capitals)*capitalWeight +
		float64(f.Bombers)*bomberWeight
	return base * (veterancyBase + f.Veterancy*veterancySpan)
}

// ApplyLosses removes pct of the fleet's fighters and bombers and half that
// share of its capital ships, rounding to nearest and flooring at zero. The
// surviving fleet gains a flat veterancy bump, capped at 1.
func (f *Fleet) ApplyLosses(pct float64) {
	f.Fighters = scaleCount(f.Fighters, pct)
	f.Bombers = scaleCount(f.Bombers, pct)
	f.Capitals = scaleCount(f.Capitals, pct*capitalShelter)
	f.Veterancy = math.Min(1.0, f.Veterancy+veterancyGain)
}

func scaleCount(count int, pct float64) int {
	scaled := int(math.Round(float64(count) * (1 - pct)))
	if scaled < 0 {
		return 0
	}
	return scaled
}
