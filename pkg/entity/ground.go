package entity

import (
	"math"

	"github.com/EngoEngine/ecs"
)

// Per-unit strength weights for ground forces. Same formula shape as fleets;
// vehicles occupy the resilient slot that capital ships hold in space.
const (
	infantryWeight  = 5.0
	vehicleWeight   = 30.0
	artilleryWeight = 20.0
)

// GroundForce is the planetside analog of a Fleet: a mobile army referenced
// by pending battles on its planet.
type GroundForce struct {
	ecs.BasicEntity
	Name    string
	Faction Faction

	Infantry  int
	Vehicles  int
	Artillery int

	Veterancy float64 // in [0, 1]

	Planet           ID
	PlayerControlled bool
}

// NewGroundForce creates a ground force stationed at the given planet.
func NewGroundForce(name string, faction Faction, planet ID, infantry, vehicles, artillery int) *GroundForce {
	return &GroundForce{
		BasicEntity: ecs.NewBasic(),
		Name:        name,
		Faction:     faction,
		Infantry:    infantry,
		Vehicles:    vehicles,
		Artillery:   artillery,
		Planet:      planet,
	}
}

// EID returns the ground force's entity id.
func (g *GroundForce) EID() ID {
	return ID(g.BasicEntity.ID())
}

// Strength mirrors Fleet.Strength with ground unit weights.
func (g *GroundForce) Strength() float64 {
	base := float64(g.Infantry)*infantryWeight +
		float64(g.Vehicles)*vehicleWeight +
		float64(g.Artillery)*artilleryWeight
	return base * (veterancyBase + g.Veterancy*veterancySpan)
}

// ApplyLosses mirrors Fleet.ApplyLosses; vehicles take the sheltered share.
func (g *GroundForce) ApplyLosses(pct float64) {
	g.Infantry = scaleCount(g.Infantry, pct)
	g.Artillery = scaleCount(g.Artillery, pct)
	g.Vehicles = scaleCount(g.Vehicles, pct*capitalShelter)
	g.Veterancy = math.Min(1.0, g.Veterancy+veterancyGain)
}
