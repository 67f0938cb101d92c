package entity

import "github.com/EngoEngine/ecs"

// BattlePhase tracks which stage of a battle a contested planet is in.
type BattlePhase int

const (
	BattlePhaseNone BattlePhase = iota
	BattlePhaseSpace
	BattlePhaseGround
)

func (p BattlePhase) String() string {
	switch p {
	case BattlePhaseSpace:
		return "space"
	case BattlePhaseGround:
		return "ground"
	default:
		return "none"
	}
}

// Default planetary values, applied by NewPlanet and overridden by the
// bootstrap configuration.
const (
	DefaultMaxGarrison  = 100.0
	DefaultResourceRate = 10.0
	DefaultIndustry     = 0.5
)

// Planet is a fixed galaxy location. Planets are created once at bootstrap
// and never destroyed during a session.
//
// SpaceControl and GroundControl may disagree with ControllingFaction while
// a battle is in flight; they converge when the battle resolves.
type Planet struct {
	ecs.BasicEntity
	Name               string
	ControllingFaction Faction
	SpaceControl       Faction
	GroundControl      Faction

	Garrison     float64 // in [0, MaxGarrison]
	MaxGarrison  float64
	Resources    float64 // stockpile, never negative
	ResourceRate float64 // units per second at full industry
	Industry     float64 // in [0, 1]
	DefenseBonus float64 // defender strength multiplier, >= 0

	UnderAttack bool
	BattlePhase BattlePhase
	HomeWorld   bool
}

// NewPlanet creates a planet held by the given faction. Both control layers
// start aligned with the controlling faction.
func NewPlanet(name string, faction Faction) *Planet {
	return &Planet{
		BasicEntity:        ecs.NewBasic(),
		Name:               name,
		ControllingFaction: faction,
		SpaceControl:       faction,
		GroundControl:      faction,
		MaxGarrison:        DefaultMaxGarrison,
		ResourceRate:       DefaultResourceRate,
		Industry:           DefaultIndustry,
	}
}

// EID returns the planet's entity id.
func (p *Planet) EID() ID {
	return ID(p.BasicEntity.ID())
}
