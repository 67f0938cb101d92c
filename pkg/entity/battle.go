package entity

import "github.com/EngoEngine/ecs"

// BattleType classifies which control layer a battle contests.
type BattleType int

const (
	BattleSpace BattleType = iota
	BattleGround
	BattleCombined
)

func (t BattleType) String() string {
	switch t {
	case BattleSpace:
		return "Space"
	case BattleGround:
		return "Ground"
	case BattleCombined:
		return "Combined"
	default:
		return "Unknown"
	}
}

// BattlePending is the ephemeral record for an unresolved collision of
// opposing forces at a planet. Detection creates it, auto-resolution (or the
// external human-combat collaborator when PlayerInvolved) consumes it.
// All participant references are nullable via None.
type BattlePending struct {
	ecs.BasicEntity
	Planet ID

	AttackerFleet  ID
	DefenderFleet  ID
	AttackerGround ID
	DefenderGround ID

	AttackerFaction Faction
	DefenderFaction Faction

	Type             BattleType
	PlayerInvolved   bool
	AutoResolveTimer float64 // seconds until auto-resolution
}

// NewBattle opens a pending battle at the given planet.
func NewBattle(planet ID, battleType BattleType, attacker, defender Faction) *BattlePending {
	return &BattlePending{
		BasicEntity:     ecs.NewBasic(),
		Planet:          planet,
		AttackerFleet:   None,
		DefenderFleet:   None,
		AttackerGround:  None,
		DefenderGround:  None,
		AttackerFaction: attacker,
		DefenderFaction: defender,
		Type:            battleType,
	}
}

// EID returns the battle record's entity id.
func (b *BattlePending) EID() ID {
	return ID(b.BasicEntity.ID())
}
