package engine

import (
	"math"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-conquest/pkg/entity"
	"github.com/opd-ai/go-conquest/pkg/event"
	"github.com/opd-ai/go-conquest/pkg/rng"
)

// Battle resolution constants.
const (
	rollMin = 0.7
	rollMax = 1.3

	maxLossRatio     = 0.8
	winnerLossScale  = 0.5 // winner takes lossRatio * 0.5
	defenderRoutLoss = 0.8 // flat loss when the defender is beaten
	attackerRoutLoss = 0.7 // flat loss when the attack fails
)

// AutoResolveSystem counts down pending battles and resolves the ones with
// no human participant. Player-involved battles are skipped indefinitely;
// the flight-combat collaborator owns their outcome and removes the record
// itself.
type AutoResolveSystem struct {
	store *entity.Store
	bus   *event.Bus
	rand  *rng.Source
}

// NewAutoResolveSystem creates the resolver. The source is the shared
// session RNG: given the same seed and the same battle, the outcome is
// bit-identical.
func NewAutoResolveSystem(store *entity.Store, bus *event.Bus, rand *rng.Source) *AutoResolveSystem {
	return &AutoResolveSystem{store: store, bus: bus, rand: rand}
}

// Priority places resolution directly after detection.
func (s *AutoResolveSystem) Priority() int { return priorityResolve }

// Update decrements each battle timer and resolves expired battles.
func (s *AutoResolveSystem) Update(dt float32) {
	step := float64(dt)
	for _, b := range s.store.Battles() {
		if b.PlayerInvolved {
			continue
		}
		b.AutoResolveTimer -= step
		if b.AutoResolveTimer > 0 {
			continue
		}
		s.resolve(b)
	}
}

// resolve computes relative strength, rolls the attacker's effectiveness,
// and applies the outcome.
func (s *AutoResolveSystem) resolve(b *entity.BattlePending) {
	attackerStrength := s.sideStrength(b.AttackerFleet, b.AttackerGround)
	defenderStrength := s.sideStrength(b.DefenderFleet, b.DefenderGround)

	if planet, ok := s.store.Planet(b.Planet); ok {
		defenderStrength *= 1 + planet.DefenseBonus
	}

	roll := s.rand.Range(rollMin, rollMax)
	attackerEffective := attackerStrength * roll

	var outcome battleOutcome
	if attackerEffective > defenderStrength {
		outcome = battleOutcome{
			Winner:       b.AttackerFaction,
			AttackerLoss: cappedLossRatio(defenderStrength, attackerEffective) * winnerLossScale,
			DefenderLoss: defenderRoutLoss,
		}
	} else {
		outcome = battleOutcome{
			Winner:           b.DefenderFaction,
			AttackerLoss:     attackerRoutLoss,
			DefenderLoss:     cappedLossRatio(attackerStrength, defenderStrength) * winnerLossScale,
			AttackerRetreats: true,
		}
	}
	applyBattleOutcome(s.store, s.bus, b, outcome)
}

func (s *AutoResolveSystem) sideStrength(fleet, ground entity.ID) float64 {
	total := 0.0
	if f, ok := s.store.Fleet(fleet); ok {
		total += f.Strength()
	}
	if g, ok := s.store.GroundForce(ground); ok {
		total += g.Strength()
	}
	return total
}

// cappedLossRatio is min(maxLossRatio, loser/winner), safe against a
// zero-strength winner.
func cappedLossRatio(loser, winner float64) float64 {
	if winner <= 0 {
		return 0
	}
	return math.Min(maxLossRatio, loser/winner)
}

// battleOutcome is the effect shape shared by auto-resolution and the
// human-combat handoff: who won and what fraction each side lost.
type battleOutcome struct {
	Winner           entity.Faction
	AttackerLoss     float64
	DefenderLoss     float64
	AttackerRetreats bool
}

// applyBattleOutcome applies losses, transfers control, converges the
// planet's ownership, clears the contest flags, and deletes the record.
func applyBattleOutcome(store *entity.Store, bus *event.Bus, b *entity.BattlePending, outcome battleOutcome) {
	applySideLosses(store, b.AttackerFleet, b.AttackerGround, outcome.AttackerLoss)
	applySideLosses(store, b.DefenderFleet, b.DefenderGround, outcome.DefenderLoss)

	if f, ok := store.Fleet(b.AttackerFleet); ok {
		if outcome.AttackerRetreats {
			f.State = entity.FleetRetreating
		} else {
			f.State = entity.FleetIdle
		}
	}
	if f, ok := store.Fleet(b.DefenderFleet); ok {
		f.State = entity.FleetIdle
	}

	if planet, ok := store.Planet(b.Planet); ok {
		transferControl(store, bus, planet, b.Type, outcome.Winner)
		planet.UnderAttack = false
		planet.BattlePhase = entity.BattlePhaseNone
	}

	store.RemoveBattle(b.EID())

	if bus != nil {
		bus.Publish(event.NewBattleEvent(event.BattleResolved, nil,
			uint64(b.EID()), uint64(b.Planet),
			b.AttackerFaction.String(), b.DefenderFaction.String(),
			b.PlayerInvolved))
	}
}

func applySideLosses(store *entity.Store, fleet, ground entity.ID, pct float64) {
	if f, ok := store.Fleet(fleet); ok {
		f.ApplyLosses(pct)
	}
	if g, ok := store.GroundForce(ground); ok {
		g.ApplyLosses(pct)
	}
}

// transferControl moves the contested control layer to the winner. When both
// layers agree afterwards, the planet's controlling faction converges to
// them.
func transferControl(store *entity.Store, bus *event.Bus, planet *entity.Planet, battleType entity.BattleType, winner entity.Faction) {
	switch battleType {
	case entity.BattleSpace:
		planet.SpaceControl = winner
	case entity.BattleGround:
		planet.GroundControl = winner
	case entity.BattleCombined:
		planet.SpaceControl = winner
		planet.GroundControl = winner
	}

	if planet.SpaceControl == planet.GroundControl && planet.ControllingFaction != planet.SpaceControl {
		old := planet.ControllingFaction
		planet.ControllingFaction = planet.SpaceControl
		if bus != nil {
			bus.Publish(event.NewControlEvent(nil, uint64(planet.EID()),
				planet.ControllingFaction.String(), old.String()))
		}
	}
}

// Remove satisfies ecs.System; entity lifecycle is owned by the store.
func (s *AutoResolveSystem) Remove(ecs.BasicEntity) {}
