package engine

import (
	"math"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-conquest/pkg/entity"
	"github.com/opd-ai/go-conquest/pkg/event"
)

// VictorySystem evaluates faction planet share each tick and freezes the
// simulation once a faction crosses the victory threshold. The phase guard
// makes every tick after victory a pure no-op.
type VictorySystem struct {
	store  *entity.Store
	bus    *event.Bus
	custom WinCondition // optional, checked before the threshold
}

// NewVictorySystem creates the victory evaluation system. custom may be nil.
func NewVictorySystem(store *entity.Store, bus *event.Bus, custom WinCondition) *VictorySystem {
	return &VictorySystem{store: store, bus: bus, custom: custom}
}

// Priority places victory evaluation last in the tick order.
func (s *VictorySystem) Priority() int { return priorityVictory }

// Update refreshes the cached planet counts and checks for a winner.
func (s *VictorySystem) Update(dt float32) {
	sim, ok := s.store.Simulation()
	if !ok || sim.Phase != entity.PhasePlaying {
		return
	}

	counts := map[entity.Faction]int{}
	for _, p := range s.store.Planets() {
		counts[p.ControllingFaction]++
	}
	sim.PlanetCounts = counts

	total := s.store.PlanetCount()
	if total == 0 {
		return
	}

	if s.custom != nil {
		if winner, won := s.custom.CheckWinner(s.store); won {
			s.declare(sim, winner, counts[winner], total)
			return
		}
	}

	threshold := int(math.Ceil(float64(total) * sim.VictoryThreshold))
	if counts[entity.Rebel] >= threshold {
		s.declare(sim, entity.Rebel, counts[entity.Rebel], total)
	} else if counts[entity.Empire] >= threshold {
		s.declare(sim, entity.Empire, counts[entity.Empire], total)
	}
}

func (s *VictorySystem) declare(sim *entity.SimulationState, winner entity.Faction, owned, total int) {
	switch winner {
	case entity.Rebel:
		sim.Phase = entity.PhaseRebelVictory
	case entity.Empire:
		sim.Phase = entity.PhaseEmpireVictory
	default:
		return
	}
	if s.bus != nil {
		s.bus.Publish(event.NewVictoryEvent(s, winner.String(), float64(owned)/float64(total)))
	}
}

// Remove satisfies ecs.System; entity lifecycle is owned by the store.
func (s *VictorySystem) Remove(ecs.BasicEntity) {}
