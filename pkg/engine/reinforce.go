package engine

import (
	"math"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-conquest/pkg/entity"
)

// garrisonGrowthRate is the garrison regrowth per second at full industry.
const garrisonGrowthRate = 0.5

// ReinforcementSystem slowly regrows planetary garrisons. Growth is strictly
// monotonic, clamps at the garrison cap, and freezes while the planet is
// contested.
type ReinforcementSystem struct {
	store *entity.Store
}

// NewReinforcementSystem creates the garrison regrowth system.
func NewReinforcementSystem(store *entity.Store) *ReinforcementSystem {
	return &ReinforcementSystem{store: store}
}

// Priority places reinforcement after battle resolution.
func (s *ReinforcementSystem) Priority() int { return priorityReinforce }

// Update grows each controlled, uncontested planet's garrison.
func (s *ReinforcementSystem) Update(dt float32) {
	step := float64(dt)
	for _, p := range s.store.Planets() {
		if p.ControllingFaction == entity.Neutral || p.UnderAttack {
			continue
		}
		p.Garrison = math.Min(p.MaxGarrison, p.Garrison+garrisonGrowthRate*p.Industry*step)
	}
}

// Remove satisfies ecs.System; entity lifecycle is owned by the store.
func (s *ReinforcementSystem) Remove(ecs.BasicEntity) {}
