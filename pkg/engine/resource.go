package engine

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-conquest/pkg/entity"
)

// ResourceSystem accrues resources on controlled planets each tick and
// credits a share to the owning faction's treasury. Contested planets and
// neutral worlds generate nothing.
type ResourceSystem struct {
	store *entity.Store
}

// NewResourceSystem creates the per-tick resource accrual system.
func NewResourceSystem(store *entity.Store) *ResourceSystem {
	return &ResourceSystem{store: store}
}

// Priority places resource generation first in the tick order.
func (s *ResourceSystem) Priority() int { return priorityResource }

// Update accrues resourceRate * industry * dt on each controlled planet.
// With no simulation state the system is a no-op rather than an error.
func (s *ResourceSystem) Update(dt float32) {
	sim, ok := s.store.Simulation()
	if !ok {
		return
	}
	step := float64(dt)
	for _, p := range s.store.Planets() {
		if p.ControllingFaction == entity.Neutral || p.UnderAttack {
			continue
		}
		generated := p.ResourceRate * p.Industry * step
		p.Resources += generated
		sim.Credits[p.ControllingFaction] += generated * creditShare
	}
}

// Remove satisfies ecs.System; entity lifecycle is owned by the store.
func (s *ResourceSystem) Remove(ecs.BasicEntity) {}
