package engine

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-conquest/pkg/entity"
	"github.com/opd-ai/go-conquest/pkg/event"
)

// BattleDetectionSystem scans planets for co-located opposing stationary
// fleets and opens a pending battle. The planet's UnderAttack guard keeps
// detection on an already-contested planet a strict no-op, so at most one
// battle is pending per planet.
//
// Attacker assignment is asymmetric: the Empire fleet is always modeled as
// the attacker. Deliberately retained from the original balance design.
type BattleDetectionSystem struct {
	store *entity.Store
	bus   *event.Bus
	delay float64 // auto-resolve grace period for new battles
}

// NewBattleDetectionSystem creates the detection system. delay <= 0 falls
// back to DefaultAutoResolveDelay.
func NewBattleDetectionSystem(store *entity.Store, bus *event.Bus, delay float64) *BattleDetectionSystem {
	if delay <= 0 {
		delay = DefaultAutoResolveDelay
	}
	return &BattleDetectionSystem{store: store, bus: bus, delay: delay}
}

// Priority places detection after movement and before auto-resolution, so a
// battle detected this tick starts its countdown now and resolves on a later
// tick.
func (s *BattleDetectionSystem) Priority() int { return priorityDetection }

// Update opens one space battle per newly contested planet.
func (s *BattleDetectionSystem) Update(dt float32) {
	for _, p := range s.store.Planets() {
		if p.UnderAttack {
			continue
		}
		rebel, empire := s.representatives(p.EID())
		if rebel == nil || empire == nil {
			continue
		}
		s.openBattle(p, empire, rebel)
	}
}

// representatives picks at most one stationary fleet per hostile faction at
// the planet. Neutral fleets never trigger battles.
func (s *BattleDetectionSystem) representatives(planet entity.ID) (rebel, empire *entity.Fleet) {
	for _, f := range s.store.FleetsAt(planet) {
		if f.State == entity.FleetMoving {
			continue
		}
		switch f.Faction {
		case entity.Rebel:
			if rebel == nil {
				rebel = f
			}
		case entity.Empire:
			if empire == nil {
				empire = f
			}
		}
	}
	return rebel, empire
}

func (s *BattleDetectionSystem) openBattle(p *entity.Planet, attacker, defender *entity.Fleet) {
	b := entity.NewBattle(p.EID(), entity.BattleSpace, attacker.Faction, defender.Faction)
	b.AttackerFleet = attacker.EID()
	b.DefenderFleet = defender.EID()
	b.PlayerInvolved = attacker.PlayerControlled || defender.PlayerControlled
	b.AutoResolveTimer = s.delay
	s.store.AddBattle(b)

	p.UnderAttack = true
	p.BattlePhase = entity.BattlePhaseSpace
	attacker.State = entity.FleetCombat
	defender.State = entity.FleetCombat

	if s.bus != nil {
		s.bus.Publish(event.NewBattleEvent(event.BattleStarted, s,
			uint64(b.EID()), uint64(p.EID()),
			b.AttackerFaction.String(), b.DefenderFaction.String(),
			b.PlayerInvolved))
	}
}

// Remove satisfies ecs.System; entity lifecycle is owned by the store.
func (s *BattleDetectionSystem) Remove(ecs.BasicEntity) {}
