package engine

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-conquest/pkg/entity"
	"github.com/opd-ai/go-conquest/pkg/event"
)

// MovementSystem advances in-flight fleets along their normalized progress
// scalar and completes arrivals. Movement is linear interpolation: no
// acceleration curve, no partial-arrival events.
type MovementSystem struct {
	store *entity.Store
	bus   *event.Bus
}

// NewMovementSystem creates the fleet movement system.
func NewMovementSystem(store *entity.Store, bus *event.Bus) *MovementSystem {
	return &MovementSystem{store: store, bus: bus}
}

// Priority places movement after resource accrual, before battle detection.
func (s *MovementSystem) Priority() int { return priorityMovement }

// Update advances every moving fleet by dt / travelTime.
func (s *MovementSystem) Update(dt float32) {
	step := float64(dt)
	for _, f := range s.store.Fleets() {
		if f.State != entity.FleetMoving {
			continue
		}
		// Recover from an invalid order rather than travel nowhere.
		if f.DestinationPlanet == entity.None {
			f.State = entity.FleetIdle
			continue
		}
		if f.TravelTime > 0 {
			f.Progress += step / f.TravelTime
		} else {
			f.Progress = 1
		}
		if f.Progress < 1 {
			continue
		}
		s.arrive(f)
	}
}

func (s *MovementSystem) arrive(f *entity.Fleet) {
	destination := f.DestinationPlanet
	f.CurrentPlanet = destination
	f.DestinationPlanet = entity.None
	f.Progress = 0
	f.TravelTime = 0
	f.State = entity.FleetIdle

	if s.bus != nil {
		s.bus.Publish(event.NewFleetEvent(event.FleetArrived, s,
			uint64(f.EID()), uint64(destination), f.Faction.String()))
	}
}

// Remove satisfies ecs.System; entity lifecycle is owned by the store.
func (s *MovementSystem) Remove(ecs.BasicEntity) {}
