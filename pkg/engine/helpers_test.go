package engine

import (
	"github.com/opd-ai/go-conquest/pkg/entity"
)

// newTestStore builds a store with a live simulation state.
func newTestStore() *entity.Store {
	store := entity.NewStore()
	sim := entity.NewSimulationState(entity.Neutral, 0.75)
	sim.Phase = entity.PhasePlaying
	store.SetSimulation(sim)
	return store
}

func addPlanet(store *entity.Store, name string, faction entity.Faction) *entity.Planet {
	p := entity.NewPlanet(name, faction)
	store.AddPlanet(p)
	return p
}

func addFleet(store *entity.Store, name string, faction entity.Faction, planet entity.ID, fighters, capitals, bombers int) *entity.Fleet {
	f := entity.NewFleet(name, faction, planet, fighters, capitals, bombers)
	store.AddFleet(f)
	return f
}

func almostEqual(a, b float64) bool {
	const epsilon = 1e-9
	diff := a - b
	return diff < epsilon && diff > -epsilon
}
