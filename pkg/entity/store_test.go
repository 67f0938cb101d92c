package entity

import "testing"

func TestStore_PlanetsPreserveInsertionOrder(t *testing.T) {
	s := NewStore()
	names := []string{"Yavin", "Coruscant", "Hoth", "Endor", "Tatooine"}
	for _, n := range names {
		s.AddPlanet(NewPlanet(n, Neutral))
	}
	for i := 0; i < 10; i++ {
		planets := s.Planets()
		if len(planets) != len(names) {
			t.Fatalf("expected %d planets, got %d", len(names), len(planets))
		}
		for j, p := range planets {
			if p.Name != names[j] {
				t.Fatalf("iteration %d: planet %d = %q, want %q", i, j, p.Name, names[j])
			}
		}
	}
}

func TestStore_FleetQueries(t *testing.T) {
	s := NewStore()
	yavin := s.AddPlanet(NewPlanet("Yavin", Rebel))
	hoth := s.AddPlanet(NewPlanet("Hoth", Rebel))

	s.AddFleet(NewFleet("Red Squadron", Rebel, yavin, 10, 1, 2))
	s.AddFleet(NewFleet("Death Squadron", Empire, yavin, 8, 3, 1))
	s.AddFleet(NewFleet("Echo Group", Rebel, hoth, 5, 0, 0))

	if got := len(s.FleetsOf(Rebel)); got != 2 {
		t.Errorf("FleetsOf(Rebel) = %d fleets, want 2", got)
	}
	if got := len(s.FleetsAt(yavin)); got != 2 {
		t.Errorf("FleetsAt(yavin) = %d fleets, want 2", got)
	}
	if got := len(s.FleetsAt(hoth)); got != 1 {
		t.Errorf("FleetsAt(hoth) = %d fleets, want 1", got)
	}
}

func TestStore_RemoveFleet(t *testing.T) {
	s := NewStore()
	f := NewFleet("doomed", Empire, None, 1, 0, 0)
	id := s.AddFleet(f)

	s.RemoveFleet(id)
	if _, ok := s.Fleet(id); ok {
		t.Error("fleet still present after removal")
	}
	if len(s.Fleets()) != 0 {
		t.Error("fleet order slice not cleaned up")
	}
	// Removing twice is harmless.
	s.RemoveFleet(id)
}

func TestStore_BattleLifecycle(t *testing.T) {
	s := NewStore()
	planet := s.AddPlanet(NewPlanet("Yavin", Rebel))

	b := NewBattle(planet, BattleSpace, Empire, Rebel)
	id := s.AddBattle(b)

	if got, ok := s.Battle(id); !ok || got.Planet != planet {
		t.Error("Battle did not find the pending record")
	}
	s.RemoveBattle(id)
	if _, ok := s.Battle(id); ok {
		t.Error("battle still present after removal")
	}
	if len(s.Battles()) != 0 {
		t.Error("battle order slice not cleaned up")
	}
}

func TestStore_SimulationSingleton(t *testing.T) {
	s := NewStore()
	if _, ok := s.Simulation(); ok {
		t.Error("empty store should have no simulation state")
	}
	sim := NewSimulationState(Rebel, 0.75)
	s.SetSimulation(sim)
	got, ok := s.Simulation()
	if !ok || got != sim {
		t.Error("Simulation() did not return the installed singleton")
	}
}

func TestStore_Reset_DropsEverything(t *testing.T) {
	s := NewStore()
	p := s.AddPlanet(NewPlanet("Yavin", Rebel))
	s.AddFleet(NewFleet("Red", Rebel, p, 1, 0, 0))
	s.AddGroundForce(NewGroundForce("Garrison", Rebel, p, 10, 0, 0))
	s.AddBattle(NewBattle(p, BattleSpace, Empire, Rebel))
	s.SetSimulation(NewSimulationState(Rebel, 0.75))

	s.Reset()

	if s.PlanetCount() != 0 || len(s.Fleets()) != 0 || len(s.GroundForces()) != 0 || len(s.Battles()) != 0 {
		t.Error("Reset left entities behind")
	}
	if _, ok := s.Simulation(); ok {
		t.Error("Reset left the simulation state behind")
	}
}
