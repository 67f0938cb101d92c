package entity

// Store is the single source of truth for all strategic entities. It keeps
// one typed table per entity kind plus a single slot for the simulation
// state. Tables preserve insertion order: seeded determinism requires every
// system to see entities in the same order on every run, which bare map
// iteration would not give.
//
// The store is mutated from exactly one call stack per frame (see the engine
// package); it is not safe for concurrent use and deliberately carries no
// locks.
type Store struct {
	planets     map[ID]*Planet
	planetOrder []ID

	fleets     map[ID]*Fleet
	fleetOrder []ID

	grounds     map[ID]*GroundForce
	groundOrder []ID

	battles     map[ID]*BattlePending
	battleOrder []ID

	sim *SimulationState
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset drops every entity the store owns, including the simulation state.
func (s *Store) Reset() {
	s.planets = make(map[ID]*Planet)
	s.planetOrder = nil
	s.fleets = make(map[ID]*Fleet)
	s.fleetOrder = nil
	s.grounds = make(map[ID]*GroundForce)
	s.groundOrder = nil
	s.battles = make(map[ID]*BattlePending)
	s.battleOrder = nil
	s.sim = nil
}

// AddPlanet registers a planet and returns its id.
func (s *Store) AddPlanet(p *Planet) ID {
	id := p.EID()
	s.planets[id] = p
	s.planetOrder = append(s.planetOrder, id)
	return id
}

// Planet looks up a planet by id.
func (s *Store) Planet(id ID) (*Planet, bool) {
	p, ok := s.planets[id]
	return p, ok
}

// Planets returns all planets in insertion order. The slice is fresh; the
// pointed-to planets are live.
func (s *Store) Planets() []*Planet {
	out := make([]*Planet, 0, len(s.planetOrder))
	for _, id := range s.planetOrder {
		out = append(out, s.planets[id])
	}
	return out
}

// PlanetsOf returns the planets controlled by a faction, in insertion order.
func (s *Store) PlanetsOf(f Faction) []*Planet {
	var out []*Planet
	for _, id := range s.planetOrder {
		if p := s.planets[id]; p.ControllingFaction == f {
			out = append(out, p)
		}
	}
	return out
}

// PlanetCount returns the number of planets in the galaxy.
func (s *Store) PlanetCount() int {
	return len(s.planetOrder)
}

// AddFleet registers a fleet and returns its id.
func (s *Store) AddFleet(f *Fleet) ID {
	id := f.EID()
	s.fleets[id] = f
	s.fleetOrder = append(s.fleetOrder, id)
	return id
}

// Fleet looks up a fleet by id.
func (s *Store) Fleet(id ID) (*Fleet, bool) {
	f, ok := s.fleets[id]
	return f, ok
}

// Fleets returns all fleets in insertion order.
func (s *Store) Fleets() []*Fleet {
	out := make([]*Fleet, 0, len(s.fleetOrder))
	for _, id := range s.fleetOrder {
		out = append(out, s.fleets[id])
	}
	return out
}

// FleetsOf returns the fleets of a faction, in insertion order.
func (s *Store) FleetsOf(f Faction) []*Fleet {
	var out []*Fleet
	for _, id := range s.fleetOrder {
		if fl := s.fleets[id]; fl.Faction == f {
			out = append(out, fl)
		}
	}
	return out
}

// FleetsAt returns the fleets currently located at a planet.
func (s *Store) FleetsAt(planet ID) []*Fleet {
	var out []*Fleet
	for _, id := range s.fleetOrder {
		if fl := s.fleets[id]; fl.CurrentPlanet == planet {
			out = append(out, fl)
		}
	}
	return out
}

// RemoveFleet deletes a fleet. Removal is always explicit; combat never
// deletes fleets on its own.
func (s *Store) RemoveFleet(id ID) {
	if _, ok := s.fleets[id]; !ok {
		return
	}
	delete(s.fleets, id)
	s.fleetOrder = removeID(s.fleetOrder, id)
}

// AddGroundForce registers a ground force and returns its id.
func (s *Store) AddGroundForce(g *GroundForce) ID {
	id := g.EID()
	s.grounds[id] = g
	s.groundOrder = append(s.groundOrder, id)
	return id
}

// GroundForce looks up a ground force by id.
func (s *Store) GroundForce(id ID) (*GroundForce, bool) {
	g, ok := s.grounds[id]
	return g, ok
}

// GroundForces returns all ground forces in insertion order.
func (s *Store) GroundForces() []*GroundForce {
	out := make([]*GroundForce, 0, len(s.groundOrder))
	for _, id := range s.groundOrder {
		out = append(out, s.grounds[id])
	}
	return out
}

// RemoveGroundForce deletes a ground force.
func (s *Store) RemoveGroundForce(id ID) {
	if _, ok := s.grounds[id]; !ok {
		return
	}
	delete(s.grounds, id)
	s.groundOrder = removeID(s.groundOrder, id)
}

// AddBattle registers a pending battle and returns its id.
func (s *Store) AddBattle(b *BattlePending) ID {
	id := b.EID()
	s.battles[id] = b
	s.battleOrder = append(s.battleOrder, id)
	return id
}

// Battle looks up a pending battle by id.
func (s *Store) Battle(id ID) (*BattlePending, bool) {
	b, ok := s.battles[id]
	return b, ok
}

// Battles returns all pending battles in insertion order.
func (s *Store) Battles() []*BattlePending {
	out := make([]*BattlePending, 0, len(s.battleOrder))
	for _, id := range s.battleOrder {
		out = append(out, s.battles[id])
	}
	return out
}

// RemoveBattle deletes a pending battle.
func (s *Store) RemoveBattle(id ID) {
	if _, ok := s.battles[id]; !ok {
		return
	}
	delete(s.battles, id)
	s.battleOrder = removeID(s.battleOrder, id)
}

// SetSimulation installs the session singleton.
func (s *Store) SetSimulation(sim *SimulationState) {
	s.sim = sim
}

// Simulation returns the session singleton. Every system treats a missing
// singleton as a reason to no-op rather than fail.
func (s *Store) Simulation() (*SimulationState, bool) {
	return s.sim, s.sim != nil
}

func removeID(order []ID, id ID) []ID {
	for i, existing := range order {
		if existing == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
