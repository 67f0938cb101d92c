package engine

import "github.com/opd-ai/go-conquest/pkg/entity"

// Projections are copy-on-read snapshots for UI and telemetry consumers.
// They never expose live store pointers, so a caller can hold a snapshot
// across ticks without racing the simulation.

// Overview is a one-screen summary of the session.
type Overview struct {
	GameTime      float64
	Phase         entity.GamePhase
	PlayerFaction entity.Faction
	TotalPlanets  int
	PlanetCounts  map[entity.Faction]int
	Credits       map[entity.Faction]float64
}

// PlanetState is a snapshot of a single planet.
type PlanetState struct {
	ID                 entity.ID
	Name               string
	ControllingFaction entity.Faction
	SpaceControl       entity.Faction
	GroundControl      entity.Faction
	Garrison           float64
	MaxGarrison        float64
	Resources          float64
	Industry           float64
	DefenseBonus       float64
	UnderAttack        bool
	BattlePhase        entity.BattlePhase
	HomeWorld          bool
}

// FleetState is a snapshot of a single fleet.
type FleetState struct {
	ID                entity.ID
	Name              string
	Faction           entity.Faction
	Fighters          int
	Capitals          int
	Bombers           int
	Veterancy         float64
	Strength          float64
	CurrentPlanet     entity.ID
	DestinationPlanet entity.ID
	Progress          float64
	State             entity.FleetState
	PlayerControlled  bool
}

// BattleState is a snapshot of a pending battle.
type BattleState struct {
	ID              entity.ID
	Planet          entity.ID
	AttackerFaction entity.Faction
	DefenderFaction entity.Faction
	Type            entity.BattleType
	PlayerInvolved  bool
	TimeRemaining   float64
}

// Overview returns the session summary.
func (g *Galaxy) Overview() Overview {
	o := Overview{
		TotalPlanets: g.store.PlanetCount(),
		PlanetCounts: make(map[entity.Faction]int),
		Credits:      make(map[entity.Faction]float64),
	}
	sim, ok := g.store.Simulation()
	if !ok {
		return o
	}
	o.GameTime = sim.GameTime
	o.Phase = sim.Phase
	o.PlayerFaction = sim.PlayerFaction
	for _, p := range g.store.Planets() {
		o.PlanetCounts[p.ControllingFaction]++
	}
	for faction, credits := range sim.Credits {
		o.Credits[faction] = credits
	}
	return o
}

// PlanetStates returns snapshots of every planet in creation order.
func (g *Galaxy) PlanetStates() []PlanetState {
	planets := g.store.Planets()
	out := make([]PlanetState, 0, len(planets))
	for _, p := range planets {
		out = append(out, PlanetState{
			ID:                 p.EID(),
			Name:               p.Name,
			ControllingFaction: p.ControllingFaction,
			SpaceControl:       p.SpaceControl,
			GroundControl:      p.GroundControl,
			Garrison:           p.Garrison,
			MaxGarrison:        p.MaxGarrison,
			Resources:          p.Resources,
			Industry:           p.Industry,
			DefenseBonus:       p.DefenseBonus,
			UnderAttack:        p.UnderAttack,
			BattlePhase:        p.BattlePhase,
			HomeWorld:          p.HomeWorld,
		})
	}
	return out
}

// FleetStates returns snapshots of every fleet in creation order.
func (g *Galaxy) FleetStates() []FleetState {
	fleets := g.store.Fleets()
	out := make([]FleetState, 0, len(fleets))
	for _, f := range fleets {
		out = append(out, snapshotFleet(f))
	}
	return out
}

// PlayerFleet returns the snapshot of the first player-controlled fleet,
// or false when the player has none.
func (g *Galaxy) PlayerFleet() (FleetState, bool) {
	for _, f := range g.store.Fleets() {
		if f.PlayerControlled {
			return snapshotFleet(f), true
		}
	}
	return FleetState{}, false
}

// PendingBattles returns snapshots of every unresolved battle.
func (g *Galaxy) PendingBattles() []BattleState {
	battles := g.store.Battles()
	out := make([]BattleState, 0, len(battles))
	for _, b := range battles {
		out = append(out, snapshotBattle(b))
	}
	return out
}

// PlayerBattles returns the pending battles waiting on the human-combat
// handoff. Auto-resolution never touches these.
func (g *Galaxy) PlayerBattles() []BattleState {
	var out []BattleState
	for _, b := range g.store.Battles() {
		if b.PlayerInvolved {
			out = append(out, snapshotBattle(b))
		}
	}
	return out
}

func snapshotFleet(f *entity.Fleet) FleetState {
	return FleetState{
		ID:                f.EID(),
		Name:              f.Name,
		Faction:           f.Faction,
		Fighters:          f.Fighters,
		Capitals:          f.Capitals,
		Bombers:           f.Bombers,
		Veterancy:         f.Veterancy,
		Strength:          f.Strength(),
		CurrentPlanet:     f.CurrentPlanet,
		DestinationPlanet: f.DestinationPlanet,
		Progress:          f.Progress,
		State:             f.State,
		PlayerControlled:  f.PlayerControlled,
	}
}

func snapshotBattle(b *entity.BattlePending) BattleState {
	return BattleState{
		ID:              b.EID(),
		Planet:          b.Planet,
		AttackerFaction: b.AttackerFaction,
		DefenderFaction: b.DefenderFaction,
		Type:            b.Type,
		PlayerInvolved:  b.PlayerInvolved,
		TimeRemaining:   b.AutoResolveTimer,
	}
}
