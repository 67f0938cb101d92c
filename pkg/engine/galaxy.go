package engine

import (
	"context"
	"fmt"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-conquest/pkg/ai"
	"github.com/opd-ai/go-conquest/pkg/config"
	"github.com/opd-ai/go-conquest/pkg/entity"
	"github.com/opd-ai/go-conquest/pkg/event"
	"github.com/opd-ai/go-conquest/pkg/logging"
	"github.com/opd-ai/go-conquest/pkg/rng"
	"github.com/opd-ai/go-conquest/pkg/validation"
)

// Galaxy owns the component store and advances the strategic simulation. The
// orchestrator and the faction commanders run synchronously from one Update
// call per frame; the store is only ever mutated from that call stack, so
// there is no locking anywhere in the core.
type Galaxy struct {
	cfg        *config.GalaxyConfig
	store      *entity.Store
	world      *ecs.World
	bus        *event.Bus
	rand       *rng.Source // session RNG, drives battle resolution
	log        *logging.Logger
	commanders []*ai.Commander
}

// NewGalaxy validates the configuration, bootstraps the initial entities
// exactly once, and wires the tick systems and faction commanders.
func NewGalaxy(cfg *config.GalaxyConfig) (*Galaxy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, "bootstrapping galaxy")
	}

	g := &Galaxy{
		cfg:   cfg,
		store: entity.NewStore(),
		bus:   event.NewBus(),
		rand:  rng.New(cfg.Seed),
		log:   logging.NewLogger(),
	}

	if err := g.bootstrap(); err != nil {
		return nil, err
	}
	if err := g.initWorld(); err != nil {
		return nil, err
	}
	if err := g.initCommanders(); err != nil {
		return nil, err
	}

	g.bus.Publish(&event.BaseEvent{EventType: event.SessionStarted, Source: g})
	g.log.Info(context.Background(), "galaxy bootstrapped",
		"planets", g.store.PlanetCount(),
		"fleets", len(g.store.Fleets()),
		"seed", cfg.Seed,
	)
	return g, nil
}

// bootstrap seeds planets from the static map data and creates the starting
// forces and the simulation-state singleton.
func (g *Galaxy) bootstrap() error {
	planetIDs := make(map[string]entity.ID, len(g.cfg.Planets))

	for _, pc := range g.cfg.Planets {
		p := entity.NewPlanet(pc.Name, pc.Faction)
		p.ResourceRate = pc.ResourceRate
		p.Industry = pc.Industry
		p.DefenseBonus = pc.DefenseBonus
		if pc.MaxGarrison > 0 {
			p.MaxGarrison = pc.MaxGarrison
		}
		p.Garrison = pc.Garrison
		p.HomeWorld = pc.HomeWorld
		planetIDs[pc.Name] = g.store.AddPlanet(p)
	}

	for _, fc := range g.cfg.Fleets {
		home, ok := planetIDs[fc.Planet]
		if !ok {
			return fmt.Errorf("fleet %q stationed at unknown planet %q", fc.Name, fc.Planet)
		}
		f := entity.NewFleet(fc.Name, fc.Faction, home, fc.Fighters, fc.Capitals, fc.Bombers)
		f.PlayerControlled = fc.PlayerControlled
		g.store.AddFleet(f)
	}

	for _, gc := range g.cfg.GroundForces {
		home, ok := planetIDs[gc.Planet]
		if !ok {
			return fmt.Errorf("ground force %q stationed at unknown planet %q", gc.Name, gc.Planet)
		}
		gf := entity.NewGroundForce(gc.Name, gc.Faction, home, gc.Infantry, gc.Vehicles, gc.Artillery)
		gf.PlayerControlled = gc.PlayerControlled
		g.store.AddGroundForce(gf)
	}

	sim := entity.NewSimulationState(g.cfg.PlayerFaction, g.cfg.GameRules.VictoryThreshold)
	sim.Phase = entity.PhasePlaying
	g.store.SetSimulation(sim)
	return nil
}

// initWorld registers the six tick systems. The ecs.World runs them in
// descending priority, which encodes the load-bearing order: resources,
// movement, detection, resolution, reinforcement, victory.
func (g *Galaxy) initWorld() error {
	// The interface must stay a true nil when no rules are configured; a
	// typed-nil *ExprWinCondition would pass the victory system's nil check.
	var custom WinCondition
	if compiled, err := CompileVictoryRules(g.cfg.GameRules.VictoryRules); err != nil {
		return err
	} else if compiled != nil {
		custom = compiled
	}

	g.world = &ecs.World{}
	g.world.AddSystem(NewResourceSystem(g.store))
	g.world.AddSystem(NewMovementSystem(g.store, g.bus))
	g.world.AddSystem(NewBattleDetectionSystem(g.store, g.bus, g.cfg.GameRules.AutoResolveDelay))
	g.world.AddSystem(NewAutoResolveSystem(g.store, g.bus, g.rand))
	g.world.AddSystem(NewReinforcementSystem(g.store))
	g.world.AddSystem(NewVictorySystem(g.store, g.bus, custom))
	return nil
}

// initCommanders creates one AI commander per non-player hostile faction.
func (g *Galaxy) initCommanders() error {
	g.commanders = nil
	for _, faction := range entity.HostileFactions {
		if faction == g.cfg.PlayerFaction {
			continue
		}
		profile, err := ai.ProfileByName(g.cfg.AI[faction.String()].Personality)
		if err != nil {
			return logging.WrapError(err, "commander for %s", faction)
		}
		if override := g.cfg.AI[faction.String()].DecisionInterval; override > 0 {
			profile.DecisionInterval = override
		}
		g.commanders = append(g.commanders, ai.NewCommander(faction, profile, g.store, g, g.cfg.Seed))
	}
	return nil
}

// Update advances the simulation by dt seconds: clock, the six systems in
// fixed order, then each commander on its own cadence. Once a victory phase
// is reached the session is frozen and Update becomes a no-op.
func (g *Galaxy) Update(dt float64) {
	sim, ok := g.store.Simulation()
	if !ok || sim.Ended() {
		return
	}
	sim.GameTime += dt
	g.world.Update(float32(dt))
	for _, c := range g.commanders {
		c.Update(dt)
	}
}

// Reset deletes every entity this core owns, re-runs the bootstrap from the
// retained configuration, and rewinds the session RNG and both commanders to
// their initial seeds. Callable repeatedly without leaking entities.
func (g *Galaxy) Reset() error {
	g.store.Reset()
	g.rand.Seed(g.cfg.Seed)
	if err := g.bootstrap(); err != nil {
		return err
	}
	for _, c := range g.commanders {
		c.Reset()
	}
	g.bus.Publish(&event.BaseEvent{EventType: event.SessionReset, Source: g})
	return nil
}

// SetSeed reseeds the session RNG that drives battle resolution. Intended
// for deterministic replay and testing.
func (g *Galaxy) SetSeed(seed uint64) {
	g.rand.Seed(seed)
}

// Bus exposes the event bus for external subscribers (UI, telemetry, the
// flight-combat layer).
func (g *Galaxy) Bus() *event.Bus {
	return g.bus
}

// Commanders returns the active faction commanders.
func (g *Galaxy) Commanders() []*ai.Commander {
	return g.commanders
}

// IssueFleetOrder is the single write path for fleet movement: the faction
// commanders and any external caller route orders through it. The order is
// validated; the movement system does the rest.
func (g *Galaxy) IssueFleetOrder(fleetID, destination entity.ID, travelTime float64) error {
	fleet, ok := g.store.Fleet(fleetID)
	if !ok {
		return fmt.Errorf("unknown fleet %d", fleetID)
	}
	if _, ok := g.store.Planet(destination); !ok {
		return fmt.Errorf("unknown destination planet %d", destination)
	}
	if fleet.State == entity.FleetCombat {
		return fmt.Errorf("fleet %q is engaged in battle", fleet.Name)
	}
	if err := validation.ValidateTravelTime(travelTime); err != nil {
		return err
	}

	fleet.DestinationPlanet = destination
	fleet.CurrentPlanet = entity.None
	fleet.Progress = 0
	fleet.TravelTime = travelTime
	fleet.State = entity.FleetMoving

	g.bus.Publish(event.NewFleetEvent(event.FleetOrderIssued, g,
		uint64(fleetID), uint64(destination), fleet.Faction.String()))
	return nil
}

// ResolvePlayerBattle is the human-combat handoff: the flight/ground combat
// collaborator reports the outcome of a player-involved battle, and the core
// applies the same effect shape auto-resolution would (losses, control
// transfer, record removal).
func (g *Galaxy) ResolvePlayerBattle(battleID entity.ID, winner entity.Faction, attackerLoss, defenderLoss float64) error {
	b, ok := g.store.Battle(battleID)
	if !ok {
		return fmt.Errorf("unknown battle %d", battleID)
	}
	if !b.PlayerInvolved {
		return fmt.Errorf("battle %d is not player-involved", battleID)
	}
	if winner != b.AttackerFaction && winner != b.DefenderFaction {
		return fmt.Errorf("winner %s is not a participant", winner)
	}
	for field, v := range map[string]float64{"attackerLoss": attackerLoss, "defenderLoss": defenderLoss} {
		if err := validation.ValidateRatio(field, v); err != nil {
			return err
		}
	}

	applyBattleOutcome(g.store, g.bus, b, battleOutcome{
		Winner:           winner,
		AttackerLoss:     attackerLoss,
		DefenderLoss:     defenderLoss,
		AttackerRetreats: winner == b.DefenderFaction,
	})
	return nil
}
