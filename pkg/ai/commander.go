package ai

import (
	"context"
	"math"

	"github.com/opd-ai/go-conquest/pkg/entity"
	"github.com/opd-ai/go-conquest/pkg/logging"
	"github.com/opd-ai/go-conquest/pkg/rng"
)

// FactionSeedOffset separates the per-faction RNG streams from the session
// seed: commander seed = globalSeed + faction * FactionSeedOffset.
const FactionSeedOffset = 12345

// Decision tuning constants.
const (
	defendPriority     = 0.9
	reinforcePriority  = 0.5
	attackBasePriority = 0.7

	threatTrigger    = 0.5
	lowGarrisonLimit = 50.0
	intervalJitter   = 1.0 // seconds, +/- around the personality mean
	travelTimeMean   = 15.0
	travelTimeJitter = 3.0
)

// DecisionKind classifies what a commander wants a fleet to do.
type DecisionKind int

const (
	DecisionDefend DecisionKind = iota
	DecisionAttack
	DecisionReinforce
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionDefend:
		return "defend"
	case DecisionAttack:
		return "attack"
	case DecisionReinforce:
		return "reinforce"
	default:
		return "unknown"
	}
}

// Decision is one fleet assignment produced by a decision cycle.
type Decision struct {
	Kind     DecisionKind
	Fleet    entity.ID
	Target   entity.ID
	Priority float64
}

// OrderIssuer is the commander's only write path into the simulation.
// The engine's Galaxy implements it.
type OrderIssuer interface {
	IssueFleetOrder(fleet, destination entity.ID, travelTime float64) error
}

// Commander is the strategic AI for one faction. It owns an independent
// seeded RNG so two commanders never perturb each other's streams.
type Commander struct {
	faction     entity.Faction
	personality Personality
	store       *entity.Store
	orders      OrderIssuer
	rand        *rng.Source
	log         *logging.Logger

	timer    float64
	interval float64
}

// NewCommander creates a commander for a faction, seeded from the session
// seed plus the faction offset.
func NewCommander(faction entity.Faction, personality Personality, store *entity.Store, orders OrderIssuer, globalSeed uint64) *Commander {
	c := &Commander{
		faction:     faction,
		personality: personality,
		store:       store,
		orders:      orders,
		rand:        rng.New(globalSeed + uint64(faction)*FactionSeedOffset),
		log:         logging.NewLogger(),
	}
	c.interval = c.nextInterval()
	return c
}

// Faction returns the faction this commander plays.
func (c *Commander) Faction() entity.Faction {
	return c.faction
}

// Personality returns the commander's profile.
func (c *Commander) Personality() Personality {
	return c.personality
}

// Reset zeroes the decision timer and rewinds the RNG to its initial
// per-faction seed, so a reset session replays identically.
func (c *Commander) Reset() {
	c.timer = 0
	c.rand.Reset()
	c.interval = c.nextInterval()
}

// Update advances the decision timer and runs one decision cycle when the
// jittered interval expires.
func (c *Commander) Update(dt float64) {
	c.timer += dt
	if c.timer < c.interval {
		return
	}
	c.timer = 0
	decisions := c.Decide()
	c.execute(decisions)
	c.interval = c.nextInterval()
}

// Decide runs one strategic analysis pass and returns the fleet assignments
// without executing them. Exposed separately so replays and tests can compare
// decision streams directly.
func (c *Commander) Decide() []Decision {
	ownPlanets, enemyPlanets, neutralPlanets := c.partitionPlanets()
	idle := c.idleFleets()
	if len(idle) == 0 {
		return nil
	}

	var decisions []Decision
	targeted := make(map[entity.ID]bool)

	// Defensive triage first; aggressive commanders skip it entirely.
	if c.personality.Name != PersonalityAggressive {
		if planet := c.mostThreatened(ownPlanets); planet != nil {
			defender := strongestFleet(idle)
			decisions = append(decisions, Decision{
				Kind:     DecisionDefend,
				Fleet:    defender.EID(),
				Target:   planet.EID(),
				Priority: defendPriority,
			})
			targeted[planet.EID()] = true
			idle = withoutFleet(idle, defender)
		}
	}

	candidates := append(append([]*entity.Planet(nil), enemyPlanets...), neutralPlanets...)

	for _, fleet := range idle {
		if c.rand.Float64() < c.personality.Aggressiveness {
			target, value := c.bestTarget(candidates, targeted)
			if target == nil {
				continue
			}
			targeted[target.EID()] = true
			decisions = append(decisions, Decision{
				Kind:     DecisionAttack,
				Fleet:    fleet.EID(),
				Target:   target.EID(),
				Priority: attackBasePriority + value*0.3,
			})
			continue
		}

		if planet := c.weakestGarrison(ownPlanets, targeted); planet != nil {
			targeted[planet.EID()] = true
			decisions = append(decisions, Decision{
				Kind:     DecisionReinforce,
				Fleet:    fleet.EID(),
				Target:   planet.EID(),
				Priority: reinforcePriority,
			})
		}
	}
	return decisions
}

// execute turns decisions into movement orders. Travel time is rolled per
// issued order; a fleet already stationed at its target stays put.
func (c *Commander) execute(decisions []Decision) {
	for _, d := range decisions {
		fleet, ok := c.store.Fleet(d.Fleet)
		if !ok || fleet.CurrentPlanet == d.Target {
			continue
		}
		travel := travelTimeMean + (c.rand.Float64()*2-1)*travelTimeJitter
		if err := c.orders.IssueFleetOrder(d.Fleet, d.Target, travel); err != nil {
			c.log.Warn(context.Background(), "fleet order rejected",
				"faction", c.faction.String(),
				"kind", d.Kind.String(),
				"fleet", uint64(d.Fleet),
			)
			continue
		}
		c.log.Debug(context.Background(), "fleet order issued",
			"faction", c.faction.String(),
			"kind", d.Kind.String(),
			"fleet", uint64(d.Fleet),
			"target", uint64(d.Target),
			"priority", d.Priority,
		)
	}
}

func (c *Commander) nextInterval() float64 {
	return c.personality.DecisionInterval + (c.rand.Float64()*2-1)*intervalJitter
}

func (c *Commander) partitionPlanets() (own, enemy, neutral []*entity.Planet) {
	for _, p := range c.store.Planets() {
		switch {
		case p.ControllingFaction == c.faction:
			own = append(own, p)
		case p.ControllingFaction == entity.Neutral:
			neutral = append(neutral, p)
		default:
			enemy = append(enemy, p)
		}
	}
	return own, enemy, neutral
}

// idleFleets returns this faction's stationed fleets with positive strength.
// Fleets locked in combat or already moving are not available for orders.
func (c *Commander) idleFleets() []*entity.Fleet {
	var idle []*entity.Fleet
	for _, f := range c.store.FleetsOf(c.faction) {
		if f.PlayerControlled {
			continue
		}
		if f.State == entity.FleetMoving || f.State == entity.FleetCombat {
			continue
		}
		if f.Strength() <= 0 {
			continue
		}
		idle = append(idle, f)
	}
	return idle
}

// mostThreatened returns the own planet with the highest threat, or nil when
// nothing crosses the trigger. A planet under attack counts as maximally
// threatened.
func (c *Commander) mostThreatened(own []*entity.Planet) *entity.Planet {
	var worst *entity.Planet
	worstThreat := threatTrigger
	for _, p := range own {
		threat := c.threatLevel(p)
		if threat > worstThreat {
			worstThreat = threat
			worst = p
		}
	}
	return worst
}

// threatLevel estimates hostile pressure on a planet: enemy strength present
// or inbound, relative to friendly fleets plus the garrison.
func (c *Commander) threatLevel(p *entity.Planet) float64 {
	if p.UnderAttack {
		return 1.0
	}
	id := p.EID()
	var hostile, friendly float64
	for _, f := range c.store.Fleets() {
		here := f.CurrentPlanet == id ||
			(f.State == entity.FleetMoving && f.DestinationPlanet == id)
		if !here {
			continue
		}
		switch f.Faction {
		case c.faction:
			friendly += f.Strength()
		case entity.Neutral:
		default:
			hostile += f.Strength()
		}
	}
	if hostile == 0 {
		return 0
	}
	return math.Min(1.0, hostile/(friendly+p.Garrison*10+1))
}

// bestTarget scores each untargeted candidate planet and returns the highest
// scorer along with its economic value (used for the attack priority).
func (c *Commander) bestTarget(candidates []*entity.Planet, targeted map[entity.ID]bool) (*entity.Planet, float64) {
	var best *entity.Planet
	bestScore := math.Inf(-1)
	bestValue := 0.0
	for _, p := range candidates {
		if targeted[p.EID()] {
			continue
		}
		value := p.Industry*0.6 + (p.Resources/1000)*0.4
		score := value + (1-p.Garrison/100)*0.5
		if p.ControllingFaction == entity.Neutral {
			score += c.personality.ExpansionPriority * 0.3
		}
		if p.DefenseBonus > 0.5 {
			score -= (1 - c.personality.Aggressiveness) * 0.4
		}
		if score > bestScore {
			bestScore = score
			bestValue = value
			best = p
		}
	}
	return best, bestValue
}

// weakestGarrison returns the untargeted own planet with the lowest garrison
// below the reinforcement limit, or nil.
func (c *Commander) weakestGarrison(own []*entity.Planet, targeted map[entity.ID]bool) *entity.Planet {
	var weakest *entity.Planet
	lowest := lowGarrisonLimit
	for _, p := range own {
		if targeted[p.EID()] {
			continue
		}
		if p.Garrison < lowest {
			lowest = p.Garrison
			weakest = p
		}
	}
	return weakest
}

func strongestFleet(fleets []*entity.Fleet) *entity.Fleet {
	strongest := fleets[0]
	for _, f := range fleets[1:] {
		if f.Strength() > strongest.Strength() {
			strongest = f
		}
	}
	return strongest
}

func withoutFleet(fleets []*entity.Fleet, remove *entity.Fleet) []*entity.Fleet {
	out := fleets[:0]
	for _, f := range fleets {
		if f != remove {
			out = append(out, f)
		}
	}
	return out
}
