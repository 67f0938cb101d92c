package engine

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/opd-ai/go-conquest/pkg/entity"
)

// WinCondition is an optional plug-in checked before the default planet-share
// threshold. It returns the winning faction when a custom rule fires.
type WinCondition interface {
	CheckWinner(store *entity.Store) (entity.Faction, bool)
}

// VictoryEnv is the expression environment a victory rule is evaluated
// against, from the perspective of the faction owning the rule.
type VictoryEnv struct {
	GameTime     float64
	Planets      int
	OwnPlanets   int
	EnemyPlanets int
	PlanetShare  float64
	Credits      float64
	EnemyCredits float64
}

type victoryProgram struct {
	faction entity.Faction
	program *vm.Program
}

// ExprWinCondition evaluates per-faction victory rules written as boolean
// expressions, e.g. "PlanetShare >= 0.6 && Credits > 5000". Rules are checked
// in fixed faction order so evaluation stays deterministic.
type ExprWinCondition struct {
	programs []victoryProgram
}

// CompileVictoryRules compiles the configured rule sources. Returns nil when
// no rules are configured.
func CompileVictoryRules(rules map[string]string) (*ExprWinCondition, error) {
	if len(rules) == 0 {
		return nil, nil
	}
	cond := &ExprWinCondition{}
	for _, faction := range entity.HostileFactions {
		src, ok := rules[faction.String()]
		if !ok || src == "" {
			continue
		}
		program, err := expr.Compile(src, expr.Env(VictoryEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile victory rule for %s: %w", faction, err)
		}
		cond.programs = append(cond.programs, victoryProgram{faction: faction, program: program})
	}
	if len(cond.programs) == 0 {
		return nil, nil
	}
	return cond, nil
}

// CheckWinner evaluates each compiled rule against the current store.
func (c *ExprWinCondition) CheckWinner(store *entity.Store) (entity.Faction, bool) {
	sim, ok := store.Simulation()
	if !ok {
		return entity.Neutral, false
	}
	total := store.PlanetCount()
	if total == 0 {
		return entity.Neutral, false
	}
	for _, vp := range c.programs {
		own := len(store.PlanetsOf(vp.faction))
		enemyFaction := vp.faction.Opponent()
		env := VictoryEnv{
			GameTime:     sim.GameTime,
			Planets:      total,
			OwnPlanets:   own,
			EnemyPlanets: len(store.PlanetsOf(enemyFaction)),
			PlanetShare:  float64(own) / float64(total),
			Credits:      sim.Credits[vp.faction],
			EnemyCredits: sim.Credits[enemyFaction],
		}
		result, err := vm.Run(vp.program, env)
		if err != nil {
			continue
		}
		if won, ok := result.(bool); ok && won {
			return vp.faction, true
		}
	}
	return entity.Neutral, false
}
