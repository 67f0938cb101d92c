package engine

import (
	"testing"

	"github.com/opd-ai/go-conquest/pkg/entity"
	"github.com/opd-ai/go-conquest/pkg/event"
)

func galaxyOf(factions ...entity.Faction) *entity.Store {
	store := newTestStore()
	for i, f := range factions {
		addPlanet(store, "P"+string(rune('A'+i)), f)
	}
	return store
}

func TestVictoryThresholdReached(t *testing.T) {
	store := galaxyOf(entity.Rebel, entity.Rebel, entity.Rebel, entity.Empire)

	bus := event.NewBus()
	var declared bool
	bus.Subscribe(event.VictoryDeclared, func(e event.Event) { declared = true })

	NewVictorySystem(store, bus, nil).Update(0.1)

	sim, _ := store.Simulation()
	if sim.Phase != entity.PhaseRebelVictory {
		t.Errorf("Phase = %v, want RebelVictory", sim.Phase)
	}
	if !declared {
		t.Error("expected VictoryDeclared event")
	}
	if sim.PlanetCounts[entity.Rebel] != 3 || sim.PlanetCounts[entity.Empire] != 1 {
		t.Errorf("PlanetCounts = %v", sim.PlanetCounts)
	}
}

func TestVictoryEmpireThreshold(t *testing.T) {
	store := galaxyOf(entity.Empire, entity.Empire, entity.Empire, entity.Rebel)

	NewVictorySystem(store, nil, nil).Update(0.1)

	sim, _ := store.Simulation()
	if sim.Phase != entity.PhaseEmpireVictory {
		t.Errorf("Phase = %v, want EmpireVictory", sim.Phase)
	}
}

func TestVictoryNotReached(t *testing.T) {
	// ceil(4 * 0.75) = 3, and nobody holds 3.
	store := galaxyOf(entity.Rebel, entity.Rebel, entity.Empire, entity.Neutral)

	NewVictorySystem(store, nil, nil).Update(0.1)

	sim, _ := store.Simulation()
	if sim.Phase != entity.PhasePlaying {
		t.Errorf("Phase = %v, want Playing", sim.Phase)
	}
}

func TestVictoryPhaseIsTerminal(t *testing.T) {
	store := galaxyOf(entity.Rebel, entity.Rebel, entity.Rebel, entity.Empire)
	sys := NewVictorySystem(store, nil, nil)
	sys.Update(0.1)

	// Flip the map after victory; the phase guard must hold.
	for _, p := range store.Planets() {
		p.ControllingFaction = entity.Empire
	}
	sys.Update(0.1)

	sim, _ := store.Simulation()
	if sim.Phase != entity.PhaseRebelVictory {
		t.Errorf("Phase = %v, want RebelVictory to stick", sim.Phase)
	}
}

func TestVictoryEmptyGalaxyNoWinner(t *testing.T) {
	store := newTestStore()

	NewVictorySystem(store, nil, nil).Update(0.1)

	sim, _ := store.Simulation()
	if sim.Phase != entity.PhasePlaying {
		t.Errorf("Phase = %v, want Playing with zero planets", sim.Phase)
	}
}

func TestVictoryCustomRuleCheckedFirst(t *testing.T) {
	// The Rebels hold the whole map, but the Empire's credit rule fires
	// before the planet-share threshold is considered.
	store := galaxyOf(entity.Rebel, entity.Rebel, entity.Rebel, entity.Rebel)
	sim, _ := store.Simulation()
	sim.Credits[entity.Empire] = 200

	custom, err := CompileVictoryRules(map[string]string{
		"Empire": "Credits > 100",
	})
	if err != nil {
		t.Fatalf("CompileVictoryRules: %v", err)
	}

	NewVictorySystem(store, nil, custom).Update(0.1)

	if sim.Phase != entity.PhaseEmpireVictory {
		t.Errorf("Phase = %v, want EmpireVictory from custom rule", sim.Phase)
	}
}

func TestVictoryCustomRuleEnvironment(t *testing.T) {
	store := galaxyOf(entity.Rebel, entity.Rebel, entity.Empire, entity.Neutral)
	sim, _ := store.Simulation()
	sim.GameTime = 30

	custom, err := CompileVictoryRules(map[string]string{
		"Rebel": "PlanetShare >= 0.5 && GameTime > 20 && EnemyPlanets < 2",
	})
	if err != nil {
		t.Fatalf("CompileVictoryRules: %v", err)
	}

	winner, won := custom.CheckWinner(store)
	if !won || winner != entity.Rebel {
		t.Errorf("CheckWinner = (%v, %v), want (Rebel, true)", winner, won)
	}
}

func TestCompileVictoryRules(t *testing.T) {
	tests := []struct {
		name    string
		rules   map[string]string
		wantNil bool
		wantErr bool
	}{
		{"empty map", nil, true, false},
		{"blank rule", map[string]string{"Rebel": ""}, true, false},
		{"valid rule", map[string]string{"Rebel": "PlanetShare > 0.5"}, false, false},
		{"syntax error", map[string]string{"Rebel": "PlanetShare >>"}, false, true},
		{"non-boolean", map[string]string{"Rebel": "PlanetShare + 1"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := CompileVictoryRules(tt.rules)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (cond == nil) != tt.wantNil {
				t.Errorf("cond nil = %v, want %v", cond == nil, tt.wantNil)
			}
		})
	}
}
