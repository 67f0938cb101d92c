package engine

import (
	"testing"

	"github.com/opd-ai/go-conquest/pkg/entity"
)

func TestReinforcementGrowth(t *testing.T) {
	store := newTestStore()
	p := addPlanet(store, "Mon Cala", entity.Rebel)
	p.Garrison = 10
	p.Industry = 1

	NewReinforcementSystem(store).Update(2.0)

	if !almostEqual(p.Garrison, 11.0) {
		t.Errorf("Garrison = %v, want 11.0", p.Garrison)
	}
}

func TestReinforcementMonotonic(t *testing.T) {
	store := newTestStore()
	p := addPlanet(store, "Mon Cala", entity.Rebel)
	p.Garrison = 10
	p.Industry = 0.5

	sys := NewReinforcementSystem(store)
	prev := p.Garrison
	for i := 0; i < 50; i++ {
		sys.Update(0.1)
		if p.Garrison < prev {
			t.Fatalf("garrison shrank: %v -> %v", prev, p.Garrison)
		}
		prev = p.Garrison
	}
}

func TestReinforcementClampsAtCap(t *testing.T) {
	store := newTestStore()
	p := addPlanet(store, "Mon Cala", entity.Rebel)
	p.Garrison = 99.9
	p.MaxGarrison = 100
	p.Industry = 1

	NewReinforcementSystem(store).Update(10.0)

	if p.Garrison != 100 {
		t.Errorf("Garrison = %v, want exactly 100", p.Garrison)
	}
}

func TestReinforcementFrozen(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *entity.Planet)
	}{
		{"contested planet", func(p *entity.Planet) { p.UnderAttack = true }},
		{"neutral planet", func(p *entity.Planet) { p.ControllingFaction = entity.Neutral }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore()
			p := addPlanet(store, "Mon Cala", entity.Rebel)
			p.Garrison = 10
			p.Industry = 1
			tt.setup(p)

			NewReinforcementSystem(store).Update(5.0)

			if p.Garrison != 10 {
				t.Errorf("Garrison = %v, want frozen at 10", p.Garrison)
			}
		})
	}
}
