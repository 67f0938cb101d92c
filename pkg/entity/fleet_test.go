package entity

import (
	"math"
	"testing"
)

func TestFleet_Strength_Formula(t *testing.T) {
	tests := []struct {
		name      string
		fighters  int
		capitals  int
		bombers   int
		veterancy float64
		want      float64
	}{
		{"green fleet", 10, 2, 4, 0, (10*10 + 2*50 + 4*15) * 0.8},
		{"veteran fleet", 10, 2, 4, 1.0, (10*10 + 2*50 + 4*15) * 1.2},
		{"half veterancy", 5, 0, 0, 0.5, 50 * 1.0},
		{"empty remnant", 0, 0, 0, 0.3, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFleet("test", Rebel, None, tc.fighters, tc.capitals, tc.bombers)
			f.Veterancy = tc.veterancy
			if got := f.Strength(); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Strength() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFleet_ApplyLosses_CapitalsSheltered(t *testing.T) {
	f := NewFleet("test", Empire, None, 100, 10, 20)
	f.ApplyLosses(0.8)

	if f.Fighters != 20 {
		t.Errorf("fighters after 80%% losses = %d, want 20", f.Fighters)
	}
	if f.Bombers != 4 {
		t.Errorf("bombers after 80%% losses = %d, want 4", f.Bombers)
	}
	// Capitals take half the loss percentage: 10 * (1 - 0.4) = 6.
	if f.Capitals != 6 {
		t.Errorf("capitals after 80%% losses = %d, want 6", f.Capitals)
	}
}

func TestFleet_ApplyLosses_VeterancyGainCapped(t *testing.T) {
	f := NewFleet("test", Rebel, None, 10, 0, 0)
	f.ApplyLosses(0.1)
	if math.Abs(f.Veterancy-0.05) > 1e-9 {
		t.Errorf("veterancy after one battle = %v, want 0.05", f.Veterancy)
	}

	f.Veterancy = 0.98
	f.ApplyLosses(0.1)
	if f.Veterancy != 1.0 {
		t.Errorf("veterancy not capped at 1.0, got %v", f.Veterancy)
	}
}

func TestFleet_ApplyLosses_FloorsAtZero(t *testing.T) {
	f := NewFleet("test", Rebel, None, 1, 1, 1)
	for i := 0; i < 10; i++ {
		f.ApplyLosses(0.8)
	}
	if f.Fighters < 0 || f.Capitals < 0 || f.Bombers < 0 {
		t.Errorf("composition went negative: %d/%d/%d", f.Fighters, f.Capitals, f.Bombers)
	}
	if f.Fighters != 0 || f.Bombers != 0 {
		t.Errorf("fighters/bombers = %d/%d, want 0/0 after repeated routs", f.Fighters, f.Bombers)
	}
	// The sheltered capital takes round(1 * (1 - 0.4)) = 1 every round, so a
	// lone capital ship persists as a remnant and the fleet keeps strength.
	if f.Capitals != 1 {
		t.Errorf("capitals = %d, want the remnant capital to survive", f.Capitals)
	}
	if f.Strength() <= 0 {
		t.Errorf("remnant fleet strength = %v, want > 0", f.Strength())
	}
}

func TestGroundForce_Strength_Formula(t *testing.T) {
	g := NewGroundForce("garrison", Empire, None, 10, 2, 3)
	want := (10*5.0 + 2*30.0 + 3*20.0) * 0.8
	if got := g.Strength(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Strength() = %v, want %v", got, want)
	}
}

func TestGroundForce_ApplyLosses_VehiclesSheltered(t *testing.T) {
	g := NewGroundForce("garrison", Rebel, None, 100, 10, 10)
	g.ApplyLosses(0.8)
	if g.Infantry != 20 || g.Artillery != 2 {
		t.Errorf("infantry/artillery = %d/%d, want 20/2", g.Infantry, g.Artillery)
	}
	if g.Vehicles != 6 {
		t.Errorf("vehicles = %d, want 6", g.Vehicles)
	}
}

func TestParseFaction(t *testing.T) {
	tests := []struct {
		in      string
		want    Faction
		wantErr bool
	}{
		{"Rebel", Rebel, false},
		{"empire", Empire, false},
		{"NEUTRAL", Neutral, false},
		{"", Neutral, false},
		{"sith", Neutral, true},
	}
	for _, tc := range tests {
		got, err := ParseFaction(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseFaction(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseFaction(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFaction_Opponent(t *testing.T) {
	if Rebel.Opponent() != Empire || Empire.Opponent() != Rebel {
		t.Error("hostile factions are not mutual opponents")
	}
	if Neutral.Opponent() != Neutral {
		t.Error("Neutral should have no opponent")
	}
}
