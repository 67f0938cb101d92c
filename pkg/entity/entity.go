// Package entity defines the strategic-layer components: planets, fleets,
// ground forces, pending battles, and the simulation-state singleton. All
// relationships between entities are held as opaque IDs and resolved through
// the Store; nothing in this package owns a pointer to another entity.
package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ID identifies an entity. IDs come from ecs.BasicEntity and are never zero,
// so None is safe as the "no entity" sentinel for nullable references.
type ID uint64

// None is the sentinel for an absent entity reference (idle destination,
// in-transit location, missing battle participant).
const None ID = 0

// Faction is the unit of ownership for planets, fleets, and ground forces.
// The numeric values are load-bearing: faction commander RNG seeds are
// derived from them.
type Faction int

const (
	Neutral Faction = iota
	Rebel
	Empire
)

// HostileFactions lists the two factions that can fight each other, in a
// fixed order used wherever deterministic iteration matters.
var HostileFactions = []Faction{Rebel, Empire}

func (f Faction) String() string {
	switch f {
	case Neutral:
		return "Neutral"
	case Rebel:
		return "Rebel"
	case Empire:
		return "Empire"
	default:
		return fmt.Sprintf("Faction(%d)", int(f))
	}
}

// ParseFaction converts a faction name (case-insensitive) to its value.
func ParseFaction(name string) (Faction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neutral", "":
		return Neutral, nil
	case "rebel":
		return Rebel, nil
	case "empire":
		return Empire, nil
	default:
		return Neutral, fmt.Errorf("unknown faction %q", name)
	}
}

// Opponent returns the opposing hostile faction, or Neutral for Neutral.
func (f Faction) Opponent() Faction {
	switch f {
	case Rebel:
		return Empire
	case Empire:
		return Rebel
	default:
		return Neutral
	}
}

// MarshalJSON encodes factions by name so configuration files stay readable.
func (f Faction) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts a faction name.
func (f *Faction) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseFaction(name)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
