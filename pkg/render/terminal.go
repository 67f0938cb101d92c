// Package render draws read-only session snapshots for terminal display.
// It consumes the engine's projections and never touches live entities.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/opd-ai/go-conquest/pkg/engine"
	"github.com/opd-ai/go-conquest/pkg/entity"
)

// View renders one strategic snapshot of a conquest session.
type View interface {
	Render(overview engine.Overview, planets []engine.PlanetState, fleets []engine.FleetState) error
}

// TerminalView writes a plain-text status board to a writer.
type TerminalView struct {
	out io.Writer
}

// NewTerminalView creates a terminal view on the given writer.
func NewTerminalView(out io.Writer) *TerminalView {
	return &TerminalView{out: out}
}

// Render writes the overview line, the planet table, and the fleet table.
func (v *TerminalView) Render(overview engine.Overview, planets []engine.PlanetState, fleets []engine.FleetState) error {
	header := fmt.Sprintf("t=%.1fs  phase=%s  rebel=%d empire=%d neutral=%d of %d planets",
		overview.GameTime, overview.Phase,
		overview.PlanetCounts[entity.Rebel],
		overview.PlanetCounts[entity.Empire],
		overview.PlanetCounts[entity.Neutral],
		overview.TotalPlanets,
	)
	if _, err := fmt.Fprintln(v.out, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(v.out, strings.Repeat("-", len(header))); err != nil {
		return err
	}

	w := tabwriter.NewWriter(v.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLANET\tFACTION\tGARRISON\tRESOURCES\tSTATUS")
	for _, p := range planets {
		fmt.Fprintf(w, "%s\t%s\t%.0f/%.0f\t%.0f\t%s\n",
			p.Name, p.ControllingFaction,
			p.Garrison, p.MaxGarrison,
			p.Resources, planetStatus(p),
		)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "FLEET\tFACTION\tSHIPS\tSTRENGTH\tSTATE")
	for _, f := range fleets {
		fmt.Fprintf(w, "%s\t%s\t%d/%d/%d\t%.0f\t%s\n",
			f.Name, f.Faction,
			f.Fighters, f.Capitals, f.Bombers,
			f.Strength, fleetStatus(f),
		)
	}
	return w.Flush()
}

func planetStatus(p engine.PlanetState) string {
	switch {
	case p.UnderAttack:
		return "contested (" + p.BattlePhase.String() + ")"
	case p.HomeWorld:
		return "homeworld"
	default:
		return "quiet"
	}
}

func fleetStatus(f engine.FleetState) string {
	if f.State == entity.FleetMoving {
		return fmt.Sprintf("%s (%.0f%%)", f.State, f.Progress*100)
	}
	return f.State.String()
}
