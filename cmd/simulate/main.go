// Command simulate runs a headless conquest session and prints the strategic
// status board as it advances.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/opd-ai/go-conquest/pkg/config"
	"github.com/opd-ai/go-conquest/pkg/engine"
	"github.com/opd-ai/go-conquest/pkg/entity"
	"github.com/opd-ai/go-conquest/pkg/event"
	"github.com/opd-ai/go-conquest/pkg/logging"
	"github.com/opd-ai/go-conquest/pkg/render"
)

func main() {
	configPath := flag.String("config", "", "galaxy config file (JSON), defaults built in")
	template := flag.String("template", "", "galaxy template name (core_worlds, outer_rim_skirmish)")
	ticks := flag.Int("ticks", 600, "number of simulation ticks to run")
	dt := flag.Float64("dt", 0.1, "seconds of simulated time per tick")
	report := flag.Int("report", 100, "print the status board every N ticks, 0 for final only")
	flag.Parse()

	logger := logging.NewLogger()
	ctx := logging.WithSessionID(context.Background(), logging.GenerateSessionID())

	if err := run(ctx, logger, *configPath, *template, *ticks, *dt, *report); err != nil {
		logger.Error(ctx, "simulation failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *logging.Logger, configPath, template string, ticks int, dt float64, report int) error {
	cfg, err := loadConfig(configPath, template)
	if err != nil {
		return err
	}

	envCfg, err := config.LoadConfigFromEnv()
	if err != nil {
		return logging.WrapError(err, "loading environment overrides")
	}
	envCfg.Apply(cfg)

	galaxy, err := engine.NewGalaxy(cfg)
	if err != nil {
		return err
	}

	galaxy.Bus().Subscribe(event.BattleResolved, func(e event.Event) {
		if be, ok := e.(*event.BattleEvent); ok {
			logger.Info(ctx, "battle resolved",
				"planet", be.PlanetID,
				"attacker", be.Attacker,
				"defender", be.Defender,
			)
		}
	})
	galaxy.Bus().Subscribe(event.VictoryDeclared, func(e event.Event) {
		if ve, ok := e.(*event.VictoryEvent); ok {
			logger.Info(ctx, "victory declared",
				"winner", ve.Winner,
				"planet_share", ve.PlanetShare,
			)
		}
	})

	view := render.NewTerminalView(os.Stdout)
	for i := 0; i < ticks; i++ {
		galaxy.Update(dt)
		if report > 0 && (i+1)%report == 0 {
			if err := view.Render(galaxy.Overview(), galaxy.PlanetStates(), galaxy.FleetStates()); err != nil {
				return err
			}
			fmt.Println()
		}
		if o := galaxy.Overview(); o.Phase != entity.PhasePlaying {
			break
		}
	}

	return view.Render(galaxy.Overview(), galaxy.PlanetStates(), galaxy.FleetStates())
}

func loadConfig(path, template string) (*config.GalaxyConfig, error) {
	if path != "" || template != "" {
		return config.LoadConfigWithTemplate(path, template)
	}
	return config.DefaultConfig(), nil
}
