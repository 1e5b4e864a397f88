// Package main runs the auto-collector against a farm loaded from YAML, either
// for a fixed number of days or on a wall-clock day interval until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/autocollect/internal/catalog"
	"github.com/cory-johannsen/autocollect/internal/collect"
	"github.com/cory-johannsen/autocollect/internal/config"
	"github.com/cory-johannsen/autocollect/internal/daycycle"
	"github.com/cory-johannsen/autocollect/internal/farm"
	"github.com/cory-johannsen/autocollect/internal/observability"
	"github.com/cory-johannsen/autocollect/internal/world"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	days := flag.Int("days", 0, "simulate this many days and exit; 0 runs until interrupted")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	a, err := newApp(cfg, logger)
	if err != nil {
		logger.Fatal("building collector", zap.Error(err))
	}
	logger.Info("auto-collector initialized",
		zap.Int("enclosures", len(a.farm.Enclosures())),
		zap.Bool("enabled", cfg.Collector.Enabled),
		zap.Duration("startup", time.Since(start)),
	)

	if *days > 0 {
		a.simulate(*days)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := a.cycle.Run(ctx, cfg.Simulation.DayInterval); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("day cycle stopped", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("shutdown complete", zap.Int("last_day", a.cycle.Day()))
}

// app bundles the wired collector with the world it operates on.
type app struct {
	farm      *farm.Farm
	collector *collect.Collector
	cycle     *daycycle.Cycle
	logger    *zap.Logger
}

// newApp loads content and world state and wires every enclosure into a day cycle.
//
// Postcondition: Returns a ready app or a non-nil error.
func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	defs, err := catalog.LoadItems(cfg.Content.ItemsDir)
	if err != nil {
		return nil, err
	}
	reg, err := catalog.NewRegistryFrom(defs)
	if err != nil {
		return nil, err
	}
	rules, err := catalog.LoadRules(cfg.Content.RulesFile)
	if err != nil {
		return nil, err
	}
	if err := rules.CheckAgainst(reg); err != nil {
		// Unknown ids simply never match; the tables stay usable.
		logger.Warn("collection rules reference unknown items", zap.Error(err))
	}

	f, err := world.LoadFarmFromFile(cfg.Simulation.FarmFile, reg, cfg.Collector.ContainerCapacity)
	if err != nil {
		return nil, err
	}

	collector := collect.NewCollector(
		cfg.Collector,
		f,
		collect.NewClassifier(rules),
		collect.NewSynthesizer(reg),
		collect.NewLogNotifier(logger.Named("hud")),
		logger.Named("collector"),
	)

	cycle := daycycle.New(cfg.Simulation.StartDay)
	for _, enc := range f.Enclosures() {
		enc := enc
		cycle.Register(enc.ID, func(day int) {
			collector.OnEnclosureDayElapsed(enc, day)
		})
	}

	return &app{farm: f, collector: collector, cycle: cycle, logger: logger}, nil
}

// simulate advances the day cycle n times.
func (a *app) simulate(n int) {
	for i := 0; i < n; i++ {
		day := a.cycle.Advance()
		a.logger.Debug("day elapsed", zap.Int("day", day))
	}
}
