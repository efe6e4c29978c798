package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"raycaster/internal/config"
	"raycaster/internal/logging"
	"raycaster/internal/metrics"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		logging.Log.WithError(err).Error("raycaster stopped")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPathFlag)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	applyFlagOverrides(flag.CommandLine, cfg)
	if err := logging.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logging.NewRun()
	log := logging.For("main")

	grid, err := buildMap(cfg.Map)
	if err != nil {
		return err
	}
	if *saveMapFlag != "" {
		if err := saveMap(grid, *saveMapFlag, cfg.Map.Encoding); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var fm *metrics.FrameMetrics
	if addr := cfg.Metrics.GetAddr(); addr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		fm = metrics.NewFrameMetrics(reg)
		metrics.Serve(ctx, addr, reg)
	}

	s := newSession(cfg, grid, fm)
	log.WithField("renderer", cfg.Render.Backend).
		WithField("columns", s.sampler.Columns).
		WithField("start", fmt.Sprintf("%d,%d", grid.Start().X, grid.Start().Y)).
		Info("starting")

	if cfg.Render.Backend == "term" {
		return runTerminal(ctx, cfg, s)
	}

	g := newGame(cfg, s)
	if *recordDefaultPGO {
		stopProfile, err := startDefaultPGORecording(pgoProfilePath)
		if err != nil {
			return fmt.Errorf("pgo: %w", err)
		}
		defer stopProfile()
		g.enableAutoWalk(pgoRecordDuration)
		time.AfterFunc(pgoRecordDuration, func() {
			stopProfile()
			log.WithField("file", pgoProfilePath).Info("PGO profile written")
		})
	}
	go func() {
		<-ctx.Done()
		g.requestQuit()
	}()

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("Ray Caster")
	ebiten.SetTPS(cfg.Render.TPS)
	return ebiten.RunGame(g)
}
