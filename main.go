package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arena3d/config"
	"github.com/milk9111/arena3d/ecs"
	"github.com/milk9111/arena3d/ecs/system"
	"github.com/milk9111/arena3d/logging"
	"github.com/milk9111/arena3d/prefabs"
	"github.com/milk9111/arena3d/telemetry"
	"golang.org/x/sync/errgroup"
)

func main() {
	configDir := flag.String("config", ".", "directory holding arena3d.cfg.yaml")
	arenaName := flag.String("arena", "", "arena prefab to load (overrides config)")
	hotReload := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Current()
	if err != nil {
		log.Fatal(err)
	}
	if *arenaName != "" {
		cfg.Arena = *arenaName
	}
	cfg.HotReload = cfg.HotReload || *hotReload

	logger := logging.Setup(os.Stdout, cfg.LogLevel)
	prefabs.SetDir(cfg.PrefabDir)

	metrics, err := telemetry.New()
	if err != nil {
		log.Fatal(err)
	}

	arenaSpec, err := prefabs.LoadArenaSpec(cfg.Arena)
	if err != nil {
		log.Fatal(err)
	}
	playerSpec, err := prefabs.LoadPlayerSpec(cfg.Player)
	if err != nil {
		log.Fatal(err)
	}
	weaponSpec, err := prefabs.LoadWeaponSpec(cfg.Weapon)
	if err != nil {
		log.Fatal(err)
	}

	world := ecs.NewWorld()
	arena, err := prefabs.BuildArena(world, arenaSpec, logger)
	if err != nil {
		log.Fatal(err)
	}

	sim := system.New(system.Options{
		World:     world,
		Raycaster: arena.Physics,
		Spawn:     playerSpec.Spawn.Vec3(),
		SpawnYaw:  playerSpec.SpawnYaw,
		Motion:    playerSpec.Tuning(),
		Weapon:    weaponSpec.Weapon(),
		FX:        weaponSpec.FX(),
		Pool:      weaponSpec.Pool(),
		Scripts:   prefabs.LoadScript,
		Metrics:   metrics,
		MaxDelta:  cfg.MaxFrameDelta,
		Logger:    logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	var changes <-chan prefabs.Change
	if cfg.HotReload {
		watcher, err := prefabs.NewWatcher(cfg.PrefabDir)
		if err != nil {
			logger.Warn("hot reload disabled", "dir", cfg.PrefabDir, "err", err)
		} else {
			changes = watcher.Changes
			g.Go(func() error { return watcher.Run(ctx) })
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(cfg, sim, arena, changes, logger)
	runErr := ebiten.RunGame(game)

	stop()
	if err := g.Wait(); err != nil {
		logger.Error("prefab watcher failed", "err", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
