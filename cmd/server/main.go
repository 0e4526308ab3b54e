package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/th3w1zard1/Andastra-sub005/internal/actions"
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/engine"
	"github.com/th3w1zard1/Andastra-sub005/internal/network"
	"github.com/th3w1zard1/Andastra-sub005/internal/server"
	"github.com/th3w1zard1/Andastra-sub005/internal/version"
	"github.com/th3w1zard1/Andastra-sub005/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var configPath string
	var port string
	flag.Int64Var(&seed, "seed", 0, "Simulation seed (0 for random)")
	flag.StringVar(&configPath, "config", "", "Path to YAML config")
	flag.StringVar(&port, "port", "", "Observer server port (overrides config)")
	flag.Parse()

	logger.Log.Info("Starting simulation core...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			logger.Log.Fatal("Failed to load config:", err)
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("Using seed: %d", cfg.Seed)
	}
	if port != "" {
		cfg.Port = port
	}
	if env := os.Getenv("SIM_PORT"); env != "" && port == "" {
		cfg.Port = env
	}

	// 2. Сборка демо-инстанса
	inst, err := engine.NewDemoInstance(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to assemble demo module:", err)
	}

	// 3. Рассылка кадров наблюдателям после каждого тика
	hub := network.NewBroadcaster()
	inst.OnTick = func(i *engine.Instance) {
		if hub.SubscriberCount() > 0 {
			hub.Broadcast(i.Snapshot())
		}
	}

	// Демонстрационный сценарий: герой вооружается, идет через арену
	// и атакует первого рейдера. Через 10 секунд дергает рычаг.
	inst.Enqueue("hero_1", actions.NewEquipItem("item_sword_1", domain.SlotNone, "demo"))
	inst.Enqueue("hero_1", actions.NewMoveToPoint(domain.Vector3{X: 30, Y: 30}, false, "demo"))
	inst.Enqueue("hero_1", actions.NewAttack("raider_1", "demo"))
	inst.Scheduler.Schedule(10.0, actions.NewUseObject("lever_1", "demo"), "hero_1")

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	loopStop := make(chan struct{})
	go inst.Run(cfg, loopStop)

	// 4. Запуск наблюдательного сервера
	srv := server.New(inst, hub, cfg.Port)
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	close(loopStop)
	logger.Log.Info("Done.")
}
