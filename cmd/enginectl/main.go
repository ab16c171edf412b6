// Command enginectl is a demonstration harness wiring the engine core
// end to end: configuration, allocator, containers, diagnostics, logger,
// thread pool, and event/message bus, in a construct-run-shutdown shape.
//
// Run with: go run ./cmd/enginectl
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/KimMachineGun/automemlimit/memlimit"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/Noxagonal/Bitcrafte-Engine-sub002/config"
	"github.com/Noxagonal/Bitcrafte-Engine-sub002/container"
	"github.com/Noxagonal/Bitcrafte-Engine-sub002/diag"
	"github.com/Noxagonal/Bitcrafte-Engine-sub002/event"
	"github.com/Noxagonal/Bitcrafte-Engine-sub002/logger"
	"github.com/Noxagonal/Bitcrafte-Engine-sub002/messagebus"
	"github.com/Noxagonal/Bitcrafte-Engine-sub002/threadpool"
)

func main() {
	configPath := flag.String("config", "", "path to an engine.toml config file; defaults used if omitted")
	flag.Parse()

	if _, err := maxprocs.Set(); err != nil {
		fmt.Fprintf(os.Stderr, "enginectl: maxprocs.Set: %v\n", err)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "enginectl: config.Load: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log := logger.New(logger.LoggerCreateInfo{
		LogHistorySize: cfg.Logger.HistorySize,
		MinimumReportSeverity: severityFromName(cfg.Logger.MinimumReportSeverity, logger.Info),
		MinimumDisplaySeverity: severityFromName(cfg.Logger.MinimumDisplaySeverity, logger.Warning),
		Disabled: cfg.Logger.Disabled,
		PrintToSystemConsole: cfg.Logger.PrintToSystemConsole,
		Console: diag.NewConsoleSink(os.Stdout, 2),
	})

	log.LogText(logger.Info, "enginectl starting up")

	demoContainers(log)
	demoEventsAndMessageBus(log)
	demoThreadPool(log, cfg.ThreadPool.WorkerCount)

	log.LogText(logger.Info, "enginectl shutting down cleanly")
}

func severityFromName(name string, fallback logger.Severity) logger.Severity {
	switch name {
	case "":
		return fallback
	case "VERBOSE":
		return logger.Verbose
	case "DEBUG":
		return logger.Debug
	case "PERFORMANCE_WARNING":
		return logger.PerformanceWarning
	case "WARNING":
		return logger.Warning
	case "ERROR":
		return logger.Error
	case "CRITICAL_ERROR":
		return logger.CriticalError
	default:
		return logger.Info
	}
}

func demoContainers(log *logger.Logger) {
	list := container.NewList[int]()
	for i := 0; i < 5; i++ {
		list.PushBack(i * i)
	}
	log.LogText(logger.Verbose, fmt.Sprintf("container demo: squares list has %d entries", list.Len()))

	p := container.ParsePath("assets/textures/../models/hero.fbx")
	log.LogText(logger.Verbose, fmt.Sprintf("container demo: resolved path %q, extension %q", p.String(), p.GetExtension()))
}

func demoEventsAndMessageBus(log *logger.Logger) {
	bus := messagebus.New()
	bus.OnPacketSent.RegisterCallback(func(id messagebus.PacketID) {
		log.LogText(logger.Verbose, fmt.Sprintf("messagebus demo: packet %d sent", id))
	})

	type assetLoaded struct{ Name string }
	id := bus.SendPacket(assetLoaded{Name: "hero.fbx"})

	if packet, ok := messagebus.ClaimPacket[assetLoaded](bus, id); ok {
		log.LogText(logger.Info, fmt.Sprintf("messagebus demo: claimed asset %q", packet.Name))
	}

	shutdown := event.New[string]()
	shutdown.RegisterCallback(func(reason string) {
		log.LogText(logger.Info, "shutdown event observed: "+reason)
	})
	shutdown.Signal("demo complete")
}

func demoThreadPool(log *logger.Logger, workerCount int) {
	pool := threadpool.New()
	if _, err := pool.AddThreads(workerCount, threadpool.ThreadDescription{ThreadType: "general"}); err != nil {
		log.LogText(logger.Error, "thread pool demo: failed to add workers: "+err.Error())
		return
	}

	first, err := pool.Schedule(func() {
		log.LogText(logger.Verbose, "thread pool demo: first task ran")
	})
	if err != nil {
		log.LogText(logger.Error, "thread pool demo: failed to schedule first task: "+err.Error())
	}
	if _, err := pool.ScheduleTaskWithDependencies(func(ctx context.Context) (threadpool.TaskResult, *diag.Exception) {
		log.LogText(logger.Verbose, "thread pool demo: dependent task ran")
		return threadpool.TaskCompleted, nil
	}, first); err != nil {
		log.LogText(logger.Error, "thread pool demo: failed to schedule dependent task: "+err.Error())
	}

	if err := pool.Run(); err != nil {
		log.LogText(logger.Error, "thread pool demo: Run reported a failure: "+err.Error())
	}

	if err := pool.Shutdown(context.Background(), log); err != nil {
		log.LogText(logger.Error, "thread pool demo: Shutdown reported a failure: "+err.Error())
	}
}
