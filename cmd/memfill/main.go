package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/memfill/internal/allocator"
	"github.com/MKhiriev/memfill/internal/app"
	"github.com/MKhiriev/memfill/internal/chunk"
	"github.com/MKhiriev/memfill/internal/config"
	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/internal/meminfo"
	"github.com/MKhiriev/memfill/internal/utils"
	"github.com/MKhiriev/memfill/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if chunk.IsChildInvocation(os.Args) {
		os.Exit(chunk.RunChild(os.Args[1:], os.Stdout, os.Stderr))
	}

	printBuildInfo()

	cfg, err := config.GetConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			config.PrintUsage(os.Stdout)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n\n", err)
		config.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	log := logger.NewLogger("memfill",
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
	).WithField("run_id", utils.NewRunID())

	log.Debug().Any("config", cfg).Msg("received configs")

	provider, err := meminfo.NewProvider(cfg.Memory.IgnoreCgroup, cfg.Memory.CgroupRoot, cfg.Memory.ProcRoot, os.Getpid())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating memory info provider")
	}

	spawner, err := chunk.NewProcessSpawner(chunk.SpawnerConfig{
		ReadyTimeout: cfg.Chunks.ReadyTimeout,
		FreeTimeout:  cfg.Chunks.FreeTimeout,
		LogLevel:     cfg.LogLevel.String(),
		LogFormat:    cfg.LogFormat,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating chunk spawner")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	pool := allocator.NewPool(spawner, log)
	alloc, err := allocator.New(ctx, cfg.Mode, provider, cfg.Size, pool, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating allocator")
	}

	controller, err := app.New(alloc, pool, provider, utils.NewOOMScoreAdjuster(), app.Settings{
		Duration:       cfg.Duration,
		UpdateInterval: cfg.Workers.UpdateInterval,
		ReportInterval: cfg.Workers.ReportInterval,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app")
	}

	if cfg.Server.StatusAddress != "" {
		if err = controller.ServeStatus(cfg.Server); err != nil {
			log.Fatal().Err(err).Msg("error starting status endpoint")
		}
	}

	if err = controller.Run(ctx); err != nil {
		log.Error().Err(err).Msg("memfill run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
