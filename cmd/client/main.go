package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/cloudstore/internal/client/api"
	"github.com/iudanet/cloudstore/internal/client/auth"
	"github.com/iudanet/cloudstore/internal/client/cli"
	"github.com/iudanet/cloudstore/internal/client/data"
	"github.com/iudanet/cloudstore/internal/client/iocli"
	"github.com/iudanet/cloudstore/internal/client/session"
	"github.com/iudanet/cloudstore/internal/client/storage"
	"github.com/iudanet/cloudstore/internal/client/storage/boltdb"
	"github.com/iudanet/cloudstore/internal/config"
	"github.com/iudanet/cloudstore/internal/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.Load(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		cli.PrintUsage(os.Stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	// Получаем команду
	if len(args) == 0 {
		cli.PrintUsage(os.Stderr)
		return 1
	}
	command := args[0]

	log, err := logger.SetupDefault(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage, если файл сессии не отключен
	var sessionStorage storage.SessionStorage
	if cfg.PersistSession() {
		boltStorage, err := boltdb.New(ctx, cfg.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
			return 1
		}
		defer func() {
			if err := boltStorage.Close(); err != nil {
				log.Error("failed to close database", slog.Any("error", err))
			}
		}()
		sessionStorage = boltStorage
	}

	holder, err := session.NewHolder(ctx, sessionStorage, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Создаем API клиент
	apiClient := api.NewClient(cfg.AuthURL, cfg.DataURL,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(log),
	)

	authService := auth.NewService(apiClient, holder, log)
	dataService := data.NewService(apiClient, holder, log)

	app := cli.New(iocli.NewStdio(), authService, dataService, cfg.ResolvePassword)

	// Выполняем команду
	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage(os.Stderr)
		}
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("CloudStore Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
