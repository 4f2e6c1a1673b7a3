// Command server runs the in-process CloudStore double on a local address,
// so the cloudstore CLI can be tried without the production functions:
//
//	server -addr :8080 &
//	cloudstore --auth-url http://localhost:8080/auth --data-url http://localhost:8080/data register
//
// State lives in memory and is lost on exit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/cloudstore/internal/logger"
	"github.com/iudanet/cloudstore/internal/testserver"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", "localhost:8080", "Listen address")
	secret := flag.String("secret", testserver.DefaultSecret, "Token signing key")
	tokenTTL := flag.Duration("token-ttl", testserver.DefaultTokenTTL, "Token lifetime")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", logger.FormatText, "Log format: text or json")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	log, err := logger.SetupDefault(os.Stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	handler := testserver.NewHandler(
		testserver.WithSecret(*secret),
		testserver.WithTokenTTL(*tokenTTL),
		testserver.WithLogger(log),
	)

	if err := serve(*addr, handler, log); err != nil {
		log.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func serve(addr string, handler http.Handler, log *slog.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("dev server starting",
			slog.String("auth_url", "http://"+addr+testserver.AuthPath),
			slog.String("data_url", "http://"+addr+testserver.DataPath),
			slog.String("health_url", "http://"+addr+testserver.HealthPath),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down dev server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("dev server stopped")
	return nil
}

func printVersion() {
	fmt.Printf("CloudStore Dev Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
