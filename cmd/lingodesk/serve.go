package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nadzzz/lingodesk/internal/config"
	"github.com/nadzzz/lingodesk/internal/health"
	"github.com/nadzzz/lingodesk/internal/transport"
	grpctransport "github.com/nadzzz/lingodesk/internal/transport/grpc"
	httptransport "github.com/nadzzz/lingodesk/internal/transport/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the support router over HTTP and gRPC",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	closer := config.SetupLogging(cfg.Logging, os.Stdout)
	defer closer.Close()
	slog.Info("lingodesk starting", "version", version, "backend", cfg.LLM.Backend)

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	var transports []transport.Transport
	if cfg.Transports.GRPC.Enabled {
		transports = append(transports, grpctransport.New(cfg.Transports.GRPC.Port))
	}
	if cfg.Transports.HTTP.Enabled {
		transports = append(transports, httptransport.New(cfg.Transports.HTTP.Port))
	}
	if len(transports) == 0 {
		return errors.New("no transports enabled: enable at least one in config")
	}

	healthServer := health.New(cfg.Server.HealthPort, app.completer.Name(), version)
	go func() {
		if err := healthServer.ListenAndServe(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	var wg sync.WaitGroup
	for _, t := range transports {
		wg.Add(1)
		go func(t transport.Transport) {
			defer wg.Done()
			slog.Info("starting transport", "name", t.Name())
			if err := t.Listen(ctx, app.router.Handle); err != nil {
				slog.Error("transport failed", "name", t.Name(), "error", err)
			}
		}(t)
	}

	healthServer.SetReady(true)
	slog.Info("lingodesk ready", "transports", len(transports), "health_port", cfg.Server.HealthPort)

	<-ctx.Done()
	healthServer.SetReady(false)
	slog.Info("shutdown signal received, draining...")

	for _, t := range transports {
		if err := t.Close(); err != nil {
			slog.Error("transport close error", "name", t.Name(), "error", err)
		}
	}

	wg.Wait()
	slog.Info("lingodesk stopped")
	return nil
}
