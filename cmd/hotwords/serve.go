package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"hotwords/internal/config"
	"hotwords/internal/handlers"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve extracted keywords over HTTP",
		Description: `Starts an HTTP API that keeps keyword extractions for all channels
		in a TTL cache and refreshes them periodically.

		Endpoints live under /api/v1: health, keywords, keywords/{channel},
		refresh and cache/stats. The refresh interval and cache TTL are set
		via UPDATE_INTERVAL_MINUTES and CACHE_DURATION_HOURS.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   "8080",
				Usage:   "port to listen on",
				EnvVars: []string{"PORT"},
			},
		},
		Action: serveAction,
	}
}

func serveAction(cliCtx *cli.Context) error {
	cfg := config.Load()
	cfg.Port = cliCtx.String("port")

	server := handlers.NewServer(cfg)
	defer server.Close()

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      server.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Periodic keyword refresh, initial run included
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.UpdateInterval) * time.Minute)
		defer ticker.Stop()

		server.Refresh(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				server.Refresh(ctx)
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("starting server on %s:%s", cfg.Host, cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	<-sigChan
	log.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown error: %v", err)
	}

	log.Info("server stopped")
	return nil
}
