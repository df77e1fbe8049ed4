package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"galaxycheck/internal/config"
	"galaxycheck/internal/jobs"
	"galaxycheck/internal/lookup"
	"galaxycheck/internal/metrics"
	"galaxycheck/internal/server"
	"galaxycheck/internal/vechain"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	cfg.ApplyNetwork(yamlCfg)
	log.Printf("Querying contract %s via %s", cfg.Contract, cfg.CallURL)

	client := vechain.NewClient(cfg.CallURL, cfg.Contract, vechain.WithTimeout(cfg.LookupTimeout))
	recorder := metrics.Prometheus{}

	// One lookup list per browser session
	registry := lookup.NewRegistry(cfg.SessionTTL, func() *lookup.Controller {
		return lookup.NewController(client,
			lookup.WithContext(ctx),
			lookup.WithTimeout(cfg.LookupTimeout),
			lookup.WithRecorder(recorder),
		)
	})
	registry.Start()
	defer registry.Stop()

	// Upstream probe backs /readyz
	upstream := jobs.NewUpstreamChecker(client, cfg.HealthCheckToken, cfg.HealthCheckInterval, cfg.LookupTimeout)
	go upstream.Start(ctx)

	srv := server.New(cfg)
	srv.RegisterRoutes(registry, client, recorder, upstream)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
