package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"BaselExplorer/internal/api"
	"BaselExplorer/internal/config"
	"BaselExplorer/internal/logging"
	"BaselExplorer/internal/recorder"
	"BaselExplorer/internal/scheduler"
	"BaselExplorer/internal/session"
)

func newServeCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API for browser front ends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
}

func runServe(cfg *config.Config) error {
	if err := logging.Init(cfg.Log); err != nil {
		return codeError(3, "init logging: %s", err)
	}
	slog.Info("BaselExplorer starting", "version", version, "addr", cfg.Server.Addr)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			slog.Warn("init sqlite recorder failed, using noop", "err", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	sim := cfg.Simulation
	svc := session.NewService(session.NewRegistry(), cfg.Policy(), session.Defaults{
		InitialCapital: sim.InitialCapital,
		InitialAssets:  sim.InitialAssets,
		RWAFraction:    sim.RWAFraction,
		StartYear:      sim.StartYear,
		HorizonEndYear: sim.HorizonEndYear,
	}, rec, slog.Default())

	sched := scheduler.NewScheduler(svc, cfg.Sessions.IdleTTL)
	if err := sched.RegisterAll(cfg.Sessions.EvictCron); err != nil {
		return codeError(3, "register cron tasks: %s", err)
	}
	sched.Start()
	defer sched.Stop()

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	api.NewHandler(r, svc)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	slog.Info("BaselExplorer is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		slog.Info("shutdown signal received, stopping...")
	case err := <-errCh:
		if err != nil {
			return codeError(1, "http server: %s", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("http shutdown", "err", err)
	}
	slog.Info("BaselExplorer stopped")
	return nil
}
