package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/target-inventory/internal/api"
	"github.com/donaldgifford/target-inventory/internal/config"
	"github.com/donaldgifford/target-inventory/internal/notify"
	"github.com/donaldgifford/target-inventory/internal/tracing"
	"github.com/donaldgifford/target-inventory/internal/tracker"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and watch scheduler",
		Long: "Serve the Target queries over HTTP. When watch items are configured the\n" +
			"stock tracker runs on watch.interval and its results are exposed under\n" +
			"/api/v1/watches.",
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	log := a.log

	shutdownTracing, err := tracing.Setup(cmd.Context(), a.cfg.Tracing, Version)
	if err != nil {
		return err
	}
	defer flushTracing(shutdownTracing, log)

	opts := []api.Option{
		api.WithLogger(log),
		api.WithVersion(Version),
		api.WithRateLimiter(a.limiter),
	}

	var sched *tracker.Scheduler
	if len(a.cfg.Watch.Items) > 0 {
		trk := tracker.New(a.target, newNotifier(&a.cfg.Notifications, log), a.cfg.Watch.Items,
			tracker.WithLogger(log), tracker.WithStagger(a.cfg.Watch.Stagger))
		sched, err = tracker.NewScheduler(trk, a.cfg.Watch.Interval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		opts = append(opts, api.WithWatchRunner(trk))
	}

	e, _ := api.NewServer(a.target, opts...)
	e.Server.ReadTimeout = a.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = a.cfg.Server.WriteTimeout

	addr := a.cfg.Server.Addr()
	log.Info("starting server", "addr", addr, "version", Version, "watches", len(a.cfg.Watch.Items))

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	if sched != nil {
		sched.Start()
		log.Info("watch scheduler started", "interval", a.cfg.Watch.Interval, "next_run", sched.NextRun())
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-ctx.Done():
			log.Warn("watch cycle still running at shutdown")
		}
	}

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newNotifier(cfg *config.NotificationsConfig, log *slog.Logger) notify.Notifier {
	if cfg.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Discord.WebhookURL)
	}
	return notify.NewNoOpNotifier(log)
}

func flushTracing(shutdown tracing.ShutdownFunc, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Warn("flushing traces", "error", err)
	}
}
