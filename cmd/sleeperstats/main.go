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

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/sleeperstats/internal/api/fantasy"
	"github.com/omarshaarawi/sleeperstats/internal/api/sleeper"
	"github.com/omarshaarawi/sleeperstats/internal/bot"
	"github.com/omarshaarawi/sleeperstats/internal/config"
	"github.com/omarshaarawi/sleeperstats/internal/mcptools"
	"github.com/omarshaarawi/sleeperstats/internal/repository/file"
	"github.com/omarshaarawi/sleeperstats/internal/repository/memory"
	"github.com/omarshaarawi/sleeperstats/internal/scheduler"
	"github.com/omarshaarawi/sleeperstats/internal/service"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	cache := file.NewRepository(cfg.Sleeper.CacheDir)
	sleeperAPI := sleeper.NewAPI(sleeper.NewClient(cache, cfg.Sleeper.Refresh))
	fantasyAPI := fantasy.NewAPI(sleeperAPI, cfg.Sleeper)

	statsService := service.NewStatsService(fantasyAPI, memory.NewRepository(), cfg.Analytics.Options())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TelegramBot.Enabled() {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, statsService)
		if err != nil {
			return err
		}

		sched, err := scheduler.NewScheduler(statsService, telegramBot.SendMessage, cfg.Server.ReportSchedule, cfg.Server.Timezone)
		if err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}
		defer func() {
			if err := sched.Stop(); err != nil {
				slog.Error("Error stopping scheduler", "error", err)
			}
		}()

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	} else {
		slog.Info("TELEGRAM_TOKEN not set, running without bot and scheduler")
	}

	srv := &http.Server{
		Addr:        cfg.Server.Addr,
		Handler:     newRouter(statsService, mcptools.NewServer(statsService, version)),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
