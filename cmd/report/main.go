package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/sleeperstats/internal/api/fantasy"
	"github.com/omarshaarawi/sleeperstats/internal/api/sleeper"
	"github.com/omarshaarawi/sleeperstats/internal/config"
	"github.com/omarshaarawi/sleeperstats/internal/repository/file"
	"github.com/omarshaarawi/sleeperstats/internal/repository/memory"
	"github.com/omarshaarawi/sleeperstats/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running report", "error", err)
		os.Exit(1)
	}
}

func run() error {
	only := flag.String("only", "", "print a single report: matchups, trades or waivers")
	player := flag.String("player", "", "print the season line for a player instead")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cache := file.NewRepository(cfg.Sleeper.CacheDir)
	loader := fantasy.NewAPI(sleeper.NewAPI(sleeper.NewClient(cache, cfg.Sleeper.Refresh)), cfg.Sleeper)
	svc := service.NewStatsService(loader, memory.NewRepository(), cfg.Analytics.Options())

	if *player != "" {
		text, err := svc.GetPlayerReport(ctx, *player)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	reports := []struct {
		name string
		get  func(context.Context) (string, error)
	}{
		{"matchups", svc.GetMatchupReport},
		{"trades", svc.GetTradeReport},
		{"waivers", svc.GetWaiverReport},
	}

	printed := false
	for _, r := range reports {
		if *only != "" && *only != r.name {
			continue
		}
		text, err := r.get(ctx)
		if err != nil {
			return fmt.Errorf("%s report: %w", r.name, err)
		}
		fmt.Println(text)
		printed = true
	}
	if !printed {
		return fmt.Errorf("unknown report %q", *only)
	}
	return nil
}
