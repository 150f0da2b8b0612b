package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/sleeperstats/internal/bot"
)

type Scheduler struct {
	s           gocron.Scheduler
	reporter    bot.Reporter
	sendMessage func(string) error
	schedule    string
}

func NewScheduler(reporter bot.Reporter, sendMessage func(string) error, schedule, timezone string) (*Scheduler, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Error("Failed to load location, using UTC", "timezone", timezone, "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		reporter:    reporter,
		sendMessage: sendMessage,
		schedule:    schedule,
	}, nil
}

func (s *Scheduler) Start() error {
	// Refresh league data - daily 6:00
	_, err := s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(6, 0, 0))),
		gocron.NewTask(s.refresh),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh job: %w", err)
	}

	_, err = s.s.NewJob(
		gocron.CronJob(s.schedule, false),
		gocron.NewTask(s.sendReports),
	)
	if err != nil {
		return fmt.Errorf("failed to create report job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refresh() {
	if err := s.reporter.Refresh(context.Background()); err != nil {
		slog.Error("Failed to refresh league data", "error", err)
	}
}

// sendReports posts each season report. A failing report is logged and skipped.
func (s *Scheduler) sendReports() {
	ctx := context.Background()
	reports := []struct {
		name string
		get  func(context.Context) (string, error)
	}{
		{"matchups", s.reporter.GetMatchupReport},
		{"trades", s.reporter.GetTradeReport},
		{"waivers", s.reporter.GetWaiverReport},
	}

	for _, r := range reports {
		text, err := r.get(ctx)
		if err != nil {
			slog.Error("Failed to get report", "report", r.name, "error", err)
			continue
		}
		if err := s.sendMessage(text); err != nil {
			slog.Error("Failed to send report", "report", r.name, "error", err)
		}
	}
}
