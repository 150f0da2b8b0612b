package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/omarshaarawi/sleeperstats/internal/analytics"
	"github.com/omarshaarawi/sleeperstats/internal/metrics"
	"github.com/omarshaarawi/sleeperstats/internal/models"
	"github.com/omarshaarawi/sleeperstats/internal/repository/memory"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const snapshotMaxAge = 24 * time.Hour

type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context) (*models.Snapshot, error)
}

type StatsService struct {
	loader  SnapshotLoader
	repo    *memory.Repository
	opts    analytics.Options
	printer *message.Printer
	loadMu  sync.Mutex
}

func NewStatsService(loader SnapshotLoader, repo *memory.Repository, opts analytics.Options) *StatsService {
	return &StatsService{
		loader:  loader,
		repo:    repo,
		opts:    opts,
		printer: message.NewPrinter(language.English),
	}
}

func (s *StatsService) getSnapshot(ctx context.Context) (*models.Snapshot, error) {
	if !s.repo.Stale(snapshotMaxAge) {
		return s.repo.GetSnapshot(), nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if !s.repo.Stale(snapshotMaxAge) {
		return s.repo.GetSnapshot(), nil
	}
	return s.reload(ctx)
}

// Refresh reloads the snapshot regardless of its age.
func (s *StatsService) Refresh(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	_, err := s.reload(ctx)
	return err
}

func (s *StatsService) reload(ctx context.Context) (*models.Snapshot, error) {
	snap, err := s.loader.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	s.repo.SaveSnapshot(snap)
	return snap, nil
}

func (s *StatsService) MatchupReport(ctx context.Context) (report models.MatchupReport, err error) {
	defer func(start time.Time) { metrics.ObserveReport("matchups", start, err) }(time.Now())

	snap, err := s.getSnapshot(ctx)
	if err != nil {
		return report, err
	}
	return analytics.CalcMatchups(snap, s.opts)
}

func (s *StatsService) TradeReport(ctx context.Context) (report models.TradeReport, err error) {
	defer func(start time.Time) { metrics.ObserveReport("trades", start, err) }(time.Now())

	snap, err := s.getSnapshot(ctx)
	if err != nil {
		return report, err
	}
	return analytics.CalcTrades(snap, s.opts)
}

func (s *StatsService) WaiverReport(ctx context.Context) (report models.WaiverReport, err error) {
	defer func(start time.Time) { metrics.ObserveReport("waivers", start, err) }(time.Now())

	snap, err := s.getSnapshot(ctx)
	if err != nil {
		return report, err
	}
	return analytics.CalcWaivers(snap, s.opts)
}

// PlayerLookup finds the catalog player closest to name and summarizes their
// season. Found is false when nothing is similar enough.
func (s *StatsService) PlayerLookup(ctx context.Context, name string) (season models.PlayerSeason, err error) {
	defer func(start time.Time) { metrics.ObserveReport("player", start, err) }(time.Now())

	snap, err := s.getSnapshot(ctx)
	if err != nil {
		return season, err
	}

	id, ok := bestPlayerMatch(snap.Players, name)
	if !ok {
		slog.Info("No player match", "query", name)
		return models.PlayerSeason{Query: name}, nil
	}

	season, err = analytics.PlayerSeason(analytics.NewIndex(snap), snap.Matchups, id)
	if err != nil {
		return season, err
	}
	season.Query = name
	return season, nil
}
