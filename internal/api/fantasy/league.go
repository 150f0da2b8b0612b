package fantasy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/omarshaarawi/sleeperstats/internal/config"
	"github.com/omarshaarawi/sleeperstats/internal/metrics"
	"github.com/omarshaarawi/sleeperstats/internal/models"
)

// Source is the subset of the Sleeper API the loader reads from.
type Source interface {
	GetPlayers(ctx context.Context) (map[string]models.Player, error)
	GetRosters(ctx context.Context, leagueID string) ([]models.Roster, error)
	GetUsers(ctx context.Context, leagueID string) ([]models.User, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]models.Matchup, error)
	GetTransactions(ctx context.Context, leagueID string, round int) ([]models.Transaction, error)
}

// API assembles a season snapshot from one or more Sleeper leagues, usually
// the same league carried across seasons.
type API struct {
	source Source
	cfg    config.Sleeper
}

func NewAPI(source Source, cfg config.Sleeper) *API {
	return &API{source: source, cfg: cfg}
}

func (a *API) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	players, err := a.source.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}

	users, err := a.source.GetUsers(ctx, a.cfg.UsersLeagueID)
	if err != nil {
		return nil, err
	}

	snap := &models.Snapshot{
		Players:       players,
		Users:         users,
		LastUpdated:   time.Now(),
		UsersLeagueID: a.cfg.UsersLeagueID,
	}

	rosterSeen := make(map[rosterKey]struct{})
	matchupSeen := make(map[matchupKey]struct{})
	txSeen := make(map[string]struct{})

	for _, leagueID := range a.cfg.LeagueIDs {
		rosters, err := a.source.GetRosters(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		for _, r := range rosters {
			k := rosterKey{leagueID, r.RosterID}
			if _, ok := rosterSeen[k]; ok {
				continue
			}
			rosterSeen[k] = struct{}{}
			r.LeagueID = leagueID
			snap.Rosters = append(snap.Rosters, r)
		}

		for week := 1; week <= a.cfg.MaxWeek; week++ {
			matchups, err := a.source.GetMatchups(ctx, leagueID, week)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				slog.Warn("Skipping matchup week", "league", leagueID, "week", week, "error", err)
				continue
			}
			for _, m := range matchups {
				k := matchupKey{m.LeagueID, m.Week, m.RosterID}
				if _, ok := matchupSeen[k]; ok {
					continue
				}
				matchupSeen[k] = struct{}{}
				snap.Matchups = append(snap.Matchups, m)
			}
		}

		for round := 1; round <= a.cfg.MaxRound; round++ {
			txs, err := a.source.GetTransactions(ctx, leagueID, round)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				slog.Warn("Skipping transaction round", "league", leagueID, "round", round, "error", err)
				continue
			}
			for _, t := range txs {
				if t.TransactionID != "" {
					if _, ok := txSeen[t.TransactionID]; ok {
						continue
					}
					txSeen[t.TransactionID] = struct{}{}
				}
				snap.Transactions = append(snap.Transactions, t)
			}
		}
	}

	if len(snap.Rosters) == 0 {
		return nil, fmt.Errorf("no rosters found for leagues %v", a.cfg.LeagueIDs)
	}

	metrics.SnapshotLoads.Inc()
	metrics.SnapshotRecords.WithLabelValues("players").Set(float64(len(snap.Players)))
	metrics.SnapshotRecords.WithLabelValues("rosters").Set(float64(len(snap.Rosters)))
	metrics.SnapshotRecords.WithLabelValues("users").Set(float64(len(snap.Users)))
	metrics.SnapshotRecords.WithLabelValues("matchups").Set(float64(len(snap.Matchups)))
	metrics.SnapshotRecords.WithLabelValues("transactions").Set(float64(len(snap.Transactions)))

	slog.Info("Loaded league snapshot",
		"leagues", len(a.cfg.LeagueIDs),
		"players", len(snap.Players),
		"rosters", len(snap.Rosters),
		"matchups", len(snap.Matchups),
		"transactions", len(snap.Transactions))
	return snap, nil
}

type rosterKey struct {
	leagueID string
	rosterID int
}

type matchupKey struct {
	leagueID string
	week     int
	rosterID int
}
