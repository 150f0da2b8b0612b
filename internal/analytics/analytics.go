// Package analytics computes season reports from a league snapshot. Every
// function here is pure: it reads the snapshot and returns new values.
package analytics

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/omarshaarawi/sleeperstats/internal/models"
)

type Options struct {
	CloseLossThreshold     float64
	BeanThreshold          int
	LeaderboardSize        int
	StrictLoserAttribution bool
}

func DefaultOptions() Options {
	return Options{
		CloseLossThreshold: 10,
		BeanThreshold:      1,
		LeaderboardSize:    10,
	}
}

func CalcMatchups(snap *models.Snapshot, opts Options) (models.MatchupReport, error) {
	idx := NewIndex(snap)

	metrics, err := PositionalPoints(idx, snap.Matchups)
	if err != nil {
		return models.MatchupReport{}, fmt.Errorf("calculating positional points: %w", err)
	}

	closest, closeLosses, err := CloseMatchups(idx, snap.Matchups, opts)
	if err != nil {
		return models.MatchupReport{}, fmt.Errorf("calculating close matchups: %w", err)
	}

	report := models.MatchupReport{
		Metrics:      metrics,
		Leaders:      SeasonLeaders(metrics),
		Peaks:        PeakLeaderboards(StarterPeaks(idx, snap.Matchups), opts.LeaderboardSize),
		ClosestLoss:  closest,
		CloseLosses:  closeLosses,
		Alliterative: AlliterativePlayers(snap.Players, snap.Matchups),
	}

	slog.Debug("Calculated matchups", "users", len(metrics), "matchups", len(snap.Matchups), "closest", closest.Margin)
	return report, nil
}

func CalcTrades(snap *models.Snapshot, opts Options) (models.TradeReport, error) {
	idx := NewIndex(snap)
	trades := FilterTransactions(snap.Transactions, models.StatusComplete, models.TypeTrade)

	users, err := TradeSummaries(idx, trades, opts.BeanThreshold)
	if err != nil {
		return models.TradeReport{}, fmt.Errorf("calculating trades: %w", err)
	}

	beans, err := BeanLedgers(idx, trades)
	if err != nil {
		return models.TradeReport{}, fmt.Errorf("calculating beans: %w", err)
	}

	n := opts.LeaderboardSize
	report := models.TradeReport{
		Users:        users,
		MostTraded:   MostTraded(idx, trades, n),
		MostDropped:  MostDropped(idx, snap.Transactions, n),
		MostTradedRB: MostTradedAt(idx, trades, models.PositionRB, n),
		MostTradedQB: MostTradedAt(idx, trades, models.PositionQB, n),
		Beans:        beans,
	}

	slog.Debug("Calculated trades", "trades", len(trades), "users", len(users))
	return report, nil
}

func CalcWaivers(snap *models.Snapshot, opts Options) (models.WaiverReport, error) {
	idx := NewIndex(snap)
	waivers := FilterTransactions(snap.Transactions, models.StatusComplete, models.TypeWaiver)

	users, err := WaiverSummaries(idx, waivers, opts.BeanThreshold)
	if err != nil {
		return models.WaiverReport{}, fmt.Errorf("calculating waivers: %w", err)
	}

	slog.Debug("Calculated waivers", "waivers", len(waivers), "users", len(users))
	return models.WaiverReport{Users: users}, nil
}

// AlliterativePlayers lists scoring players whose first and last names share
// an initial, sorted by name.
func AlliterativePlayers(players map[string]models.Player, matchups []models.Matchup) []string {
	scored := make(playerSet)
	for _, m := range matchups {
		for id := range m.PlayersPoints {
			scored[id] = struct{}{}
		}
	}

	names := []string{}
	for id, p := range players {
		if !scored.has(id) {
			continue
		}
		if sameInitial(p.FirstName, p.LastName) {
			names = append(names, p.Name())
		}
	}
	sort.Strings(names)
	return names
}

func sameInitial(a, b string) bool {
	ra, _ := utf8.DecodeRuneInString(strings.TrimSpace(a))
	rb, _ := utf8.DecodeRuneInString(strings.TrimSpace(b))
	if ra == utf8.RuneError || rb == utf8.RuneError {
		return false
	}
	return unicode.ToUpper(ra) == unicode.ToUpper(rb)
}
