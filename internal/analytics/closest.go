package analytics

import (
	"fmt"

	"github.com/omarshaarawi/sleeperstats/internal/models"
	"github.com/shopspring/decimal"
)

type pairKey struct {
	league  string
	week    int
	matchup int
}

func keyOf(m models.Matchup) pairKey {
	return pairKey{league: m.LeagueID, week: m.Week, matchup: m.MatchupID}
}

type pairIndex map[pairKey][]models.Matchup

func newPairIndex(matchups []models.Matchup) pairIndex {
	pi := make(pairIndex)
	for _, m := range matchups {
		k := keyOf(m)
		pi[k] = append(pi[k], m)
	}
	return pi
}

func (pi pairIndex) other(m models.Matchup) (models.Matchup, error) {
	var found []models.Matchup
	for _, c := range pi[keyOf(m)] {
		if c.RosterID != m.RosterID {
			found = append(found, c)
		}
	}
	switch len(found) {
	case 0:
		return models.Matchup{}, notFound("opponent for matchup",
			fmt.Sprintf("league=%s week=%d matchup=%d roster=%d", m.LeagueID, m.Week, m.MatchupID, m.RosterID))
	case 1:
		return found[0], nil
	default:
		return models.Matchup{}, fmt.Errorf("%w: matchup %d in week %d has %d opposing sides",
			ErrDataIntegrity, m.MatchupID, m.Week, len(found))
	}
}

// PairMatchup finds the opposing side of m: same league, week and matchup id,
// different roster. Exactly one must exist.
func PairMatchup(matchups []models.Matchup, m models.Matchup) (models.Matchup, error) {
	return newPairIndex(matchups).other(m)
}

// CloseMatchups finds the single closest loss and counts close games per user.
// A record with matchup id 0 has no opponent and a record with zero points was
// not played; both are skipped.
//
// By default a close game is counted for the owner of every record iterated,
// so both sides of one close game get a tally. With StrictLoserAttribution
// only the side that scored fewer points is counted.
func CloseMatchups(idx *Index, matchups []models.Matchup, opts Options) (models.ClosestLoss, []models.CloseLossCount, error) {
	pairs := newPairIndex(matchups)
	threshold := decimal.NewFromFloat(opts.CloseLossThreshold)

	var closest models.ClosestLoss
	var minMargin decimal.Decimal
	var closestLoser models.Matchup
	counts := make(map[string]int)

	for _, m := range matchups {
		if m.MatchupID == 0 || m.Points == 0 {
			continue
		}
		other, err := pairs.other(m)
		if err != nil {
			return models.ClosestLoss{}, nil, err
		}

		margin := decimal.NewFromFloat(m.Points).Sub(decimal.NewFromFloat(other.Points)).Abs()
		lost := m.Points < other.Points
		loser := other
		if lost {
			loser = m
		}

		if !closest.Found || margin.LessThan(minMargin) {
			closest.Found = true
			minMargin = margin
			closestLoser = loser
		}

		if margin.LessThan(threshold) && (lost || !opts.StrictLoserAttribution) {
			user, err := idx.UserForMatchup(m)
			if err != nil {
				return models.ClosestLoss{}, nil, err
			}
			counts[user.UserID]++
		}
	}

	if closest.Found {
		user, err := idx.UserForMatchup(closestLoser)
		if err != nil {
			return models.ClosestLoss{}, nil, err
		}
		closest.Margin = minMargin.InexactFloat64()
		closest.Loser = user.DisplayName
		closest.Week = closestLoser.Week
	}

	tallies := make([]models.CloseLossCount, 0, len(idx.Users()))
	for _, u := range idx.Users() {
		tallies = append(tallies, models.CloseLossCount{Name: u.DisplayName, Count: counts[u.UserID]})
	}
	return closest, tallies, nil
}
