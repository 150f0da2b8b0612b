package analytics

import (
	"github.com/omarshaarawi/sleeperstats/internal/models"
	"github.com/shopspring/decimal"
)

func starterSet(m models.Matchup) playerSet {
	s := make(playerSet, len(m.Starters))
	for _, id := range m.Starters {
		s[id] = struct{}{}
	}
	return s
}

// StartingPointsByPosition sums the recorded points of starters in ids.
// Starters with no recorded value contribute nothing.
func StartingPointsByPosition(m models.Matchup, ids map[string]struct{}) float64 {
	return startingPoints(m, ids).InexactFloat64()
}

func startingPoints(m models.Matchup, ids playerSet) decimal.Decimal {
	starters := starterSet(m)
	total := decimal.Zero
	for id, pts := range m.PlayersPoints {
		if starters.has(id) && ids.has(id) {
			total = total.Add(decimal.NewFromFloat(pts))
		}
	}
	return total
}

// ValidMatchupsForRoster keeps the played matchups (points > 0) of one roster.
func ValidMatchupsForRoster(matchups []models.Matchup, rosterID int) []models.Matchup {
	var out []models.Matchup
	for _, m := range matchups {
		if m.RosterID == rosterID && m.Points > 0 {
			out = append(out, m)
		}
	}
	return out
}

// HasDonut reports whether any starter has a recorded score of exactly zero.
func HasDonut(m models.Matchup) bool {
	starters := starterSet(m)
	for id, pts := range m.PlayersPoints {
		if pts == 0 && starters.has(id) {
			return true
		}
	}
	return false
}
