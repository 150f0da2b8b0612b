package analytics

import (
	"fmt"

	"github.com/omarshaarawi/sleeperstats/internal/models"
	"github.com/shopspring/decimal"
)

// PositionalPoints builds one Metric per user from that user's played matchups.
func PositionalPoints(idx *Index, matchups []models.Matchup) ([]models.Metric, error) {
	metrics := make([]models.Metric, 0, len(idx.Users()))
	for _, user := range idx.Users() {
		roster, err := idx.RosterForUser(user.UserID)
		if err != nil {
			return nil, fmt.Errorf("positional points for %s: %w", user.DisplayName, err)
		}
		metrics = append(metrics, userMetric(idx, user, ValidMatchupsForRoster(matchups, roster.RosterID)))
	}
	return metrics, nil
}

func userMetric(idx *Index, user models.User, played []models.Matchup) models.Metric {
	var rb, wr, te, qb, total decimal.Decimal
	donuts := 0

	for _, m := range played {
		rb = rb.Add(startingPoints(m, idx.positionSet(models.PositionRB)))
		wr = wr.Add(startingPoints(m, idx.positionSet(models.PositionWR)))
		te = te.Add(startingPoints(m, idx.positionSet(models.PositionTE)))
		qb = qb.Add(startingPoints(m, idx.positionSet(models.PositionQB)))
		total = total.Add(decimal.NewFromFloat(m.Points))
		if HasDonut(m) {
			donuts++
		}
	}

	return models.Metric{
		Name:        user.DisplayName,
		RBPoints:    rb.InexactFloat64(),
		WRPoints:    wr.InexactFloat64(),
		TEPoints:    te.InexactFloat64(),
		QBPoints:    qb.InexactFloat64(),
		TotalPoints: total.InexactFloat64(),
		NumDonuts:   donuts,
	}
}

var leaderCategories = []struct {
	name  string
	value func(models.Metric) float64
}{
	{"Most RB Points", func(m models.Metric) float64 { return m.RBPoints }},
	{"Most WR Points", func(m models.Metric) float64 { return m.WRPoints }},
	{"Most TE Points", func(m models.Metric) float64 { return m.TEPoints }},
	{"Most QB Points", func(m models.Metric) float64 { return m.QBPoints }},
	{"Most Total Points", func(m models.Metric) float64 { return m.TotalPoints }},
	{"Most Donuts", func(m models.Metric) float64 { return float64(m.NumDonuts) }},
}

// SeasonLeaders picks the top user per category. On a tie the first user wins.
func SeasonLeaders(metrics []models.Metric) []models.SeasonLeader {
	if len(metrics) == 0 {
		return []models.SeasonLeader{}
	}

	leaders := make([]models.SeasonLeader, 0, len(leaderCategories))
	for _, c := range leaderCategories {
		top := TopN(metrics, 1, c.value)[0]
		leaders = append(leaders, models.SeasonLeader{
			Category: c.name,
			Name:     top.Name,
			Value:    c.value(top),
		})
	}
	return leaders
}
