package analytics

import (
	"github.com/omarshaarawi/sleeperstats/internal/models"
)

type peak struct {
	donuts int
	max    float64
	scored bool
}

// StarterPeaks returns one Starter per catalog player, in catalog order, with
// the player's best single-matchup score as a starter and their donut count.
func StarterPeaks(idx *Index, matchups []models.Matchup) []models.Starter {
	peaks := make(map[string]*peak)
	for _, m := range matchups {
		if m.Points <= 0 {
			continue
		}
		for id := range starterSet(m) {
			pts, ok := m.PlayersPoints[id]
			if !ok {
				continue
			}
			p := peaks[id]
			if p == nil {
				p = &peak{}
				peaks[id] = p
			}
			if pts == 0 {
				p.donuts++
			}
			if !p.scored || pts > p.max {
				p.max = pts
				p.scored = true
			}
		}
	}

	starters := make([]models.Starter, 0, len(idx.PlayerIDs()))
	for _, id := range idx.PlayerIDs() {
		player, _ := idx.Player(id)
		s := models.Starter{
			Name:     player.Name(),
			PlayerID: id,
			Position: player.Position,
		}
		if p, ok := peaks[id]; ok {
			s.NumDonuts = p.donuts
			s.MaxMatchupPoints = p.max
		}
		starters = append(starters, s)
	}
	return starters
}

func peakPoints(s models.Starter) float64 { return s.MaxMatchupPoints }

func atPosition(pos models.Position) func(models.Starter) bool {
	return func(s models.Starter) bool { return s.Position == pos }
}

// PeakLeaderboards ranks starters. Positional boards are cut from the overall
// peak ranking, so they hold the best overall entries at that position.
func PeakLeaderboards(starters []models.Starter, n int) models.PeakBoards {
	return models.PeakBoards{
		MostDonuts: TopN(starters, n, func(s models.Starter) float64 {
			return float64(s.NumDonuts)
		}),
		HighestPeak: TopN(starters, n, peakPoints),
		PeakQB:      TopNWhere(starters, n, peakPoints, atPosition(models.PositionQB)),
		PeakWR:      TopNWhere(starters, n, peakPoints, atPosition(models.PositionWR)),
		PeakTE:      TopNWhere(starters, n, peakPoints, atPosition(models.PositionTE)),
		PeakRB:      TopNWhere(starters, n, peakPoints, atPosition(models.PositionRB)),
	}
}
