package analytics

import (
	"github.com/omarshaarawi/sleeperstats/internal/models"
)

// PlayerSeason summarizes one catalog player: peak and donuts as a starter,
// number of played starts and the user whose roster lists them.
func PlayerSeason(idx *Index, matchups []models.Matchup, playerID string) (models.PlayerSeason, error) {
	player, ok := idx.Player(playerID)
	if !ok {
		return models.PlayerSeason{}, notFound("player", playerID)
	}

	season := models.PlayerSeason{
		Starter: models.Starter{
			Name:     player.Name(),
			PlayerID: playerID,
			Position: player.Position,
		},
		Found: true,
	}

	var p peak
	for _, m := range matchups {
		if m.Points <= 0 || !starterSet(m).has(playerID) {
			continue
		}
		pts, ok := m.PlayersPoints[playerID]
		if !ok {
			continue
		}
		season.Starts++
		if pts == 0 {
			p.donuts++
		}
		if !p.scored || pts > p.max {
			p.max = pts
			p.scored = true
		}
	}
	season.NumDonuts = p.donuts
	season.MaxMatchupPoints = p.max

	if owner, ok := idx.OwnerOf(playerID); ok {
		season.RosteredBy = owner.DisplayName
	}
	return season, nil
}
