package analytics

import (
	"math"

	"github.com/omarshaarawi/sleeperstats/internal/models"
)

func player(id, first, last string, pos models.Position) models.Player {
	return models.Player{PlayerID: id, FirstName: first, LastName: last, Position: pos}
}

func matchup(week, matchupID, rosterID int, points float64, starters []string, pts map[string]float64) models.Matchup {
	return models.Matchup{
		LeagueID:      "L1",
		Week:          week,
		MatchupID:     matchupID,
		RosterID:      rosterID,
		Points:        points,
		Starters:      starters,
		PlayersPoints: pts,
	}
}

// leagueSnapshot is a four team league with two played weeks and one unplayed week.
func leagueSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Players: map[string]models.Player{
			"0":   player("0", "", "", models.PositionNone),
			"100": player("100", "Patrick", "Mahomes", models.PositionQB),
			"101": player("101", "Josh", "Allen", models.PositionQB),
			"200": player("200", "Saquon", "Barkley", models.PositionRB),
			"201": player("201", "Bijan", "Robinson", models.PositionRB),
			"300": player("300", "Justin", "Jefferson", models.PositionWR),
			"301": player("301", "CeeDee", "Lamb", models.PositionWR),
			"400": player("400", "Travis", "Kelce", models.PositionTE),
			"401": player("401", "Sam", "LaPorta", models.PositionTE),
			"500": player("500", "Harrison", "Butker", models.PositionK),
		},
		Users: []models.User{
			{UserID: "u1", DisplayName: "alice"},
			{UserID: "u2", DisplayName: "bob"},
			{UserID: "u3", DisplayName: "carol"},
			{UserID: "u4", DisplayName: "dave"},
		},
		Rosters: []models.Roster{
			{RosterID: 1, OwnerID: "u1"},
			{RosterID: 2, OwnerID: "u2"},
			{RosterID: 3, OwnerID: "u3"},
			{RosterID: 4, OwnerID: "U4"},
		},
		Matchups: []models.Matchup{
			// week 1
			matchup(1, 1, 1, 100, []string{"100", "200", "300", "400", "500"},
				map[string]float64{"100": 20.5, "200": 30.25, "300": 0, "400": 10, "500": 8, "201": 15}),
			matchup(1, 1, 2, 95, []string{"101", "201"},
				map[string]float64{"101": 25, "201": 15}),
			matchup(1, 2, 3, 80, []string{"301", "401"},
				map[string]float64{"301": 12, "401": 0}),
			matchup(1, 2, 4, 40, []string{"0"},
				map[string]float64{}),
			// week 2
			matchup(2, 1, 1, 60, []string{"100", "200"},
				map[string]float64{"100": 30, "200": 0}),
			matchup(2, 1, 3, 70, []string{"301", "401"},
				map[string]float64{"301": 25, "401": 9.5}),
			matchup(2, 2, 2, 50, []string{"101"},
				map[string]float64{"101": 12}),
			matchup(2, 2, 4, 52.5, []string{"400"},
				map[string]float64{"400": 4}),
			// week 3, not played
			matchup(3, 1, 1, 0, []string{"100"}, map[string]float64{"100": 0}),
			matchup(3, 1, 2, 0, []string{"101"}, map[string]float64{"101": 0}),
		},
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
