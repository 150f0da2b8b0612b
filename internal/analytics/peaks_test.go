package analytics

import (
	"testing"

	"github.com/omarshaarawi/sleeperstats/internal/models"
)

func starterByID(starters []models.Starter, id string) models.Starter {
	for _, s := range starters {
		if s.PlayerID == id {
			return s
		}
	}
	return models.Starter{}
}

func ids(starters []models.Starter) []string {
	out := make([]string, len(starters))
	for i, s := range starters {
		out[i] = s.PlayerID
	}
	return out
}

func TestStarterPeaks_DonutsAndMax(t *testing.T) {
	snap := &models.Snapshot{
		Players: map[string]models.Player{"7": player("7", "Amon-Ra", "St. Brown", models.PositionWR)},
		Matchups: []models.Matchup{
			matchup(1, 1, 1, 50, []string{"7"}, map[string]float64{"7": 12}),
			matchup(2, 1, 1, 50, []string{"7"}, map[string]float64{"7": 0}),
			matchup(3, 1, 1, 50, []string{"7"}, map[string]float64{"7": 30}),
			// bench week and unplayed week do not count
			matchup(4, 1, 1, 50, []string{"8"}, map[string]float64{"7": 45}),
			matchup(5, 1, 1, 0, []string{"7"}, map[string]float64{"7": 0}),
		},
	}

	got := StarterPeaks(NewIndex(snap), snap.Matchups)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].NumDonuts != 1 {
		t.Errorf("NumDonuts = %d, want 1", got[0].NumDonuts)
	}
	if got[0].MaxMatchupPoints != 30 {
		t.Errorf("MaxMatchupPoints = %v, want 30", got[0].MaxMatchupPoints)
	}
	if got[0].Name != "Amon-Ra St. Brown" {
		t.Errorf("Name = %q", got[0].Name)
	}
}

func TestStarterPeaks_NegativeOnly(t *testing.T) {
	snap := &models.Snapshot{
		Players:  map[string]models.Player{"KC": player("KC", "Kansas City", "Chiefs", models.PositionDEF)},
		Matchups: []models.Matchup{matchup(1, 1, 1, 50, []string{"KC"}, map[string]float64{"KC": -3})},
	}

	got := StarterPeaks(NewIndex(snap), snap.Matchups)
	if got[0].MaxMatchupPoints != -3 {
		t.Errorf("MaxMatchupPoints = %v, want -3", got[0].MaxMatchupPoints)
	}
}

func TestStarterPeaks_League(t *testing.T) {
	snap := leagueSnapshot()
	starters := StarterPeaks(NewIndex(snap), snap.Matchups)

	if len(starters) != len(snap.Players) {
		t.Fatalf("len = %d, want every catalog player (%d)", len(starters), len(snap.Players))
	}

	tests := []struct {
		id     string
		max    float64
		donuts int
	}{
		{"100", 30, 0},
		{"200", 30.25, 1},
		{"300", 0, 1},
		{"400", 10, 0},
		{"401", 9.5, 1},
		{"0", 0, 0},
	}
	for _, tt := range tests {
		s := starterByID(starters, tt.id)
		if s.MaxMatchupPoints != tt.max || s.NumDonuts != tt.donuts {
			t.Errorf("%s = max %v donuts %d, want max %v donuts %d",
				tt.id, s.MaxMatchupPoints, s.NumDonuts, tt.max, tt.donuts)
		}
	}
}

func TestPeakLeaderboards(t *testing.T) {
	snap := leagueSnapshot()
	boards := PeakLeaderboards(StarterPeaks(NewIndex(snap), snap.Matchups), 3)

	assertIDs := func(name string, got []models.Starter, want ...string) {
		t.Helper()
		g := ids(got)
		if len(g) != len(want) {
			t.Errorf("%s = %v, want %v", name, g, want)
			return
		}
		for i := range want {
			if g[i] != want[i] {
				t.Errorf("%s = %v, want %v", name, g, want)
				return
			}
		}
	}

	assertIDs("HighestPeak", boards.HighestPeak, "200", "100", "101")
	assertIDs("MostDonuts", boards.MostDonuts, "200", "300", "401")
	assertIDs("PeakQB", boards.PeakQB, "100", "101")
	assertIDs("PeakWR", boards.PeakWR, "301", "300")
	assertIDs("PeakTE", boards.PeakTE, "400", "401")
	assertIDs("PeakRB", boards.PeakRB, "200", "201")
}

func TestPeakLeaderboards_PositionCutFromOverallRanking(t *testing.T) {
	// Ten WRs outrank every TE, so the TE board is drawn from entries below them.
	starters := []models.Starter{}
	for i := 0; i < 10; i++ {
		starters = append(starters, models.Starter{PlayerID: string(rune('a' + i)), Position: models.PositionWR, MaxMatchupPoints: 50})
	}
	starters = append(starters, models.Starter{PlayerID: "te", Position: models.PositionTE, MaxMatchupPoints: 1})

	boards := PeakLeaderboards(starters, 10)
	if len(boards.PeakTE) != 1 || boards.PeakTE[0].PlayerID != "te" {
		t.Errorf("PeakTE = %v, want [te]", ids(boards.PeakTE))
	}
	if len(boards.HighestPeak) != 10 {
		t.Errorf("len(HighestPeak) = %d, want 10", len(boards.HighestPeak))
	}
}

func TestPeakLeaderboards_Empty(t *testing.T) {
	boards := PeakLeaderboards(nil, 10)
	if len(boards.HighestPeak) != 0 || len(boards.PeakQB) != 0 || len(boards.MostDonuts) != 0 {
		t.Errorf("boards = %+v, want all empty", boards)
	}
}
