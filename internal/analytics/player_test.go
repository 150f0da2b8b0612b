package analytics

import (
	"errors"
	"testing"

	"github.com/omarshaarawi/sleeperstats/internal/models"
)

func TestPlayerSeason(t *testing.T) {
	snap := leagueSnapshot()
	snap.Rosters[0].Players = []string{"100", "200"}
	idx := NewIndex(snap)

	season, err := PlayerSeason(idx, snap.Matchups, "200")
	if err != nil {
		t.Fatalf("PlayerSeason: %v", err)
	}
	if !season.Found || season.Name != "Saquon Barkley" {
		t.Errorf("season = %+v", season)
	}
	// week 1 scored 30.25, week 2 donut, week 3 unplayed
	if season.Starts != 2 || season.NumDonuts != 1 || !approx(season.MaxMatchupPoints, 30.25) {
		t.Errorf("starts=%d donuts=%d max=%v", season.Starts, season.NumDonuts, season.MaxMatchupPoints)
	}
	if season.RosteredBy != "alice" {
		t.Errorf("RosteredBy = %q, want alice", season.RosteredBy)
	}
}

func TestPlayerSeason_NeverStarted(t *testing.T) {
	snap := leagueSnapshot()
	season, err := PlayerSeason(NewIndex(snap), snap.Matchups, "500")
	if err != nil {
		t.Fatalf("PlayerSeason: %v", err)
	}
	if season.Starts != 1 || season.MaxMatchupPoints != 8 {
		t.Errorf("season = %+v", season)
	}

	season, err = PlayerSeason(NewIndex(snap), snap.Matchups, "201")
	if err != nil {
		t.Fatalf("PlayerSeason: %v", err)
	}
	if season.Starts != 1 || season.RosteredBy != "" {
		t.Errorf("season = %+v", season)
	}
}

func TestPlayerSeason_Unknown(t *testing.T) {
	snap := leagueSnapshot()
	if _, err := PlayerSeason(NewIndex(snap), snap.Matchups, "999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// twoSeasonSnapshot carries a 2022 and a 2024 league in which the roster ids
// changed hands between alice and bob.
func twoSeasonSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Players: map[string]models.Player{
			"9000": player("9000", "Xavier", "Worthy", models.PositionWR),
			"9001": player("9001", "Jahmyr", "Gibbs", models.PositionRB),
		},
		Users: []models.User{
			{UserID: "u1", DisplayName: "alice"},
			{UserID: "u2", DisplayName: "bob"},
		},
		Rosters: []models.Roster{
			{LeagueID: "2022", RosterID: 1, OwnerID: "u1", Players: []string{"9000"}},
			{LeagueID: "2022", RosterID: 2, OwnerID: "u2"},
			{LeagueID: "2024", RosterID: 1, OwnerID: "u2", Players: []string{"9000"}},
			{LeagueID: "2024", RosterID: 2, OwnerID: "u1", Players: []string{"9001"}},
		},
		Matchups: []models.Matchup{
			{LeagueID: "2024", Week: 1, MatchupID: 1, RosterID: 1, Points: 90},
			{LeagueID: "2024", Week: 1, MatchupID: 1, RosterID: 2, Points: 95},
		},
		UsersLeagueID: "2024",
	}
}

func TestPlayerSeason_OwnerFromCurrentLeague(t *testing.T) {
	snap := twoSeasonSnapshot()
	idx := NewIndex(snap)

	tests := []struct {
		playerID string
		want     string
	}{
		{"9000", "bob"},
		{"9001", "alice"},
	}
	for _, tt := range tests {
		season, err := PlayerSeason(idx, snap.Matchups, tt.playerID)
		if err != nil {
			t.Fatalf("PlayerSeason(%s): %v", tt.playerID, err)
		}
		if season.RosteredBy != tt.want {
			t.Errorf("PlayerSeason(%s).RosteredBy = %q, want %q", tt.playerID, season.RosteredBy, tt.want)
		}
	}
}

func TestOwnerOf_NewestRosterWithoutUsersLeague(t *testing.T) {
	snap := twoSeasonSnapshot()
	snap.UsersLeagueID = ""

	owner, ok := NewIndex(snap).OwnerOf("9000")
	if !ok || owner.DisplayName != "bob" {
		t.Errorf("OwnerOf(9000) = %+v, %v; want bob", owner, ok)
	}
	if _, ok := NewIndex(snap).OwnerOf("1234"); ok {
		t.Error("OwnerOf found an unrostered player")
	}
}
