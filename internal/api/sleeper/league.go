package sleeper

import (
	"context"
	"fmt"

	"github.com/omarshaarawi/sleeperstats/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// GetPlayers returns the full NFL player catalog keyed by player id.
func (a *API) GetPlayers(ctx context.Context) (map[string]models.Player, error) {
	var players map[string]models.Player
	if err := a.client.Get(ctx, "players", "/players/nfl", "players.json", &players); err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	if players == nil {
		players = map[string]models.Player{}
	}
	return players, nil
}

func (a *API) GetRosters(ctx context.Context, leagueID string) ([]models.Roster, error) {
	var rosters []models.Roster
	endpoint := fmt.Sprintf("/league/%s/rosters", leagueID)
	if err := a.client.Get(ctx, "rosters", endpoint, fmt.Sprintf("%s/rosters.json", leagueID), &rosters); err != nil {
		return nil, fmt.Errorf("fetching rosters for league %s: %w", leagueID, err)
	}
	for i := range rosters {
		rosters[i].LeagueID = leagueID
	}
	return rosters, nil
}

func (a *API) GetUsers(ctx context.Context, leagueID string) ([]models.User, error) {
	var users []models.User
	endpoint := fmt.Sprintf("/league/%s/users", leagueID)
	if err := a.client.Get(ctx, "users", endpoint, fmt.Sprintf("%s/users.json", leagueID), &users); err != nil {
		return nil, fmt.Errorf("fetching users for league %s: %w", leagueID, err)
	}
	return users, nil
}

// GetMatchups returns one week of matchups tagged with their league and week.
func (a *API) GetMatchups(ctx context.Context, leagueID string, week int) ([]models.Matchup, error) {
	var matchups []models.Matchup
	endpoint := fmt.Sprintf("/league/%s/matchups/%d", leagueID, week)
	if err := a.client.Get(ctx, "matchups", endpoint, fmt.Sprintf("%s/matchups/%d.json", leagueID, week), &matchups); err != nil {
		return nil, fmt.Errorf("fetching week %d matchups for league %s: %w", week, leagueID, err)
	}
	for i := range matchups {
		matchups[i].LeagueID = leagueID
		matchups[i].Week = week
	}
	return matchups, nil
}

func (a *API) GetTransactions(ctx context.Context, leagueID string, round int) ([]models.Transaction, error) {
	var txs []models.Transaction
	endpoint := fmt.Sprintf("/league/%s/transactions/%d", leagueID, round)
	if err := a.client.Get(ctx, "transactions", endpoint, fmt.Sprintf("%s/transactions/%d.json", leagueID, round), &txs); err != nil {
		return nil, fmt.Errorf("fetching round %d transactions for league %s: %w", round, leagueID, err)
	}
	return txs, nil
}
