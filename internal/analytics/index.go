package analytics

import (
	"slices"
	"sort"
	"strings"

	"github.com/omarshaarawi/sleeperstats/internal/models"
)

type playerSet map[string]struct{}

func (s playerSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

// PositionIndex returns the ids of every catalog player listed at position.
func PositionIndex(players map[string]models.Player, position models.Position) map[string]struct{} {
	ids := make(map[string]struct{})
	for id, p := range players {
		if p.Position == position {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// Index holds the lookups every calculation shares. It is built once per
// snapshot and never modified afterwards.
type Index struct {
	players   map[string]models.Player
	playerIDs []string
	positions map[models.Position]playerSet
	rosters   []models.Roster
	users     []models.User

	usersLeague string
}

func NewIndex(snap *models.Snapshot) *Index {
	ids := make([]string, 0, len(snap.Players))
	for id := range snap.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	positions := make(map[models.Position]playerSet, len(models.TrackedPositions))
	for _, pos := range models.TrackedPositions {
		positions[pos] = PositionIndex(snap.Players, pos)
	}

	return &Index{
		players:   snap.Players,
		playerIDs: ids,
		positions: positions,
		rosters:   snap.Rosters,
		users:     snap.Users,

		usersLeague: snap.UsersLeagueID,
	}
}

// PlayerIDs is the catalog iteration order used for every tie-break.
func (x *Index) PlayerIDs() []string {
	return x.playerIDs
}

func (x *Index) Player(id string) (models.Player, bool) {
	p, ok := x.players[id]
	return p, ok
}

func (x *Index) Users() []models.User {
	return x.users
}

func (x *Index) positionSet(pos models.Position) playerSet {
	if s, ok := x.positions[pos]; ok {
		return s
	}
	return PositionIndex(x.players, pos)
}

func (x *Index) RosterForUser(userID string) (models.Roster, error) {
	return RosterForUser(x.rosters, userID)
}

func (x *Index) UserForRoster(rosterID int) (models.User, error) {
	return UserForRoster(rosterID, x.rosters, x.users)
}

// UserForMatchup resolves the owner of m's roster in m's own league. Rosters
// without a league tag fall back to UserForRoster.
func (x *Index) UserForMatchup(m models.Matchup) (models.User, error) {
	for _, r := range x.rosters {
		if r.RosterID == m.RosterID && r.LeagueID != "" && r.LeagueID == m.LeagueID {
			return x.userByID(r.OwnerID)
		}
	}
	return x.UserForRoster(m.RosterID)
}

// OwnerOf returns the user whose current roster lists playerID. Current means
// the users league when its rosters are loaded, otherwise the newest roster.
func (x *Index) OwnerOf(playerID string) (models.User, bool) {
	current := x.rosters
	if x.usersLeague != "" {
		var inLeague []models.Roster
		for _, r := range x.rosters {
			if r.LeagueID == x.usersLeague {
				inLeague = append(inLeague, r)
			}
		}
		if len(inLeague) > 0 {
			current = inLeague
		}
	}

	for i := len(current) - 1; i >= 0; i-- {
		if !slices.Contains(current[i].Players, playerID) {
			continue
		}
		if u, err := x.userByID(current[i].OwnerID); err == nil {
			return u, true
		}
	}
	return models.User{}, false
}

func (x *Index) userByID(userID string) (models.User, error) {
	for _, u := range x.users {
		if strings.EqualFold(u.UserID, userID) {
			return u, nil
		}
	}
	return models.User{}, notFound("user", userID)
}

// RosterForUser returns the first roster whose owner matches userID, ignoring case.
func RosterForUser(rosters []models.Roster, userID string) (models.Roster, error) {
	for _, r := range rosters {
		if strings.EqualFold(r.OwnerID, userID) {
			return r, nil
		}
	}
	return models.Roster{}, notFound("roster for user", userID)
}

// UserForRoster resolves roster id -> owner id -> user.
func UserForRoster(rosterID int, rosters []models.Roster, users []models.User) (models.User, error) {
	ownerID := ""
	found := false
	for _, r := range rosters {
		if r.RosterID == rosterID {
			ownerID = r.OwnerID
			found = true
			break
		}
	}
	if !found {
		return models.User{}, notFound("owner of roster", rosterID)
	}

	for _, u := range users {
		if strings.EqualFold(u.UserID, ownerID) {
			return u, nil
		}
	}
	return models.User{}, notFound("user", ownerID)
}
