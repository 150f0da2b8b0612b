package models

import (
	"encoding/json"
	"strings"
	"time"
)

type Position string

const (
	PositionNone Position = "NONE"
	PositionWR   Position = "WR"
	PositionG    Position = "G"
	PositionTE   Position = "TE"
	PositionOT   Position = "OT"
	PositionS    Position = "S"
	PositionRB   Position = "RB"
	PositionLB   Position = "LB"
	PositionDE   Position = "DE"
	PositionFS   Position = "FS"
	PositionT    Position = "T"
	PositionCB   Position = "CB"
	PositionSS   Position = "SS"
	PositionDB   Position = "DB"
	PositionK    Position = "K"
	PositionNT   Position = "NT"
	PositionILB  Position = "ILB"
	PositionQB   Position = "QB"
	PositionOL   Position = "OL"
	PositionOLB  Position = "OLB"
	PositionLS   Position = "LS"
	PositionDT   Position = "DT"
	PositionFB   Position = "FB"
	PositionC    Position = "C"
	PositionP    Position = "P"
	PositionDEF  Position = "DEF"
	PositionDL   Position = "DL"
	PositionOG   Position = "OG"
	PositionKP   Position = "K_P"
)

var knownPositions = map[Position]bool{
	PositionWR: true, PositionG: true, PositionTE: true, PositionOT: true, PositionS: true,
	PositionRB: true, PositionLB: true, PositionDE: true, PositionFS: true, PositionT: true,
	PositionCB: true, PositionSS: true, PositionDB: true, PositionK: true, PositionNT: true,
	PositionILB: true, PositionQB: true, PositionOL: true, PositionOLB: true, PositionLS: true,
	PositionDT: true, PositionFB: true, PositionC: true, PositionP: true, PositionDEF: true,
	PositionDL: true, PositionOG: true, PositionKP: true,
}

// TrackedPositions are the only positions any positional metric buckets by.
var TrackedPositions = []Position{PositionRB, PositionWR, PositionTE, PositionQB}

// ParsePosition never fails: unknown or empty tags become PositionNone.
func ParsePosition(s string) Position {
	p := Position(s)
	if knownPositions[p] {
		return p
	}
	return PositionNone
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil || s == nil {
		*p = PositionNone
		return nil
	}
	*p = ParsePosition(*s)
	return nil
}

type TransactionStatus string

const (
	StatusComplete TransactionStatus = "COMPLETE"
	StatusFailed   TransactionStatus = "FAILED"
	StatusUnknown  TransactionStatus = "UNKNOWN"
)

func (s *TransactionStatus) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		*s = StatusUnknown
		return nil
	}
	switch v := TransactionStatus(strings.ToUpper(*raw)); v {
	case StatusComplete, StatusFailed:
		*s = v
	default:
		*s = StatusUnknown
	}
	return nil
}

type TransactionType string

const (
	TypeTrade        TransactionType = "TRADE"
	TypeWaiver       TransactionType = "WAIVER"
	TypeCommissioner TransactionType = "COMMISSIONER"
	TypeFreeAgent    TransactionType = "FREE_AGENT"
	TypeUnknown      TransactionType = "UNKNOWN"
)

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		*t = TypeUnknown
		return nil
	}
	switch v := TransactionType(strings.ToUpper(*raw)); v {
	case TypeTrade, TypeWaiver, TypeCommissioner, TypeFreeAgent:
		*t = v
	default:
		*t = TypeUnknown
	}
	return nil
}

type Player struct {
	PlayerID         string     `json:"player_id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Position         Position   `json:"position"`
	FantasyPositions []Position `json:"fantasy_positions"`
	Age              int        `json:"age"`
}

func (p Player) Name() string {
	return p.FirstName + " " + p.LastName
}

type Roster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`

	// Set by the loader.
	LeagueID string `json:"-"`
}

type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type Matchup struct {
	MatchupID      int                `json:"matchup_id"`
	RosterID       int                `json:"roster_id"`
	Starters       []string           `json:"starters"`
	Players        []string           `json:"players"`
	PlayersPoints  map[string]float64 `json:"players_points"`
	StartersPoints []float64          `json:"starters_points"`
	Points         float64            `json:"points"`

	// Set by the loader, not part of the Sleeper payload.
	LeagueID string `json:"-"`
	Week     int    `json:"-"`
}

type WaiverBudget struct {
	Sender   int `json:"sender"`
	Receiver int `json:"receiver"`
	Amount   int `json:"amount"`
}

type TransactionSettings struct {
	WaiverBid int `json:"waiver_bid"`
}

type Transaction struct {
	TransactionID string               `json:"transaction_id"`
	Status        TransactionStatus    `json:"status"`
	Type          TransactionType      `json:"type"`
	Created       int64                `json:"created"`
	StatusUpdated int64                `json:"status_updated"`
	Leg           int                  `json:"leg"`
	RosterIDs     []int                `json:"roster_ids"`
	ConsenterIDs  []int                `json:"consenter_ids"`
	Adds          map[string]int       `json:"adds"`
	Drops         map[string]int       `json:"drops"`
	WaiverBudget  []WaiverBudget       `json:"waiver_budget"`
	Settings      *TransactionSettings `json:"settings"`
}

// Snapshot is the complete, read-only working set the analytics run over.
type Snapshot struct {
	Players      map[string]Player
	Rosters      []Roster
	Matchups     []Matchup
	Transactions []Transaction
	Users        []User
	LastUpdated  time.Time

	// UsersLeagueID is the league users were read from, normally the current
	// season. Ownership questions are answered against its rosters.
	UsersLeagueID string
}
