package models

type Metric struct {
	Name        string  `json:"name"`
	RBPoints    float64 `json:"rb_points"`
	WRPoints    float64 `json:"wr_points"`
	TEPoints    float64 `json:"te_points"`
	QBPoints    float64 `json:"qb_points"`
	TotalPoints float64 `json:"total_points"`
	NumDonuts   int     `json:"num_donuts"`
}

type SeasonLeader struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
}

type Starter struct {
	Name             string   `json:"name"`
	PlayerID         string   `json:"player_id"`
	Position         Position `json:"position"`
	NumDonuts        int      `json:"num_donuts"`
	MaxMatchupPoints float64  `json:"max_matchup_points"`
}

type PeakBoards struct {
	MostDonuts  []Starter `json:"most_donuts"`
	HighestPeak []Starter `json:"highest_peak"`
	PeakQB      []Starter `json:"peak_qb"`
	PeakWR      []Starter `json:"peak_wr"`
	PeakTE      []Starter `json:"peak_te"`
	PeakRB      []Starter `json:"peak_rb"`
}

type ClosestLoss struct {
	Found  bool    `json:"found"`
	Margin float64 `json:"margin"`
	Loser  string  `json:"loser"`
	Week   int     `json:"week"`
}

type CloseLossCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MatchupReport struct {
	Metrics      []Metric         `json:"metrics"`
	Leaders      []SeasonLeader   `json:"leaders"`
	Peaks        PeakBoards       `json:"peaks"`
	ClosestLoss  ClosestLoss      `json:"closest_loss"`
	CloseLosses  []CloseLossCount `json:"close_losses"`
	Alliterative []string         `json:"alliterative"`
}

type TradeSummary struct {
	Name   string `json:"name"`
	Trades int    `json:"trades"`
	RB     int    `json:"rb"`
	WR     int    `json:"wr"`
	TE     int    `json:"te"`
	QB     int    `json:"qb"`
}

type WaiverSummary struct {
	Name     string `json:"name"`
	Waivers  int    `json:"waivers"`
	RB       int    `json:"rb"`
	WR       int    `json:"wr"`
	TE       int    `json:"te"`
	QB       int    `json:"qb"`
	BidTotal int    `json:"bid_total"`
}

type PlayerCount struct {
	Name     string   `json:"name"`
	PlayerID string   `json:"player_id"`
	Position Position `json:"position"`
	Count    int      `json:"count"`
}

type BeanLedger struct {
	Name     string `json:"name"`
	Received int    `json:"received"`
	Spent    int    `json:"spent"`
}

type TradeReport struct {
	Users        []TradeSummary `json:"users"`
	MostTraded   []PlayerCount  `json:"most_traded"`
	MostDropped  []PlayerCount  `json:"most_dropped"`
	MostTradedRB []PlayerCount  `json:"most_traded_rb"`
	MostTradedQB []PlayerCount  `json:"most_traded_qb"`
	Beans        []BeanLedger   `json:"beans"`
}

type WaiverReport struct {
	Users []WaiverSummary `json:"users"`
}

// PlayerSeason is a single player's season line, used by name lookups.
type PlayerSeason struct {
	Starter
	Found      bool   `json:"found"`
	Query      string `json:"query"`
	RosteredBy string `json:"rostered_by,omitempty"`
	Starts     int    `json:"starts"`
}
