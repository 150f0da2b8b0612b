package analytics

import (
	"fmt"
	"slices"

	"github.com/omarshaarawi/sleeperstats/internal/models"
)

// emptyPlayerID is the placeholder Sleeper uses for an empty slot.
const emptyPlayerID = "0"

// FilterTransactions keeps the transactions with the given status and any of types.
func FilterTransactions(txs []models.Transaction, status models.TransactionStatus, types ...models.TransactionType) []models.Transaction {
	var out []models.Transaction
	for _, t := range txs {
		if t.Status == status && slices.Contains(types, t.Type) {
			out = append(out, t)
		}
	}
	return out
}

// IsBeanTrade reports whether any waiver-budget transfer is at or below
// threshold. Such transactions are noise for positional counts. A
// transaction without transfers is never a bean trade.
func IsBeanTrade(t models.Transaction, threshold int) bool {
	for _, b := range t.WaiverBudget {
		if b.Amount <= threshold {
			return true
		}
	}
	return false
}

func consentedBy(t models.Transaction, rosterID int) bool {
	return slices.Contains(t.ConsenterIDs, rosterID)
}

// acquired reports whether t moved a player from ids onto rosterID.
func acquired(t models.Transaction, ids playerSet, rosterID int) bool {
	for pid, dest := range t.Adds {
		if dest == rosterID && ids.has(pid) {
			return true
		}
	}
	return false
}

type positionCounts struct {
	total, rb, wr, te, qb int
}

func (x *Index) countAcquisitions(txs []models.Transaction, rosterID int) positionCounts {
	c := positionCounts{total: len(txs)}
	for _, t := range txs {
		if acquired(t, x.positionSet(models.PositionRB), rosterID) {
			c.rb++
		}
		if acquired(t, x.positionSet(models.PositionWR), rosterID) {
			c.wr++
		}
		if acquired(t, x.positionSet(models.PositionTE), rosterID) {
			c.te++
		}
		if acquired(t, x.positionSet(models.PositionQB), rosterID) {
			c.qb++
		}
	}
	return c
}

// userScoped keeps the transactions the roster consented to, minus bean trades.
func userScoped(txs []models.Transaction, rosterID, beanThreshold int) []models.Transaction {
	var out []models.Transaction
	for _, t := range txs {
		if consentedBy(t, rosterID) && !IsBeanTrade(t, beanThreshold) {
			out = append(out, t)
		}
	}
	return out
}

// TradeSummaries classifies each user's completed trades by acquired position.
func TradeSummaries(idx *Index, trades []models.Transaction, beanThreshold int) ([]models.TradeSummary, error) {
	out := make([]models.TradeSummary, 0, len(idx.Users()))
	for _, user := range idx.Users() {
		roster, err := idx.RosterForUser(user.UserID)
		if err != nil {
			return nil, fmt.Errorf("trade summary for %s: %w", user.DisplayName, err)
		}
		c := idx.countAcquisitions(userScoped(trades, roster.RosterID, beanThreshold), roster.RosterID)
		out = append(out, models.TradeSummary{
			Name: user.DisplayName, Trades: c.total,
			RB: c.rb, WR: c.wr, TE: c.te, QB: c.qb,
		})
	}
	return out, nil
}

// WaiverSummaries mirrors TradeSummaries for waiver claims and adds total bid spend.
func WaiverSummaries(idx *Index, waivers []models.Transaction, beanThreshold int) ([]models.WaiverSummary, error) {
	out := make([]models.WaiverSummary, 0, len(idx.Users()))
	for _, user := range idx.Users() {
		roster, err := idx.RosterForUser(user.UserID)
		if err != nil {
			return nil, fmt.Errorf("waiver summary for %s: %w", user.DisplayName, err)
		}
		claims := userScoped(waivers, roster.RosterID, beanThreshold)
		c := idx.countAcquisitions(claims, roster.RosterID)

		bids := 0
		for _, t := range claims {
			if t.Settings != nil {
				bids += t.Settings.WaiverBid
			}
		}

		out = append(out, models.WaiverSummary{
			Name: user.DisplayName, Waivers: c.total,
			RB: c.rb, WR: c.wr, TE: c.te, QB: c.qb,
			BidTotal: bids,
		})
	}
	return out, nil
}

// rankPlayers counts ids across txs, keeps catalog players that appear at
// least once and pass keep, and returns the top n by count.
func rankPlayers(idx *Index, txs []models.Transaction, ids func(models.Transaction) map[string]int, keep func(models.Player) bool, n int) []models.PlayerCount {
	counts := make(map[string]int)
	for _, t := range txs {
		for pid := range ids(t) {
			counts[pid]++
		}
	}

	var candidates []models.PlayerCount
	for _, id := range idx.PlayerIDs() {
		if id == emptyPlayerID || counts[id] == 0 {
			continue
		}
		p, _ := idx.Player(id)
		if keep != nil && !keep(p) {
			continue
		}
		candidates = append(candidates, models.PlayerCount{
			Name: p.Name(), PlayerID: id, Position: p.Position, Count: counts[id],
		})
	}
	return TopN(candidates, n, func(c models.PlayerCount) float64 { return float64(c.Count) })
}

func adds(t models.Transaction) map[string]int  { return t.Adds }
func drops(t models.Transaction) map[string]int { return t.Drops }

func playedAt(pos models.Position) func(models.Player) bool {
	return func(p models.Player) bool { return p.Position == pos }
}

// MostTraded ranks players by how many completed trades added them.
func MostTraded(idx *Index, trades []models.Transaction, n int) []models.PlayerCount {
	return rankPlayers(idx, trades, adds, nil, n)
}

// MostTradedAt ranks only players at pos. Unlike the peak boards the position
// filter is applied before ranking.
func MostTradedAt(idx *Index, trades []models.Transaction, pos models.Position, n int) []models.PlayerCount {
	return rankPlayers(idx, trades, adds, playedAt(pos), n)
}

// MostDropped ranks players by drops in completed free agent and waiver moves.
func MostDropped(idx *Index, txs []models.Transaction, n int) []models.PlayerCount {
	var moves []models.Transaction
	for _, t := range FilterTransactions(txs, models.StatusComplete, models.TypeFreeAgent, models.TypeWaiver) {
		if len(t.Drops) > 0 {
			moves = append(moves, t)
		}
	}
	return rankPlayers(idx, moves, drops, nil, n)
}
