package analytics

import (
	"fmt"
	"slices"

	"github.com/omarshaarawi/sleeperstats/internal/models"
)

// BeanLedgers totals the waiver budget each user received and spent in trades.
// Scope is every trade listing the roster, not only the ones it consented to.
func BeanLedgers(idx *Index, trades []models.Transaction) ([]models.BeanLedger, error) {
	out := make([]models.BeanLedger, 0, len(idx.Users()))
	for _, user := range idx.Users() {
		roster, err := idx.RosterForUser(user.UserID)
		if err != nil {
			return nil, fmt.Errorf("bean ledger for %s: %w", user.DisplayName, err)
		}

		ledger := models.BeanLedger{Name: user.DisplayName}
		for _, t := range trades {
			if !slices.Contains(t.RosterIDs, roster.RosterID) {
				continue
			}
			for _, b := range t.WaiverBudget {
				if b.Receiver == roster.RosterID {
					ledger.Received += b.Amount
				}
				if b.Sender == roster.RosterID {
					ledger.Spent += b.Amount
				}
			}
		}
		out = append(out, ledger)
	}
	return out, nil
}
